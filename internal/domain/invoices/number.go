package invoices

import (
	"fmt"
	"strconv"
	"strings"
)

const numberPrefix = "INV-"

// FormatNumber renders a sequence position as the human-readable invoice
// number. Zero-padding keeps lexical and numeric order aligned, which
// the repository relies on when it picks the latest number.
func FormatNumber(seq int) string {
	return fmt.Sprintf("%s%04d", numberPrefix, seq)
}

// SequenceOf parses a number back to its sequence position; unknown
// shapes count as 0 so the next assigned number starts the sequence.
func SequenceOf(number string) int {
	rest, ok := strings.CutPrefix(number, numberPrefix)
	if !ok {
		return 0
	}
	seq, err := strconv.Atoi(rest)
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}
