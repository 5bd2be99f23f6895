package contacts

import (
	"fmt"
	"strings"

	"studio-app/internal/domain/validate"
)

// Validate checks a contact draft.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.Name != nil {
		if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
			errs = append(errs, "Name is required")
		}
	}

	if d.Type != nil && !KnownType(*d.Type) {
		errs = append(errs, fmt.Sprintf("Unknown contact type %q", *d.Type))
	}
	if d.Status != nil && !KnownStatus(*d.Status) {
		errs = append(errs, fmt.Sprintf("Unknown contact status %q", *d.Status))
	}

	if d.PriorityScore != nil {
		if score := int(d.PriorityScore.Or(0)); score < 0 || score > 100 {
			errs = append(errs, "Priority score must be between 0 and 100")
		}
	}
	if d.TotalPurchases != nil && int(d.TotalPurchases.Or(0)) < 0 {
		errs = append(errs, "Total purchases cannot be negative")
	}

	return errs
}
