package visits

import (
	"strings"

	"studio-app/internal/domain/validate"
)

// Validate checks a visit draft: a named collector and a scheduled slot.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.CollectorInfo != nil {
		if d.CollectorInfo == nil || strings.TrimSpace(d.CollectorInfo.Name) == "" {
			errs = append(errs, "Collector name is required")
		}
	}

	if mode == validate.Create || d.Date != nil {
		if d.Date == nil || d.Date.IsZero() {
			errs = append(errs, "Date is required")
		}
	}

	if mode == validate.Create || d.Time != nil {
		if d.Time == nil || strings.TrimSpace(*d.Time) == "" {
			errs = append(errs, "Time is required")
		}
	}

	return errs
}
