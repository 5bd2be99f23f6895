package commissions

import (
	"fmt"
	"strings"

	"studio-app/internal/domain/validate"
)

// Validate checks a commission draft. Collector name and email are
// required; the deposit may not exceed the price when both are present.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.CollectorInfo != nil {
		var name, email string
		if d.CollectorInfo != nil {
			name = d.CollectorInfo.Name
			email = d.CollectorInfo.Email
		}
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "Collector name is required")
		}
		if strings.TrimSpace(email) == "" {
			errs = append(errs, "Collector email is required")
		}
	}

	if mode == validate.Create || d.RequestDetails != nil {
		if d.RequestDetails == nil || strings.TrimSpace(d.RequestDetails.Description) == "" {
			errs = append(errs, "Description is required")
		}
		if d.RequestDetails != nil {
			dim := d.RequestDetails.Dimensions.Dimensions()
			if dim.Height <= 0 || dim.Width <= 0 {
				errs = append(errs, "Invalid dimensions")
			}
		}
	}

	price := d.Price.Ptr()
	deposit := d.Deposit.Ptr()
	if price != nil && *price < 0 {
		errs = append(errs, "Price cannot be negative")
	}
	if deposit != nil && *deposit < 0 {
		errs = append(errs, "Deposit cannot be negative")
	}

	if d.Priority != nil {
		switch *d.Priority {
		case PriorityNormal, PriorityUrgent, PriorityRush:
		default:
			errs = append(errs, fmt.Sprintf("Unknown priority %q", *d.Priority))
		}
	}

	return errs
}

// Check verifies the cross-field rules on an assembled commission. The
// deposit cap compares against the stored price, so a deposit-only
// patch is held to it too.
func Check(c Commission) []string {
	var errs []string

	if c.Price != nil && c.Deposit != nil && *c.Deposit > *c.Price {
		errs = append(errs, "Deposit cannot exceed price")
	}

	return errs
}
