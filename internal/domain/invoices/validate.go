package invoices

import (
	"strings"

	"studio-app/internal/domain/validate"
)

// Validate checks an invoice draft: buyer name and email, a non-negative
// amount, and a real due date.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.BuyerInfo != nil {
		var name, email string
		if d.BuyerInfo != nil {
			name = d.BuyerInfo.Name
			email = d.BuyerInfo.Email
		}
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "Buyer name is required")
		}
		if strings.TrimSpace(email) == "" {
			errs = append(errs, "Buyer email is required")
		}
	}

	if d.Amount != nil && d.Amount.Or(0) < 0 {
		errs = append(errs, "Amount cannot be negative")
	}

	if mode == validate.Create || d.DueDate != nil {
		if d.DueDate == nil || d.DueDate.IsZero() {
			errs = append(errs, "Due date is required")
		}
	}

	if d.Shipping != nil && d.Shipping.Cost.Or(0) < 0 {
		errs = append(errs, "Shipping cost cannot be negative")
	}

	return errs
}
