package invoices

import (
	"time"

	"studio-app/internal/domain/invoices"
)

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceResponse wraps the entity with the overdue projection. The
// stored status never holds "overdue"; readers see it here.
type InvoiceResponse struct {
	invoices.Invoice
	EffectiveStatus invoices.Status `json:"effectiveStatus"`
}

// StatusValue reports the effective status so list filtering matches
// the status readers actually see.
func (r InvoiceResponse) StatusValue() string { return string(r.EffectiveStatus) }

func toResponse(i invoices.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		Invoice:         i,
		EffectiveStatus: invoices.EffectiveStatus(i, now),
	}
}
