// Package invoices bills buyers for artworks. Numbers are human-readable
// and sequential per seller; "overdue" is a read-side projection, never a
// stored status.
package invoices

import (
	"time"

	"studio-app/internal/domain/values"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"

	// StatusOverdue only ever appears as the effective status of a
	// pending invoice past its due date.
	StatusOverdue Status = "overdue"
)

type Invoice struct {
	ID        string                  `json:"id"`
	Number    string                  `json:"number"`
	ArtworkID *string                 `json:"artworkId,omitempty"`
	SellerID  string                  `json:"sellerId"`
	BuyerInfo values.BuyerInfo        `json:"buyerInfo"`
	Amount    float64                 `json:"amount"`
	Status    Status                  `json:"status"`
	DueDate   time.Time               `json:"dueDate"`
	Shipping  *values.ShippingDetails `json:"shipping,omitempty"`
	Notes     string                  `json:"notes,omitempty"`
	CreatedAt time.Time               `json:"createdAt,omitempty"`
	UpdatedAt time.Time               `json:"updatedAt,omitempty"`
}

func (i Invoice) SearchFields() []string {
	return []string{i.Number, i.BuyerInfo.Name, i.BuyerInfo.Email}
}

func (i Invoice) StatusValue() string { return string(i.Status) }

// Open reports whether the invoice still holds a claim on its artwork
// (anything not yet paid).
func (i Invoice) Open() bool { return i.Status != StatusPaid }
