package invoices

import (
	"time"

	"studio-app/internal/domain/values"
)

// ShippingInput is the form-facing shipping block with a coercible cost.
type ShippingInput struct {
	Required       bool          `json:"required"`
	LocalDelivery  bool          `json:"localDelivery"`
	Cost           values.Number `json:"cost"`
	Carrier        string        `json:"carrier"`
	TrackingNumber string        `json:"trackingNumber"`
}

func (in ShippingInput) details() values.ShippingDetails {
	return values.ShippingDetails{
		Required:       in.Required,
		LocalDelivery:  in.LocalDelivery,
		Cost:           in.Cost.Or(0),
		Carrier:        in.Carrier,
		TrackingNumber: in.TrackingNumber,
	}
}

// Draft is an invoice as submitted by the UI. The number is absent on
// purpose: the repository assigns it at create and it never changes.
type Draft struct {
	ArtworkID *string           `json:"artworkId"`
	BuyerInfo *values.BuyerInfo `json:"buyerInfo"`
	Amount    *values.Number    `json:"amount"`
	DueDate   *time.Time        `json:"dueDate"`
	Shipping  *ShippingInput    `json:"shipping"`
	Notes     *string           `json:"notes"`
}

// New builds the entity a valid create draft describes; invoices start
// as drafts.
func New(sellerID string, d Draft) Invoice {
	i := Invoice{
		SellerID: sellerID,
		Status:   Machine.Initial,
	}
	d.Apply(&i)
	return i
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(i *Invoice) {
	if d.ArtworkID != nil {
		if *d.ArtworkID == "" {
			i.ArtworkID = nil
		} else {
			id := *d.ArtworkID
			i.ArtworkID = &id
		}
	}
	if d.BuyerInfo != nil {
		i.BuyerInfo = *d.BuyerInfo
	}
	if d.Amount != nil {
		i.Amount = d.Amount.Or(0)
	}
	if d.DueDate != nil {
		i.DueDate = *d.DueDate
	}
	if d.Shipping != nil {
		details := d.Shipping.details()
		i.Shipping = &details
	}
	if d.Notes != nil {
		i.Notes = *d.Notes
	}
}
