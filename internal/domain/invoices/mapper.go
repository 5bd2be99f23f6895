package invoices

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes an invoice for storage.
func ToRow(i Invoice) (Row, error) {
	r := Row{
		ID:        i.ID,
		SellerID:  i.SellerID,
		Number:    i.Number,
		ArtworkID: i.ArtworkID,
		Amount:    i.Amount,
		Status:    string(i.Status),
		DueDate:   i.DueDate,
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}

	var err error
	if r.BuyerInfo, err = values.MarshalColumn(i.BuyerInfo); err != nil {
		return Row{}, err
	}
	if i.Shipping != nil {
		if r.Shipping, err = values.MarshalColumn(i.Shipping); err != nil {
			return Row{}, err
		}
	}
	return r, nil
}

// FromRow reconstructs the entity; a blank stored status reads as draft.
func FromRow(r Row) (Invoice, error) {
	i := Invoice{
		ID:        r.ID,
		SellerID:  r.SellerID,
		Number:    r.Number,
		ArtworkID: r.ArtworkID,
		Amount:    r.Amount,
		Status:    Status(r.Status),
		DueDate:   r.DueDate,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.BuyerInfo, &i.BuyerInfo); err != nil {
		return Invoice{}, fmt.Errorf("invoice %s: buyer_info: %w", r.ID, err)
	}
	if len(r.Shipping) > 0 {
		i.Shipping = &values.ShippingDetails{}
		if err := values.UnmarshalColumn(r.Shipping, i.Shipping); err != nil {
			return Invoice{}, fmt.Errorf("invoice %s: shipping: %w", r.ID, err)
		}
	}

	if i.Status == "" {
		i.Status = StatusDraft
	}
	return i, nil
}
