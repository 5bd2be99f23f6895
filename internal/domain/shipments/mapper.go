package shipments

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes a shipment for storage.
func ToRow(s Shipment) (Row, error) {
	r := Row{
		ID:                  s.ID,
		ArtistID:            s.ArtistID,
		ArtworkID:           s.ArtworkID,
		BuyerID:             s.BuyerID,
		Carrier:             s.Carrier,
		TrackingNumber:      s.TrackingNumber,
		EstimatedDelivery:   s.EstimatedDelivery,
		Status:              string(s.Status),
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}

	var err error
	if r.ShippingAddress, err = values.MarshalColumn(s.ShippingAddress); err != nil {
		return Row{}, err
	}
	return r, nil
}

// FromRow reconstructs the entity; a blank stored status reads as
// preparing.
func FromRow(r Row) (Shipment, error) {
	s := Shipment{
		ID:                  r.ID,
		ArtistID:            r.ArtistID,
		ArtworkID:           r.ArtworkID,
		BuyerID:             r.BuyerID,
		Carrier:             r.Carrier,
		TrackingNumber:      r.TrackingNumber,
		EstimatedDelivery:   r.EstimatedDelivery,
		Status:              Status(r.Status),
		SpecialInstructions: r.SpecialInstructions,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.ShippingAddress, &s.ShippingAddress); err != nil {
		return Shipment{}, fmt.Errorf("shipment %s: shipping_address: %w", r.ID, err)
	}

	if s.Status == "" {
		s.Status = StatusPreparing
	}
	return s, nil
}
