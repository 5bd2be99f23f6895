package shipments

import (
	"time"

	"studio-app/internal/domain/values"
)

type Draft struct {
	ArtworkID           *string         `json:"artworkId"`
	BuyerID             *string         `json:"buyerId"`
	Carrier             *string         `json:"carrier"`
	TrackingNumber      *string         `json:"trackingNumber"`
	ShippingAddress     *values.Address `json:"shippingAddress"`
	EstimatedDelivery   *time.Time      `json:"estimatedDelivery"`
	SpecialInstructions *string         `json:"specialInstructions"`
}

// New builds the entity a valid create draft describes; shipments start
// in preparation.
func New(artistID string, d Draft) Shipment {
	s := Shipment{
		ArtistID: artistID,
		Status:   Machine.Initial,
	}
	d.Apply(&s)
	return s
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(s *Shipment) {
	if d.ArtworkID != nil {
		s.ArtworkID = *d.ArtworkID
	}
	if d.BuyerID != nil {
		s.BuyerID = *d.BuyerID
	}
	if d.Carrier != nil {
		s.Carrier = *d.Carrier
	}
	if d.TrackingNumber != nil {
		s.TrackingNumber = *d.TrackingNumber
	}
	if d.ShippingAddress != nil {
		s.ShippingAddress = *d.ShippingAddress
	}
	if d.EstimatedDelivery != nil {
		s.EstimatedDelivery = d.EstimatedDelivery
	}
	if d.SpecialInstructions != nil {
		s.SpecialInstructions = *d.SpecialInstructions
	}
}
