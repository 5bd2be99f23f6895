// Package shipments tracks sold works on their way to the buyer. Status
// only ever moves forward.
package shipments

import (
	"time"

	"studio-app/internal/domain/values"
)

type Status string

const (
	StatusPreparing Status = "preparing"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

type Shipment struct {
	ID                  string         `json:"id"`
	ArtistID            string         `json:"artistId"`
	ArtworkID           string         `json:"artworkId"`
	BuyerID             string         `json:"buyerId,omitempty"`
	Carrier             string         `json:"carrier"`
	TrackingNumber      string         `json:"trackingNumber,omitempty"`
	ShippingAddress     values.Address `json:"shippingAddress"`
	EstimatedDelivery   *time.Time     `json:"estimatedDelivery,omitempty"`
	Status              Status         `json:"status"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time      `json:"createdAt,omitempty"`
	UpdatedAt           time.Time      `json:"updatedAt,omitempty"`
}

func (s Shipment) SearchFields() []string {
	return []string{s.Carrier, s.TrackingNumber, s.ShippingAddress.City, s.ShippingAddress.Country}
}

func (s Shipment) StatusValue() string { return string(s.Status) }
