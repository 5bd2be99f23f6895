// Package values holds the composite value types shared by the studio
// entities. These are the shapes stored inside the jsonb columns, so the
// JSON tags here double as the storage format of the nested objects.
package values

import "time"

// Unit is the measurement unit of a dimension set.
type Unit string

const (
	UnitInch       Unit = "in"
	UnitCentimeter Unit = "cm"
)

// Dimensions of a physical work. Depth is optional (flat works).
type Dimensions struct {
	Height float64  `json:"height"`
	Width  float64  `json:"width"`
	Depth  *float64 `json:"depth,omitempty"`
	Unit   Unit     `json:"unit"`
}

// ContactInfo is the embedded collector reference carried by commissions
// and studio visits. It is a copy, not a foreign key: a matching contact
// record may or may not exist.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// BuyerInfo is the invoice recipient.
type BuyerInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
}

// Address is a full shipping address.
type Address struct {
	Street  string `json:"street"`
	Unit    string `json:"unit,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// EditionInfo marks a numbered edition. Number must not exceed Size.
type EditionInfo struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// SaleRecord is the completed sale that moves an artwork to sold.
type SaleRecord struct {
	Date          time.Time `json:"date"`
	Price         float64   `json:"price"`
	CertificateID string    `json:"certificateId,omitempty"`
	Provenance    string    `json:"provenance,omitempty"`
}

// ShippingDetails is the optional shipping block on an invoice.
type ShippingDetails struct {
	Required       bool    `json:"required"`
	LocalDelivery  bool    `json:"localDelivery"`
	Cost           float64 `json:"cost"`
	Carrier        string  `json:"carrier,omitempty"`
	TrackingNumber string  `json:"trackingNumber,omitempty"`
}

// Reminders holds the notification switches on a studio visit.
type Reminders struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// OwnedArtwork is one entry in a contact's purchase history.
type OwnedArtwork struct {
	ArtworkID     string    `json:"artworkId"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	PurchasePrice float64   `json:"purchasePrice"`
}
