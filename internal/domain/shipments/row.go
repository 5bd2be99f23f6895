package shipments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of a shipment.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	ArtworkID string `gorm:"type:uuid;index" json:"artwork_id"`
	BuyerID   string `gorm:"type:uuid" json:"buyer_id,omitempty"`

	Carrier         string         `json:"carrier"`
	TrackingNumber  string         `gorm:"column:tracking_number" json:"tracking_number,omitempty"`
	ShippingAddress datatypes.JSON `gorm:"column:shipping_address;type:jsonb" json:"shipping_address,omitempty"`

	EstimatedDelivery   *time.Time `gorm:"column:estimated_delivery" json:"estimated_delivery,omitempty"`
	Status              string     `gorm:"not null;default:'preparing'" json:"status"`
	SpecialInstructions string     `gorm:"column:special_instructions" json:"special_instructions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "shipments" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
