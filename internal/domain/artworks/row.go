package artworks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of an artwork: snake-style columns, composite
// values flattened into jsonb.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `gorm:"not null" json:"type"`
	Medium      string `json:"medium,omitempty"`

	Dimensions datatypes.JSON `gorm:"type:jsonb" json:"dimensions,omitempty"`
	Year       int            `json:"year,omitempty"`
	Images     datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`

	ListingPrice *float64 `gorm:"column:listing_price" json:"listing_price,omitempty"`
	Visibility   string   `gorm:"not null;default:'private'" json:"visibility"`
	Status       string   `gorm:"not null;default:'available'" json:"status"`
	CurrentOwner string   `gorm:"column:current_owner" json:"current_owner,omitempty"`

	EditionInfo datatypes.JSON `gorm:"column:edition_info;type:jsonb" json:"edition_info,omitempty"`
	LastSale    datatypes.JSON `gorm:"column:last_sale;type:jsonb" json:"last_sale,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "artworks" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
