package contacts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of a contact.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Company   string `json:"company,omitempty"`
	Role      string `json:"role,omitempty"`

	Type           string         `gorm:"not null;default:'collector'" json:"type"`
	Status         string         `gorm:"not null;default:'potential'" json:"status"`
	PriorityScore  int            `gorm:"column:priority_score" json:"priority_score"`
	TotalPurchases int            `gorm:"column:total_purchases" json:"total_purchases"`
	Notes          string         `json:"notes,omitempty"`
	OwnedArtworks  datatypes.JSON `gorm:"column:owned_artworks;type:jsonb" json:"owned_artworks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "contacts" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
