package visits

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of a studio visit.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	CollectorInfo datatypes.JSON `gorm:"column:collector_info;type:jsonb" json:"collector_info,omitempty"`
	Date          time.Time      `json:"date"`
	Time          string         `json:"time"`
	Status        string         `gorm:"not null;default:'pending'" json:"status"`
	Reason        string         `json:"reason,omitempty"`

	InterestedArtworkID *string        `gorm:"column:interested_artwork_id;type:uuid" json:"interested_artwork_id,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	Reminders           datatypes.JSON `gorm:"type:jsonb" json:"reminders,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "studio_visits" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
