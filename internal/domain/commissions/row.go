package commissions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of a commission.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	CollectorInfo  datatypes.JSON `gorm:"column:collector_info;type:jsonb" json:"collector_info,omitempty"`
	RequestDetails datatypes.JSON `gorm:"column:request_details;type:jsonb" json:"request_details,omitempty"`

	Price    *float64 `json:"price,omitempty"`
	Deposit  *float64 `json:"deposit,omitempty"`
	Status   string   `gorm:"not null;default:'new'" json:"status"`
	Priority string   `gorm:"not null;default:'normal'" json:"priority"`
	Notes    string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "commissions" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
