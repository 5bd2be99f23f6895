package invoices

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is the storage shape of an invoice. The number is unique per
// seller and immutable once assigned.
type Row struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID string `gorm:"type:uuid;not null;index:idx_invoices_seller_number,unique,priority:1" json:"seller_id"`
	Number   string `gorm:"not null;index:idx_invoices_seller_number,unique,priority:2" json:"number"`

	ArtworkID *string        `gorm:"type:uuid;index" json:"artwork_id,omitempty"`
	BuyerInfo datatypes.JSON `gorm:"column:buyer_info;type:jsonb" json:"buyer_info,omitempty"`
	Amount    float64        `gorm:"not null" json:"amount"`
	Status    string         `gorm:"not null;default:'draft'" json:"status"`
	DueDate   time.Time      `gorm:"column:due_date" json:"due_date"`
	Shipping  datatypes.JSON `gorm:"type:jsonb" json:"shipping,omitempty"`
	Notes     string         `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "invoices" }

func (r *Row) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
