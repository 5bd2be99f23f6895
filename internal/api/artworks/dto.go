package artworks

import (
	"time"

	"studio-app/internal/domain/values"
)

// TransitionRequest asks for a status change; sold is not accepted here,
// it only happens through a sale.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// SaleRequest records the completed sale that moves a work to sold.
type SaleRequest struct {
	Price         values.Number `json:"price"`
	Date          *time.Time    `json:"date"`
	CertificateID string        `json:"certificateId"`
	Provenance    string        `json:"provenance"`
	NewOwner      string        `json:"newOwner"`
}
