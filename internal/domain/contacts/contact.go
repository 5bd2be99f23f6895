// Package contacts is the artist's address book: collectors, galleries,
// and curators, with a purchase history per contact. Contact status is a
// plain attribute, not a state machine.
package contacts

import (
	"time"

	"studio-app/internal/domain/values"
)

type Type string

const (
	TypeCollector Type = "collector"
	TypeGallery   Type = "gallery"
	TypeCurator   Type = "curator"
)

func KnownType(t Type) bool {
	switch t {
	case TypeCollector, TypeGallery, TypeCurator:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusPotential Status = "potential"
	StatusInactive  Status = "inactive"
)

func KnownStatus(s Status) bool {
	switch s {
	case StatusActive, StatusPotential, StatusInactive:
		return true
	default:
		return false
	}
}

type Contact struct {
	ID             string                `json:"id"`
	ArtistID       string                `json:"artistId"`
	Name           string                `json:"name"`
	Email          string                `json:"email,omitempty"`
	Phone          string                `json:"phone,omitempty"`
	Instagram      string                `json:"instagram,omitempty"`
	Company        string                `json:"company,omitempty"`
	Role           string                `json:"role,omitempty"`
	Type           Type                  `json:"type"`
	Status         Status                `json:"status"`
	PriorityScore  int                   `json:"priority_score"`
	TotalPurchases int                   `json:"total_purchases"`
	Notes          string                `json:"notes,omitempty"`
	OwnedArtworks  []values.OwnedArtwork `json:"owned_artworks"`
	CreatedAt      time.Time             `json:"createdAt,omitempty"`
	UpdatedAt      time.Time             `json:"updatedAt,omitempty"`
}

func (c Contact) SearchFields() []string {
	return []string{c.Name, c.Email, c.Company, string(c.Type)}
}

func (c Contact) StatusValue() string { return string(c.Status) }
