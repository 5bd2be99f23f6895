// Package artworks is the portfolio entity: the works an artist tracks,
// lists, and eventually sells.
package artworks

import (
	"time"

	"studio-app/internal/domain/values"
)

// Type is the kind of work.
type Type string

const (
	TypePainting     Type = "painting"
	TypeSculpture    Type = "sculpture"
	TypePhotography  Type = "photography"
	TypeDigital      Type = "digital"
	TypeInstallation Type = "installation"
	TypeEdition      Type = "edition"
	TypeOther        Type = "other"
)

// Types lists every legal artwork type.
var Types = []Type{
	TypePainting, TypeSculpture, TypePhotography, TypeDigital,
	TypeInstallation, TypeEdition, TypeOther,
}

// KnownType reports whether t is one of the enumerated kinds.
func KnownType(t Type) bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// Visibility toggles independently of status.
type Visibility string

const (
	VisibilityActive  Visibility = "active"
	VisibilityPrivate Visibility = "private"
)

// Status is the sale lifecycle of a work.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusSold       Status = "sold"
	StatusInProgress Status = "in_progress"
)

// Artwork is the in-memory entity shape the UI works with. Field names
// and JSON tags are camel-style; the storage row uses snake-style
// columns (see Row and the mapper).
type Artwork struct {
	ID           string              `json:"id"`
	ArtistID     string              `json:"artistId"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	Type         Type                `json:"type"`
	Medium       string              `json:"medium,omitempty"`
	Dimensions   values.Dimensions   `json:"dimensions"`
	Year         int                 `json:"year,omitempty"`
	Images       []string            `json:"images"`
	ListingPrice *float64            `json:"listingPrice,omitempty"`
	Visibility   Visibility          `json:"visibility"`
	Status       Status              `json:"status"`
	CurrentOwner string              `json:"currentOwner"`
	EditionInfo  *values.EditionInfo `json:"editionInfo,omitempty"`
	LastSale     *values.SaleRecord  `json:"lastSale,omitempty"`
	CreatedAt    time.Time           `json:"createdAt,omitempty"`
	UpdatedAt    time.Time           `json:"updatedAt,omitempty"`
}

// SearchFields feeds the free-text filter.
func (a Artwork) SearchFields() []string {
	return []string{a.Title, a.Description, a.Medium, string(a.Type)}
}

func (a Artwork) StatusValue() string { return string(a.Status) }

func (a Artwork) VisibilityValue() string { return string(a.Visibility) }
