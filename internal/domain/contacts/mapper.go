package contacts

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes a contact for storage. The purchase history is always
// written as a list, never null.
func ToRow(c Contact) (Row, error) {
	r := Row{
		ID:             c.ID,
		ArtistID:       c.ArtistID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Instagram:      c.Instagram,
		Company:        c.Company,
		Role:           c.Role,
		Type:           string(c.Type),
		Status:         string(c.Status),
		PriorityScore:  c.PriorityScore,
		TotalPurchases: c.TotalPurchases,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}

	owned := c.OwnedArtworks
	if owned == nil {
		owned = []values.OwnedArtwork{}
	}
	var err error
	if r.OwnedArtworks, err = values.MarshalColumn(owned); err != nil {
		return Row{}, err
	}
	return r, nil
}

// FromRow reconstructs the entity with defaults for type, status, and a
// non-nil purchase history.
func FromRow(r Row) (Contact, error) {
	c := Contact{
		ID:             r.ID,
		ArtistID:       r.ArtistID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Instagram:      r.Instagram,
		Company:        r.Company,
		Role:           r.Role,
		Type:           Type(r.Type),
		Status:         Status(r.Status),
		PriorityScore:  r.PriorityScore,
		TotalPurchases: r.TotalPurchases,
		Notes:          r.Notes,
		OwnedArtworks:  []values.OwnedArtwork{},
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.OwnedArtworks, &c.OwnedArtworks); err != nil {
		return Contact{}, fmt.Errorf("contact %s: owned_artworks: %w", r.ID, err)
	}
	if c.OwnedArtworks == nil {
		c.OwnedArtworks = []values.OwnedArtwork{}
	}

	if c.Type == "" {
		c.Type = TypeCollector
	}
	if c.Status == "" {
		c.Status = StatusPotential
	}
	return c, nil
}
