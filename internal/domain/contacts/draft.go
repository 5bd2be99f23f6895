package contacts

import "studio-app/internal/domain/values"

type Draft struct {
	Name           *string               `json:"name"`
	Email          *string               `json:"email"`
	Phone          *string               `json:"phone"`
	Instagram      *string               `json:"instagram"`
	Company        *string               `json:"company"`
	Role           *string               `json:"role"`
	Type           *Type                 `json:"type"`
	Status         *Status               `json:"status"`
	PriorityScore  *values.Number        `json:"priority_score"`
	TotalPurchases *values.Number        `json:"total_purchases"`
	Notes          *string               `json:"notes"`
	OwnedArtworks  []values.OwnedArtwork `json:"owned_artworks"`
}

// New builds the entity a valid create draft describes.
func New(artistID string, d Draft) Contact {
	c := Contact{
		ArtistID:      artistID,
		Type:          TypeCollector,
		Status:        StatusPotential,
		OwnedArtworks: []values.OwnedArtwork{},
	}
	d.Apply(&c)
	return c
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(c *Contact) {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Email != nil {
		c.Email = *d.Email
	}
	if d.Phone != nil {
		c.Phone = *d.Phone
	}
	if d.Instagram != nil {
		c.Instagram = *d.Instagram
	}
	if d.Company != nil {
		c.Company = *d.Company
	}
	if d.Role != nil {
		c.Role = *d.Role
	}
	if d.Type != nil {
		c.Type = *d.Type
	}
	if d.Status != nil {
		c.Status = *d.Status
	}
	if d.PriorityScore != nil {
		c.PriorityScore = int(d.PriorityScore.Or(0))
	}
	if d.TotalPurchases != nil {
		c.TotalPurchases = int(d.TotalPurchases.Or(0))
	}
	if d.Notes != nil {
		c.Notes = *d.Notes
	}
	if d.OwnedArtworks != nil {
		c.OwnedArtworks = d.OwnedArtworks
	}
}
