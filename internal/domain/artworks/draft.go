package artworks

import "studio-app/internal/domain/values"

// Draft is an artwork as submitted by the UI: every field optional so
// the same shape serves create and patch. Status is absent on purpose —
// it only moves through the state machine.
type Draft struct {
	Title        *string                 `json:"title"`
	Description  *string                 `json:"description"`
	Type         *Type                   `json:"type"`
	Medium       *string                 `json:"medium"`
	Dimensions   *values.DimensionsInput `json:"dimensions"`
	Year         *values.Number          `json:"year"`
	Images       []string                `json:"images"`
	ListingPrice *values.Number          `json:"listingPrice"`
	Visibility   *Visibility             `json:"visibility"`
	CurrentOwner *string                 `json:"currentOwner"`
	EditionInfo  *values.EditionInfo     `json:"editionInfo"`
}

// New builds the entity a valid create draft describes. Works start
// private and available, owned by the artist.
func New(artistID string, d Draft) Artwork {
	a := Artwork{
		ArtistID:     artistID,
		Status:       Machine.Initial,
		Visibility:   VisibilityPrivate,
		CurrentOwner: "Artist",
		Images:       []string{},
		Dimensions:   values.Dimensions{Unit: values.UnitInch},
	}
	d.Apply(&a)
	return a
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(a *Artwork) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.Description != nil {
		a.Description = *d.Description
	}
	if d.Type != nil {
		a.Type = *d.Type
	}
	if d.Medium != nil {
		a.Medium = *d.Medium
	}
	if d.Dimensions != nil {
		dim := d.Dimensions.Dimensions()
		if dim.Unit == "" {
			dim.Unit = a.Dimensions.Unit
		}
		a.Dimensions = dim
	}
	if d.Year != nil && d.Year.Valid {
		a.Year = int(d.Year.Float64)
	}
	if d.Images != nil {
		a.Images = d.Images
	}
	if d.ListingPrice != nil {
		a.ListingPrice = d.ListingPrice.Ptr()
	}
	if d.Visibility != nil {
		a.Visibility = *d.Visibility
	}
	if d.CurrentOwner != nil {
		a.CurrentOwner = *d.CurrentOwner
	}
	if d.EditionInfo != nil {
		info := *d.EditionInfo
		a.EditionInfo = &info
	}
}
