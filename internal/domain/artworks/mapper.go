package artworks

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes an artwork for storage. Composite values go to jsonb
// columns as-is; defaults are NOT applied here so that FromRow stays the
// single place that substitutes them.
func ToRow(a Artwork) (Row, error) {
	r := Row{
		ID:           a.ID,
		ArtistID:     a.ArtistID,
		Title:        a.Title,
		Description:  a.Description,
		Type:         string(a.Type),
		Medium:       a.Medium,
		Year:         a.Year,
		ListingPrice: a.ListingPrice,
		Visibility:   string(a.Visibility),
		Status:       string(a.Status),
		CurrentOwner: a.CurrentOwner,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	var err error
	if r.Dimensions, err = values.MarshalColumn(a.Dimensions); err != nil {
		return Row{}, err
	}
	images := a.Images
	if images == nil {
		images = []string{}
	}
	if r.Images, err = values.MarshalColumn(images); err != nil {
		return Row{}, err
	}
	if a.EditionInfo != nil {
		if r.EditionInfo, err = values.MarshalColumn(a.EditionInfo); err != nil {
			return Row{}, err
		}
	}
	if a.LastSale != nil {
		if r.LastSale, err = values.MarshalColumn(a.LastSale); err != nil {
			return Row{}, err
		}
	}
	return r, nil
}

// FromRow reconstructs the entity, substituting defaults for anything a
// committed row may legitimately lack: unit, visibility, status, current
// owner, and the images list. A row read back never yields a
// partially-populated required field.
func FromRow(r Row) (Artwork, error) {
	a := Artwork{
		ID:           r.ID,
		ArtistID:     r.ArtistID,
		Title:        r.Title,
		Description:  r.Description,
		Type:         Type(r.Type),
		Medium:       r.Medium,
		Year:         r.Year,
		ListingPrice: r.ListingPrice,
		Visibility:   Visibility(r.Visibility),
		Status:       Status(r.Status),
		CurrentOwner: r.CurrentOwner,
		Images:       []string{},
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.Dimensions, &a.Dimensions); err != nil {
		return Artwork{}, fmt.Errorf("artwork %s: dimensions: %w", r.ID, err)
	}
	if a.Dimensions.Unit == "" {
		a.Dimensions.Unit = values.UnitInch
	}
	if err := values.UnmarshalColumn(r.Images, &a.Images); err != nil {
		return Artwork{}, fmt.Errorf("artwork %s: images: %w", r.ID, err)
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	if len(r.EditionInfo) > 0 {
		a.EditionInfo = &values.EditionInfo{}
		if err := values.UnmarshalColumn(r.EditionInfo, a.EditionInfo); err != nil {
			return Artwork{}, fmt.Errorf("artwork %s: edition_info: %w", r.ID, err)
		}
	}
	if len(r.LastSale) > 0 {
		a.LastSale = &values.SaleRecord{}
		if err := values.UnmarshalColumn(r.LastSale, a.LastSale); err != nil {
			return Artwork{}, fmt.Errorf("artwork %s: last_sale: %w", r.ID, err)
		}
	}

	if a.Visibility == "" {
		a.Visibility = VisibilityPrivate
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}
	if a.CurrentOwner == "" {
		a.CurrentOwner = "Artist"
	}
	return a, nil
}
