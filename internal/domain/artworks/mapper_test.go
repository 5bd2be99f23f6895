package artworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/values"
)

func TestRowRoundTrip(t *testing.T) {
	depth := 2.0
	price := 850.0
	a := Artwork{
		ID:          "a1",
		ArtistID:    "artist1",
		Title:       "Blue Harbor",
		Description: "Oil on linen",
		Type:        TypePainting,
		Medium:      "oil",
		Dimensions: values.Dimensions{
			Height: 30, Width: 24, Depth: &depth, Unit: values.UnitInch,
		},
		Year:         2023,
		Images:       []string{"harbor-front.jpg", "harbor-detail.jpg"},
		ListingPrice: &price,
		Visibility:   VisibilityActive,
		Status:       StatusAvailable,
		CurrentOwner: "Artist",
		EditionInfo:  &values.EditionInfo{Number: 3, Size: 25},
	}

	r, err := ToRow(a)
	require.NoError(t, err)
	back, err := FromRow(r)
	require.NoError(t, err)

	assert.Equal(t, a, back)
}

func TestFromRowSubstitutesDefaults(t *testing.T) {
	back, err := FromRow(Row{ID: "a2", ArtistID: "artist1", Title: "Untitled"})
	require.NoError(t, err)

	assert.Equal(t, VisibilityPrivate, back.Visibility)
	assert.Equal(t, StatusAvailable, back.Status)
	assert.Equal(t, "Artist", back.CurrentOwner)
	assert.Equal(t, values.UnitInch, back.Dimensions.Unit)
	require.NotNil(t, back.Images)
	assert.Empty(t, back.Images)
	assert.Nil(t, back.EditionInfo)
	assert.Nil(t, back.LastSale)
}

func TestToRowWritesImagesAsList(t *testing.T) {
	r, err := ToRow(Artwork{Title: "Untitled"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(r.Images))
}

func TestFromRowRejectsCorruptColumn(t *testing.T) {
	_, err := FromRow(Row{ID: "a3", Dimensions: []byte(`{broken`)})
	assert.Error(t, err)
}
