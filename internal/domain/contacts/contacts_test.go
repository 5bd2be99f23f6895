package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
)

func strp(s string) *string { return &s }

func nump(f float64) *values.Number {
	return &values.Number{Float64: f, Valid: true}
}

func TestNewDefaults(t *testing.T) {
	c := New("artist1", Draft{Name: strp("Dana Wells")})

	assert.Equal(t, TypeCollector, c.Type)
	assert.Equal(t, StatusPotential, c.Status)
	require.NotNil(t, c.OwnedArtworks)
	assert.Empty(t, c.OwnedArtworks)
}

func TestStatusIsAPlainAttribute(t *testing.T) {
	s := StatusActive
	c := New("artist1", Draft{Name: strp("Dana Wells"), Status: &s})
	assert.Equal(t, StatusActive, c.Status)

	inactive := StatusInactive
	Draft{Status: &inactive}.Apply(&c)
	assert.Equal(t, StatusInactive, c.Status)
}

func TestRowRoundTrip(t *testing.T) {
	c := Contact{
		ID:             "c1",
		ArtistID:       "artist1",
		Name:           "Dana Wells",
		Email:          "dana@example.com",
		Company:        "Wells Gallery",
		Type:           TypeGallery,
		Status:         StatusActive,
		PriorityScore:  80,
		TotalPurchases: 3,
		OwnedArtworks: []values.OwnedArtwork{
			{ArtworkID: "a1", PurchaseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PurchasePrice: 1200},
		},
	}

	r, err := ToRow(c)
	require.NoError(t, err)
	back, err := FromRow(r)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestFromRowNeverReturnsNilHistory(t *testing.T) {
	back, err := FromRow(Row{ID: "c2", Name: "Dana Wells"})
	require.NoError(t, err)

	require.NotNil(t, back.OwnedArtworks)
	assert.Empty(t, back.OwnedArtworks)
	assert.Equal(t, TypeCollector, back.Type)
	assert.Equal(t, StatusPotential, back.Status)
}

func TestValidate(t *testing.T) {
	assert.Equal(t, []string{"Name is required"}, Validate(Draft{}, validate.Create))

	ty := Type("dealer")
	assert.Equal(t, []string{`Unknown contact type "dealer"`}, Validate(Draft{Type: &ty}, validate.Update))

	s := Status("archived")
	assert.Equal(t, []string{`Unknown contact status "archived"`}, Validate(Draft{Status: &s}, validate.Update))

	assert.Equal(t, []string{"Priority score must be between 0 and 100"}, Validate(Draft{PriorityScore: nump(150)}, validate.Update))
	assert.Empty(t, Validate(Draft{PriorityScore: nump(100)}, validate.Update))

	assert.Equal(t, []string{"Total purchases cannot be negative"}, Validate(Draft{TotalPurchases: nump(-1)}, validate.Update))
}
