package artworks

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
)

func strp(s string) *string { return &s }

func typep(ty Type) *Type { return &ty }

func nump(f float64) *values.Number {
	return &values.Number{Float64: f, Valid: true}
}

func visp(v Visibility) *Visibility { return &v }

func TestValidateCreateRequiresIdentity(t *testing.T) {
	errs := Validate(Draft{}, validate.Create)
	assert.Equal(t, []string{"Title is required", "Type is required"}, errs)
}

func TestValidateCreateValidDraft(t *testing.T) {
	errs := Validate(Draft{Title: strp("Blue Harbor"), Type: typep(TypePainting)}, validate.Create)
	assert.Empty(t, errs)
}

func TestValidateUnknownType(t *testing.T) {
	errs := Validate(Draft{Title: strp("x"), Type: typep("fresco")}, validate.Create)
	assert.Equal(t, []string{`Unknown artwork type "fresco"`}, errs)
}

func TestCheckActiveArtworkNeedsImage(t *testing.T) {
	a := New("artist1", Draft{
		Title:      strp("Blue Harbor"),
		Type:       typep(TypePainting),
		Visibility: visp(VisibilityActive),
		Images:     []string{"front.jpg"},
	})
	assert.Empty(t, Check(a))

	// A patch clearing the images breaks the invariant even though the
	// draft itself never mentions visibility.
	patch := Draft{Images: []string{}}
	assert.Empty(t, Validate(patch, validate.Update))
	patch.Apply(&a)
	assert.Equal(t, []string{"At least one image is required"}, Check(a))
}

func TestCheckVisibilityOnlyPatchUsesStoredImages(t *testing.T) {
	a := New("artist1", Draft{
		Title:  strp("Blue Harbor"),
		Type:   typep(TypePainting),
		Images: []string{"front.jpg"},
	})

	patch := Draft{Visibility: visp(VisibilityActive)}
	assert.Empty(t, Validate(patch, validate.Update))
	patch.Apply(&a)
	assert.Empty(t, Check(a))
}

func TestCheckPrivateArtworkMayHaveNoImages(t *testing.T) {
	a := New("artist1", Draft{Title: strp("Blue Harbor"), Type: typep(TypePainting)})
	assert.Empty(t, Check(a))
}

func TestValidateUnknownVisibility(t *testing.T) {
	errs := Validate(Draft{Visibility: visp("hidden")}, validate.Update)
	assert.Equal(t, []string{`Unknown visibility "hidden"`}, errs)
}

func TestValidateNegativePrice(t *testing.T) {
	errs := Validate(Draft{ListingPrice: nump(-10)}, validate.Update)
	assert.Equal(t, []string{"Price cannot be negative"}, errs)
}

func TestValidateYearRange(t *testing.T) {
	want := fmt.Sprintf("Year must be between 1800 and %d", time.Now().Year())

	assert.Equal(t, []string{want}, Validate(Draft{Year: nump(1750)}, validate.Update))
	assert.Equal(t, []string{want}, Validate(Draft{Year: nump(float64(time.Now().Year() + 1))}, validate.Update))
	assert.Empty(t, Validate(Draft{Year: nump(2020)}, validate.Update))
}

func TestValidateDimensions(t *testing.T) {
	bad := &values.DimensionsInput{
		Height: values.Number{Valid: true},
		Width:  values.Number{Float64: 24, Valid: true},
	}
	errs := Validate(Draft{Dimensions: bad}, validate.Update)
	assert.Equal(t, []string{"Invalid dimensions"}, errs)
}

func TestValidateEditionInfo(t *testing.T) {
	errs := Validate(Draft{EditionInfo: &values.EditionInfo{Number: 30, Size: 25}}, validate.Update)
	assert.Equal(t, []string{"Invalid edition info"}, errs)

	errs = Validate(Draft{EditionInfo: &values.EditionInfo{Number: 1, Size: 0}}, validate.Update)
	assert.Equal(t, []string{"Invalid edition info"}, errs)
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New("artist1", Draft{Title: strp("Blue Harbor"), Type: typep(TypePainting)})

	assert.Equal(t, "artist1", a.ArtistID)
	assert.Equal(t, StatusAvailable, a.Status)
	assert.Equal(t, VisibilityPrivate, a.Visibility)
	assert.Equal(t, "Artist", a.CurrentOwner)
	assert.Equal(t, values.UnitInch, a.Dimensions.Unit)
	require.NotNil(t, a.Images)
	assert.Empty(t, a.Images)
}

func TestDraftCoercesEmptyNumericStrings(t *testing.T) {
	var d Draft
	body := `{"title":"Blue Harbor","type":"painting","dimensions":{"height":"","width":"24"},"listingPrice":""}`
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	a := New("artist1", d)
	assert.Equal(t, 0.0, a.Dimensions.Height)
	assert.Equal(t, 24.0, a.Dimensions.Width)
	assert.Equal(t, values.UnitInch, a.Dimensions.Unit)
	assert.Nil(t, a.ListingPrice)
}
