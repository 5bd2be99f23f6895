package shipments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
)

func strp(s string) *string { return &s }

func TestForwardOnlyLifecycle(t *testing.T) {
	s := Shipment{Status: StatusPreparing}

	require.NoError(t, Transition(&s, StatusShipped))
	require.NoError(t, Transition(&s, StatusDelivered))
	assert.Equal(t, StatusDelivered, s.Status)
	assert.True(t, Machine.Terminal(StatusDelivered))
}

func TestNoBacktracking(t *testing.T) {
	s := Shipment{Status: StatusShipped}
	err := Transition(&s, StatusPreparing)
	require.Error(t, err)
	assert.Equal(t, StatusShipped, s.Status)

	var te *lifecycle.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "shipment", te.Entity)
}

func TestNoSkippingAhead(t *testing.T) {
	s := Shipment{Status: StatusPreparing}
	assert.Error(t, Transition(&s, StatusDelivered))
	assert.Equal(t, StatusPreparing, s.Status)
}

func TestNewStartsPreparing(t *testing.T) {
	s := New("artist1", Draft{ArtworkID: strp("a1")})
	assert.Equal(t, StatusPreparing, s.Status)
	assert.Equal(t, "artist1", s.ArtistID)
	assert.Equal(t, "a1", s.ArtworkID)
}

func TestValidateCreate(t *testing.T) {
	errs := Validate(Draft{}, validate.Create)
	assert.Equal(t, []string{
		"Artwork is required",
		"Carrier is required",
		"Street is required",
		"City is required",
	}, errs)
}

func TestValidateValidDraft(t *testing.T) {
	d := Draft{
		ArtworkID: strp("a1"),
		Carrier:   strp("FedEx"),
		ShippingAddress: &values.Address{
			Street: "12 Pier Rd", City: "Portland", State: "ME", Zip: "04101", Country: "US",
		},
	}
	assert.Empty(t, Validate(d, validate.Create))
}

func TestRowRoundTrip(t *testing.T) {
	s := Shipment{
		ID:             "s1",
		ArtistID:       "artist1",
		ArtworkID:      "a1",
		BuyerID:        "c1",
		Carrier:        "FedEx",
		TrackingNumber: "794658201337",
		ShippingAddress: values.Address{
			Street: "12 Pier Rd", City: "Portland", State: "ME", Zip: "04101", Country: "US",
		},
		Status:              StatusShipped,
		SpecialInstructions: "Signature required",
	}

	r, err := ToRow(s)
	require.NoError(t, err)
	back, err := FromRow(r)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestFromRowBlankStatusReadsAsPreparing(t *testing.T) {
	back, err := FromRow(Row{ID: "s2", ArtistID: "artist1"})
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, back.Status)
}
