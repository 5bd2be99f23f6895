package commissions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/values"
)

func TestRowRoundTrip(t *testing.T) {
	price := 2400.0
	deposit := 600.0
	c := Commission{
		ID:            "c1",
		ArtistID:      "artist1",
		CollectorInfo: values.ContactInfo{Name: "Dana Wells", Email: "dana@example.com"},
		RequestDetails: RequestDetails{
			Type:        "painting",
			Medium:      "oil",
			Dimensions:  values.Dimensions{Height: 30, Width: 24, Unit: values.UnitInch},
			Description: "Harbor scene in oils",
			Timeline:    &Timeline{RequestedCompletion: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
		},
		Price:    &price,
		Deposit:  &deposit,
		Status:   StatusAccepted,
		Priority: PriorityUrgent,
		Notes:    "Collector prefers cool palette",
	}

	r, err := ToRow(c)
	require.NoError(t, err)
	back, err := FromRow(r)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestFromRowSubstitutesDefaults(t *testing.T) {
	back, err := FromRow(Row{ID: "c2", ArtistID: "artist1"})
	require.NoError(t, err)

	assert.Equal(t, StatusNew, back.Status)
	assert.Equal(t, PriorityNormal, back.Priority)
	assert.Equal(t, values.UnitInch, back.RequestDetails.Dimensions.Unit)
}
