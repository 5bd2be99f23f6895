package visits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
)

func TestLifecycle(t *testing.T) {
	v := Visit{Status: StatusPending}

	require.NoError(t, Transition(&v, StatusConfirmed))
	require.NoError(t, Transition(&v, StatusCompleted))
	assert.Equal(t, StatusCompleted, v.Status)
	assert.True(t, Machine.Terminal(StatusCompleted))
}

func TestCancellationWindow(t *testing.T) {
	v := Visit{Status: StatusPending}
	require.NoError(t, Transition(&v, StatusCancelled))

	v = Visit{Status: StatusConfirmed}
	require.NoError(t, Transition(&v, StatusCancelled))

	v = Visit{Status: StatusCompleted}
	assert.Error(t, Transition(&v, StatusCancelled))
}

func TestPendingCannotCompleteDirectly(t *testing.T) {
	v := Visit{Status: StatusPending}
	assert.Error(t, Transition(&v, StatusCompleted))
	assert.Equal(t, StatusPending, v.Status)
}

func TestCancelledIsTerminal(t *testing.T) {
	v := Visit{Status: StatusCancelled}
	assert.Error(t, Transition(&v, StatusPending))
	assert.Error(t, Transition(&v, StatusConfirmed))
}

func TestValidateCreate(t *testing.T) {
	errs := Validate(Draft{}, validate.Create)
	assert.Equal(t, []string{
		"Collector name is required",
		"Date is required",
		"Time is required",
	}, errs)
}

func TestValidateValidDraft(t *testing.T) {
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	slot := "14:30"
	d := Draft{
		CollectorInfo: &values.ContactInfo{Name: "Dana Wells"},
		Date:          &date,
		Time:          &slot,
	}
	assert.Empty(t, Validate(d, validate.Create))
}

func TestNewStartsPending(t *testing.T) {
	v := New("artist1", Draft{})
	assert.Equal(t, StatusPending, v.Status)
	assert.Equal(t, "artist1", v.ArtistID)
}

func TestRowRoundTrip(t *testing.T) {
	artworkID := "a1"
	v := Visit{
		ID:                  "v1",
		ArtistID:            "artist1",
		CollectorInfo:       values.ContactInfo{Name: "Dana Wells", Email: "dana@example.com"},
		Date:                time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Time:                "14:30",
		Status:              StatusConfirmed,
		Reason:              "Studio tour",
		InterestedArtworkID: &artworkID,
		Reminders:           values.Reminders{Email: true},
	}

	r, err := ToRow(v)
	require.NoError(t, err)
	back, err := FromRow(r)
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestFromRowBlankStatusReadsAsPending(t *testing.T) {
	back, err := FromRow(Row{ID: "v2", ArtistID: "artist1"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, back.Status)
}
