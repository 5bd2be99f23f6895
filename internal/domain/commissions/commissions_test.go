package commissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
)

func nump(f float64) *values.Number {
	return &values.Number{Float64: f, Valid: true}
}

func validDetails() *RequestDetailsInput {
	return &RequestDetailsInput{
		Type:        "painting",
		Description: "Harbor scene in oils",
		Dimensions: values.DimensionsInput{
			Height: values.Number{Float64: 30, Valid: true},
			Width:  values.Number{Float64: 24, Valid: true},
		},
	}
}

func TestHappyPath(t *testing.T) {
	c := Commission{Status: StatusNew}
	for _, to := range []Status{StatusReview, StatusAccepted, StatusInProgress, StatusCompleted} {
		require.NoError(t, Transition(&c, to))
	}
	assert.Equal(t, StatusCompleted, c.Status)
	assert.True(t, Machine.Terminal(StatusCompleted))
}

func TestDeclineFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []Status{StatusNew, StatusReview, StatusAccepted, StatusInProgress, StatusDeferred} {
		c := Commission{Status: from}
		require.NoError(t, Transition(&c, StatusDeclined), "from %s", from)
		assert.Equal(t, StatusDeclined, c.Status)
	}
}

func TestDeferredReentersReviewOnly(t *testing.T) {
	c := Commission{Status: StatusDeferred}
	require.NoError(t, Transition(&c, StatusReview))

	c.Status = StatusDeferred
	err := Transition(&c, StatusAccepted)
	require.Error(t, err)

	var te *lifecycle.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "commission", te.Entity)
	assert.Equal(t, "deferred", te.From)
}

func TestTerminalStatesRefuseEverything(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusDeclined} {
		c := Commission{Status: from}
		assert.Error(t, Transition(&c, StatusReview))
		assert.Error(t, Transition(&c, StatusDeferred))
		assert.Equal(t, from, c.Status)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New("artist1", Draft{
		CollectorInfo:  &values.ContactInfo{Name: "Dana", Email: "dana@example.com"},
		RequestDetails: validDetails(),
	})
	assert.Equal(t, StatusNew, c.Status)
	assert.Equal(t, PriorityNormal, c.Priority)
	assert.Equal(t, "artist1", c.ArtistID)
}

func TestValidateCreateRequiresCollectorAndDescription(t *testing.T) {
	errs := Validate(Draft{}, validate.Create)
	assert.Equal(t, []string{
		"Collector name is required",
		"Collector email is required",
		"Description is required",
	}, errs)
}

func TestCheckDepositMayNotExceedPrice(t *testing.T) {
	c := New("artist1", Draft{
		CollectorInfo:  &values.ContactInfo{Name: "Dana", Email: "dana@example.com"},
		RequestDetails: validDetails(),
		Price:          nump(1000),
		Deposit:        nump(1500),
	})
	assert.Equal(t, []string{"Deposit cannot exceed price"}, Check(c))

	Draft{Deposit: nump(500)}.Apply(&c)
	assert.Empty(t, Check(c))
}

func TestCheckDepositOnlyPatchAgainstStoredPrice(t *testing.T) {
	c := New("artist1", Draft{
		CollectorInfo:  &values.ContactInfo{Name: "Dana", Email: "dana@example.com"},
		RequestDetails: validDetails(),
		Price:          nump(1000),
	})

	// The patch alone is a valid draft; the cap only shows once it is
	// held against the stored price.
	patch := Draft{Deposit: nump(1500)}
	assert.Empty(t, Validate(patch, validate.Update))
	patch.Apply(&c)
	assert.Equal(t, []string{"Deposit cannot exceed price"}, Check(c))
}

func TestCheckWithoutPriceAcceptsAnyDeposit(t *testing.T) {
	c := New("artist1", Draft{
		CollectorInfo:  &values.ContactInfo{Name: "Dana", Email: "dana@example.com"},
		RequestDetails: validDetails(),
		Deposit:        nump(500),
	})
	assert.Empty(t, Check(c))
}

func TestValidateNegativeAmounts(t *testing.T) {
	errs := Validate(Draft{Price: nump(-1), Deposit: nump(-1)}, validate.Update)
	assert.Equal(t, []string{"Price cannot be negative", "Deposit cannot be negative"}, errs)
}

func TestValidateUnknownPriority(t *testing.T) {
	p := Priority("whenever")
	errs := Validate(Draft{Priority: &p}, validate.Update)
	assert.Equal(t, []string{`Unknown priority "whenever"`}, errs)
}

func TestValidateInvalidDimensions(t *testing.T) {
	d := Draft{RequestDetails: &RequestDetailsInput{Description: "Small piece"}}
	errs := Validate(d, validate.Update)
	assert.Equal(t, []string{"Invalid dimensions"}, errs)
}
