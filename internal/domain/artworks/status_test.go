package artworks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/values"
)

func TestTransitionBetweenAvailableAndInProgress(t *testing.T) {
	a := Artwork{Status: StatusAvailable}

	require.NoError(t, Transition(&a, StatusInProgress))
	assert.Equal(t, StatusInProgress, a.Status)

	require.NoError(t, Transition(&a, StatusAvailable))
	assert.Equal(t, StatusAvailable, a.Status)
}

func TestTransitionRefusesSoldDirectly(t *testing.T) {
	a := Artwork{Status: StatusAvailable}

	err := Transition(&a, StatusSold)
	require.Error(t, err)
	assert.Equal(t, StatusAvailable, a.Status)

	var te *lifecycle.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "sold", te.To)
}

func TestRecordSale(t *testing.T) {
	a := Artwork{Status: StatusInProgress}
	sale := values.SaleRecord{Date: time.Now(), Price: 1200, CertificateID: "COA-17"}

	require.NoError(t, RecordSale(&a, sale))
	assert.Equal(t, StatusSold, a.Status)
	require.NotNil(t, a.LastSale)
	assert.Equal(t, 1200.0, a.LastSale.Price)
}

func TestSoldIsTerminal(t *testing.T) {
	a := Artwork{Status: StatusSold}

	assert.Error(t, Transition(&a, StatusAvailable))
	assert.Error(t, Transition(&a, StatusInProgress))
	assert.Error(t, RecordSale(&a, values.SaleRecord{Price: 50}))
	assert.Equal(t, StatusSold, a.Status)
	assert.True(t, Machine.Terminal(StatusSold))
}
