package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState = string

var testMachine = Machine[testState]{
	Entity:  "widget",
	Initial: "open",
	Next: map[testState][]testState{
		"open":   {"active", "closed"},
		"active": {"closed"},
		"closed": {},
	},
}

func TestTransition(t *testing.T) {
	next, err := testMachine.Transition("open", "active")
	require.NoError(t, err)
	assert.Equal(t, "active", next)

	next, err = testMachine.Transition("closed", "open")
	require.Error(t, err)
	assert.Equal(t, "closed", next)

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "widget", te.Entity)
	assert.Equal(t, "closed", te.From)
	assert.Equal(t, "open", te.To)
}

func TestTransitionUnknownState(t *testing.T) {
	_, err := testMachine.Transition("open", "bogus")
	assert.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, testMachine.CanTransition("open", "closed"))
	assert.False(t, testMachine.CanTransition("active", "open"))
	assert.False(t, testMachine.CanTransition("closed", "closed"))
}

func TestTerminal(t *testing.T) {
	assert.True(t, testMachine.Terminal("closed"))
	assert.False(t, testMachine.Terminal("open"))
}

func TestKnown(t *testing.T) {
	assert.True(t, testMachine.Known("open"))
	assert.True(t, testMachine.Known("active"))
	assert.True(t, testMachine.Known("closed"))
	assert.False(t, testMachine.Known("bogus"))
}
