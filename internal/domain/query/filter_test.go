package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type piece struct {
	title      string
	medium     string
	status     string
	visibility string
}

func (p piece) SearchFields() []string  { return []string{p.title, p.medium} }
func (p piece) StatusValue() string     { return p.status }
func (p piece) VisibilityValue() string { return p.visibility }

var pieces = []piece{
	{title: "Blue Harbor", medium: "oil", status: "available", visibility: "active"},
	{title: "Untitled IV", medium: "charcoal", status: "sold", visibility: "private"},
	{title: "Harbor Study", medium: "watercolor", status: "available", visibility: "private"},
}

func TestFilterBlankSpecReturnsAll(t *testing.T) {
	out := Filter(pieces, Spec{})
	assert.Equal(t, pieces, out)
}

func TestFilterQueryIsCaseInsensitiveSubstring(t *testing.T) {
	out := Filter(pieces, Spec{Query: "HARBOR"})
	assert.Equal(t, []piece{pieces[0], pieces[2]}, out)

	out = Filter(pieces, Spec{Query: "charc"})
	assert.Equal(t, []piece{pieces[1]}, out)
}

func TestFilterQueryWhitespaceOnlyMatchesAll(t *testing.T) {
	out := Filter(pieces, Spec{Query: "   "})
	assert.Equal(t, pieces, out)
}

func TestFilterByStatus(t *testing.T) {
	out := Filter(pieces, Spec{Status: "sold"})
	assert.Equal(t, []piece{pieces[1]}, out)
}

func TestFilterByVisibility(t *testing.T) {
	out := Filter(pieces, Spec{Visibility: "private"})
	assert.Equal(t, []piece{pieces[1], pieces[2]}, out)
}

func TestFilterCombinesPredicates(t *testing.T) {
	out := Filter(pieces, Spec{Query: "harbor", Status: "available", Visibility: "private"})
	assert.Equal(t, []piece{pieces[2]}, out)
}

func TestFilterKeepsOriginalOrder(t *testing.T) {
	out := Filter(pieces, Spec{Status: "available"})
	assert.Equal(t, []piece{pieces[0], pieces[2]}, out)
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	out := Filter(pieces, Spec{Query: "bronze"})
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

type plain struct{ status string }

func (p plain) SearchFields() []string { return nil }
func (p plain) StatusValue() string    { return p.status }

func TestFilterVisibilityOnEntityWithoutToggle(t *testing.T) {
	out := Filter([]plain{{status: "pending"}}, Spec{Visibility: "active"})
	assert.Empty(t, out)
}
