package invoices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-app/internal/domain/invoices"
	"studio-app/internal/domain/query"
)

func TestListFilterMatchesEffectiveStatus(t *testing.T) {
	now := time.Now()
	lapsed := toResponse(invoices.Invoice{
		ID: "i1", Status: invoices.StatusPending, DueDate: now.AddDate(0, 0, -10),
	}, now)
	current := toResponse(invoices.Invoice{
		ID: "i2", Status: invoices.StatusPending, DueDate: now.AddDate(0, 0, 10),
	}, now)
	require.Equal(t, invoices.StatusOverdue, lapsed.EffectiveStatus)

	out := query.Filter([]InvoiceResponse{lapsed, current}, query.Spec{Status: "overdue"})
	require.Len(t, out, 1)
	assert.Equal(t, "i1", out[0].ID)

	out = query.Filter([]InvoiceResponse{lapsed, current}, query.Spec{Status: "pending"})
	require.Len(t, out, 1)
	assert.Equal(t, "i2", out[0].ID)
}

func TestResponseStatusValue(t *testing.T) {
	now := time.Now()
	r := toResponse(invoices.Invoice{Status: invoices.StatusPaid, DueDate: now.AddDate(0, 0, -10)}, now)
	assert.Equal(t, "paid", r.StatusValue())
}
