package invoices

import (
	"time"

	"studio-app/internal/domain/lifecycle"
)

// Machine is the stored invoice lifecycle: draft → pending → paid.
// Overdue is deliberately absent — it is computed, not stored, so a
// payment moves pending straight to paid regardless of the due date.
var Machine = lifecycle.Machine[Status]{
	Entity:  "invoice",
	Initial: StatusDraft,
	Next: map[Status][]Status{
		StatusDraft:   {StatusPending},
		StatusPending: {StatusPaid},
		StatusPaid:    {},
	},
}

// Transition moves the invoice to the requested stored status.
func Transition(i *Invoice, to Status) error {
	next, err := Machine.Transition(i.Status, to)
	if err != nil {
		return err
	}
	i.Status = next
	return nil
}

// EffectiveStatus is the read-side projection: a pending invoice past
// its due date reports overdue while the stored status stays pending.
func EffectiveStatus(i Invoice, now time.Time) Status {
	if i.Status == StatusPending && !i.DueDate.IsZero() && i.DueDate.Before(now) {
		return StatusOverdue
	}
	return i.Status
}
