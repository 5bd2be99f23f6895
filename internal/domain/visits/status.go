package visits

import "studio-app/internal/domain/lifecycle"

// Machine is the visit lifecycle: pending → confirmed → completed, with
// cancellation possible until the visit happened.
var Machine = lifecycle.Machine[Status]{
	Entity:  "studio_visit",
	Initial: StatusPending,
	Next: map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	},
}

// Transition moves the visit to the requested status.
func Transition(v *Visit, to Status) error {
	next, err := Machine.Transition(v.Status, to)
	if err != nil {
		return err
	}
	v.Status = next
	return nil
}
