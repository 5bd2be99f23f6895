package commissions

import "studio-app/internal/domain/lifecycle"

// Machine is the commission lifecycle. The happy path walks
// new → review → accepted → in_progress → completed; declined and
// deferred are reachable from every non-terminal state, and a deferred
// request can re-enter review. Completed and declined are terminal.
var Machine = lifecycle.Machine[Status]{
	Entity:  "commission",
	Initial: StatusNew,
	Next: map[Status][]Status{
		StatusNew:        {StatusReview, StatusDeferred, StatusDeclined},
		StatusReview:     {StatusAccepted, StatusDeferred, StatusDeclined},
		StatusAccepted:   {StatusInProgress, StatusDeferred, StatusDeclined},
		StatusInProgress: {StatusCompleted, StatusDeferred, StatusDeclined},
		StatusDeferred:   {StatusReview, StatusDeclined},
		StatusCompleted:  {},
		StatusDeclined:   {},
	},
}

// Transition moves the commission to the requested status.
func Transition(c *Commission, to Status) error {
	next, err := Machine.Transition(c.Status, to)
	if err != nil {
		return err
	}
	c.Status = next
	return nil
}
