package shipments

import "studio-app/internal/domain/lifecycle"

// Machine is the shipment lifecycle: preparing → shipped → delivered,
// strictly monotonic. Requesting an earlier state is rejected like any
// other illegal transition.
var Machine = lifecycle.Machine[Status]{
	Entity:  "shipment",
	Initial: StatusPreparing,
	Next: map[Status][]Status{
		StatusPreparing: {StatusShipped},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
	},
}

// Transition moves the shipment to the requested status.
func Transition(s *Shipment, to Status) error {
	next, err := Machine.Transition(s.Status, to)
	if err != nil {
		return err
	}
	s.Status = next
	return nil
}
