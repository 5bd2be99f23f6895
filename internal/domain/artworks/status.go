package artworks

import (
	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/values"
)

// Machine is the artwork sale lifecycle. Available and in-progress swap
// freely; sold is terminal and only reachable through RecordSale.
var Machine = lifecycle.Machine[Status]{
	Entity:  "artwork",
	Initial: StatusAvailable,
	Next: map[Status][]Status{
		StatusAvailable:  {StatusInProgress, StatusSold},
		StatusInProgress: {StatusAvailable, StatusSold},
		StatusSold:       {},
	},
}

// Transition moves the artwork to the requested status. Sold is refused
// here: it must be entered atomically with a sale record via RecordSale.
func Transition(a *Artwork, to Status) error {
	if to == StatusSold {
		return &lifecycle.TransitionError{Entity: "artwork", From: string(a.Status), To: string(to)}
	}
	next, err := Machine.Transition(a.Status, to)
	if err != nil {
		return err
	}
	a.Status = next
	return nil
}

// RecordSale enters sold together with the sale that justifies it.
func RecordSale(a *Artwork, sale values.SaleRecord) error {
	next, err := Machine.Transition(a.Status, StatusSold)
	if err != nil {
		return err
	}
	a.Status = next
	a.LastSale = &sale
	return nil
}
