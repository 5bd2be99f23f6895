// Package lifecycle holds the shared status state machine used by every
// entity with a status lifecycle. Each entity package declares its own
// Machine with the legal transitions; illegal requests come back as a
// *TransitionError, never as a silent no-op.
package lifecycle

import "fmt"

// TransitionError names the entity, the state it is in, and the state
// that was requested.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: illegal transition from %q to %q", e.Entity, e.From, e.To)
}

// Machine is a fixed directed graph of states. Initial is the state
// assigned at creation; states with no outgoing edges are terminal.
type Machine[S ~string] struct {
	Entity  string
	Initial S
	Next    map[S][]S
}

// Known reports whether s is a state of the machine at all.
func (m Machine[S]) Known(s S) bool {
	if s == m.Initial {
		return true
	}
	if _, ok := m.Next[s]; ok {
		return true
	}
	for _, targets := range m.Next {
		for _, t := range targets {
			if t == s {
				return true
			}
		}
	}
	return false
}

// CanTransition reports whether to is in the adjacency set of from.
func (m Machine[S]) CanTransition(from, to S) bool {
	for _, t := range m.Next[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (m Machine[S]) Terminal(s S) bool {
	return len(m.Next[s]) == 0
}

// Transition returns the requested state if it is reachable from the
// current one, and a *TransitionError otherwise.
func (m Machine[S]) Transition(from, to S) (S, error) {
	if !m.CanTransition(from, to) {
		return from, &TransitionError{Entity: m.Entity, From: string(from), To: string(to)}
	}
	return to, nil
}
