// Package flow models the console's multi-step screens as explicit finite
// state machines: named states plus a transition table, instead of ad hoc
// step counters. The agency deletion flow and the stock intake wizard build
// on it so their step logic is testable in isolation.
package flow

import "fmt"

// State is a named machine state.
type State string

// Machine validates transitions against a fixed table. It carries no
// payload; callers keep their own flow data next to the current state.
type Machine struct {
	initial     State
	transitions map[State][]State
}

// New builds a machine with the given initial state and transition table.
func New(initial State, transitions map[State][]State) *Machine {
	return &Machine{initial: initial, transitions: transitions}
}

// Initial returns the machine's start state.
func (m *Machine) Initial() State {
	return m.initial
}

// Can reports whether from→to is a legal transition. Any state may reset to
// the initial state.
func (m *Machine) Can(from, to State) bool {
	if to == m.initial {
		return true
	}
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns to when from→to is legal, or an error naming both
// states otherwise.
func (m *Machine) Transition(from, to State) (State, error) {
	if !m.Can(from, to) {
		return from, fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	return to, nil
}
