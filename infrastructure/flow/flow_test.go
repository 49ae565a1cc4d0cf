package flow

import "testing"

func TestMachine_TransitionTable(t *testing.T) {
	m := New("search", map[State][]State{
		"search":  {"verify"},
		"verify":  {"confirm"},
		"confirm": {"result"},
	})

	cases := []struct {
		name string
		from State
		to   State
		ok   bool
	}{
		{name: "search to verify", from: "search", to: "verify", ok: true},
		{name: "verify to confirm", from: "verify", to: "confirm", ok: true},
		{name: "skip verify", from: "search", to: "confirm", ok: false},
		{name: "skip confirm", from: "verify", to: "result", ok: false},
		{name: "backwards", from: "confirm", to: "verify", ok: false},
		{name: "reset from result", from: "result", to: "search", ok: true},
		{name: "reset from confirm", from: "confirm", to: "search", ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Transition(tc.from, tc.to)
			if tc.ok {
				if err != nil {
					t.Fatalf("expected legal transition, got %v", err)
				}
				if got != tc.to {
					t.Fatalf("expected state %s, got %s", tc.to, got)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected illegal transition %s -> %s", tc.from, tc.to)
			}
			if got != tc.from {
				t.Fatalf("illegal transition must keep state %s, got %s", tc.from, got)
			}
		})
	}
}
