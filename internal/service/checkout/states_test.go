package checkout

import "testing"

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from, to State
		allowed  bool
	}{
		{StateReviewing, StateValidating, true},
		{StateValidating, StateAwaitingPayment, true},
		{StateValidating, StateFailed, true},
		{StateAwaitingPayment, StateConfirmed, true},
		{StateAwaitingPayment, StateFailed, true},
		{StateReviewing, StateConfirmed, false},
		{StateConfirmed, StateFailed, false},
		{StateFailed, StateValidating, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !StateConfirmed.IsTerminal() || !StateFailed.IsTerminal() {
		t.Fatal("confirmed and failed must be terminal")
	}
	if StateReviewing.IsTerminal() || StateAwaitingPayment.IsTerminal() {
		t.Fatal("in-flight states must not be terminal")
	}
}
