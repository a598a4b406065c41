package checkout

// State tracks one checkout attempt. Failed is absorbing but the user may
// start over from Reviewing with the cart intact.
type State string

const (
	StateReviewing       State = "REVIEWING"
	StateValidating      State = "VALIDATING"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateConfirmed       State = "CONFIRMED"
	StateFailed          State = "FAILED"
)

var transitions = map[State][]State{
	StateReviewing:       {StateValidating},
	StateValidating:      {StateAwaitingPayment, StateFailed},
	StateAwaitingPayment: {StateConfirmed, StateFailed},
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateFailed
}

func (s State) String() string {
	return string(s)
}
