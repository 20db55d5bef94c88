// Package guess implements the "guess the number" game controller.
// It owns the game state and drives a Presenter; it knows nothing about
// terminals, so it can be tested with a simple recording double.
package guess

// Secret number range, inclusive.
const (
	Min = 1
	Max = 20
)

// Phase is the game state machine position.
type Phase int

const (
	PhaseActive   Phase = iota // accepting guesses
	PhaseFinished              // secret found, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// GameState is the whole mutable state of one session.
type GameState struct {
	Secret   int   // hidden target in [Min, Max]
	Attempts int   // valid guesses since start or restart
	Phase    Phase // active or finished
}

// Finished reports whether the secret has been found.
func (s GameState) Finished() bool {
	return s.Phase == PhaseFinished
}

// Outcome describes what a guess submission did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // game already finished
	OutcomeRejected                // invalid input, no attempt counted
	OutcomeTooLow
	OutcomeTooHigh
	OutcomeWin
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTooLow:
		return "too_low"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}
