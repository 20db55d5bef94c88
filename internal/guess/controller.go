package guess

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/core"
)

// Controller owns a GameState and translates guesses and restarts into
// state transitions and presenter updates.
type Controller struct {
	presenter Presenter
	rng       *rand.Rand
	logger    *log.Logger
	state     GameState
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The secret number is only logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand overrides the random source used to pick secrets.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// New creates a controller bound to p and picks the first secret.
// Call Start to render the initial screen.
func New(p Presenter, cfg core.RuntimeConfig, opts ...Option) (*Controller, error) {
	if p == nil {
		return nil, errors.New("guess: nil presenter")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		presenter: p,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.newSecret()
	return c, nil
}

// Start renders the initial state: restart hidden, neutral welcome message,
// input enabled, cleared and focused.
func (c *Controller) Start() {
	c.presenter.SetRestartVisible(false)
	c.presenter.SetLive(false)
	c.presenter.SetMessage(MsgWelcome, core.ToneNeutral)
	c.presenter.SetInputEnabled(true)
	c.presenter.ClearInput()
	c.presenter.FocusInput()
}

// State returns a copy of the current game state.
func (c *Controller) State() GameState {
	return c.state
}

// SubmitGuess processes one guess. Invalid input is reported to the player
// and never counts as an attempt. Guesses after a win are ignored.
func (c *Controller) SubmitGuess(raw string) Outcome {
	if c.state.Finished() {
		return OutcomeIgnored
	}

	n, err := Validate(raw)
	if err != nil {
		c.logger.Debug("guess rejected", "raw", raw, "error", err)
		c.presenter.SetMessage(MsgInvalid, core.ToneWarning)
		c.presenter.ClearInput()
		c.presenter.FocusInput()
		return OutcomeRejected
	}

	c.state.Attempts++

	var outcome Outcome
	switch {
	case n == c.state.Secret:
		c.presenter.SetMessage(msgWin(c.state.Secret, c.state.Attempts), core.ToneWin)
		c.finish()
		outcome = OutcomeWin
	case n < c.state.Secret:
		c.presenter.SetMessage(msgTooLow(n), core.ToneLow)
		outcome = OutcomeTooLow
	default:
		c.presenter.SetMessage(msgTooHigh(n), core.ToneHigh)
		outcome = OutcomeTooHigh
	}

	c.logger.Debug("guess", "value", n, "outcome", outcome, "attempts", c.state.Attempts)

	c.presenter.ClearInput()
	if outcome != OutcomeWin {
		c.presenter.FocusInput()
	}
	return outcome
}

// Restart starts a new session. Valid in any phase.
func (c *Controller) Restart() {
	c.newSecret()

	c.presenter.SetMessage(MsgRestart, core.ToneNeutral)
	c.presenter.SetLive(false)
	c.presenter.ClearInput()
	c.presenter.SetInputEnabled(true)
	c.presenter.SetRestartVisible(false)
	c.presenter.FocusInput()
}

// finish moves to PhaseFinished and locks the input.
func (c *Controller) finish() {
	c.state.Phase = PhaseFinished
	c.presenter.SetInputEnabled(false)
	c.presenter.SetRestartVisible(true)
	c.presenter.SetLive(true)
	c.logger.Info("secret found", "attempts", c.state.Attempts)
}

// newSecret resets the state with a fresh uniform secret in [Min, Max].
func (c *Controller) newSecret() {
	c.state = GameState{
		Secret: Min + c.rng.Intn(Max-Min+1),
		Phase:  PhaseActive,
	}
	c.logger.Debug("secret chosen", "secret", c.state.Secret)
}
