package guess

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-guess/internal/core"
)

// fakePresenter records the latest value of every presentation property.
type fakePresenter struct {
	message        string
	tone           core.Tone
	inputEnabled   bool
	restartVisible bool
	focused        bool
	input          string
	live           bool
	focusCalls     int
	clearCalls     int
}

func (f *fakePresenter) SetMessage(text string, tone core.Tone) {
	f.message = text
	f.tone = tone
}

func (f *fakePresenter) SetInputEnabled(enabled bool) {
	f.inputEnabled = enabled
	if !enabled {
		f.focused = false
	}
}

func (f *fakePresenter) SetRestartVisible(visible bool) { f.restartVisible = visible }

func (f *fakePresenter) FocusInput() {
	f.focusCalls++
	f.focused = true
}

func (f *fakePresenter) ClearInput() {
	f.clearCalls++
	f.input = ""
}

func (f *fakePresenter) SetLive(polite bool) { f.live = polite }

// newTestController returns a started controller with a fixed secret.
func newTestController(t *testing.T, secret int) (*Controller, *fakePresenter) {
	t.Helper()
	p := &fakePresenter{}
	c, err := New(p, core.RuntimeConfig{Seed: 1})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	c.state.Secret = secret
	c.Start()
	return c, p
}

func TestNewRejectsNilPresenter(t *testing.T) {
	if _, err := New(nil, core.DefaultConfig()); err == nil {
		t.Error("New(nil) should return an error")
	}
}

func TestStartRendersInitialState(t *testing.T) {
	c, p := newTestController(t, 10)

	if p.message != MsgWelcome {
		t.Errorf("message = %q, expected %q", p.message, MsgWelcome)
	}
	if p.tone != core.ToneNeutral {
		t.Errorf("tone = %v, expected neutral", p.tone)
	}
	if p.restartVisible {
		t.Error("restart should be hidden initially")
	}
	if !p.inputEnabled || !p.focused {
		t.Error("input should be enabled and focused initially")
	}
	if st := c.State(); st.Attempts != 0 || st.Phase != PhaseActive {
		t.Errorf("State() = %+v, expected active with 0 attempts", st)
	}
}

func TestImmediateWinForEverySecret(t *testing.T) {
	for n := Min; n <= Max; n++ {
		c, p := newTestController(t, n)

		if got := c.SubmitGuess(fmt.Sprint(n)); got != OutcomeWin {
			t.Fatalf("secret %d: SubmitGuess = %v, expected win", n, got)
		}
		if !strings.Contains(p.message, "en 1 essais") {
			t.Errorf("secret %d: message %q should report 1 attempt", n, p.message)
		}
		if !strings.Contains(p.message, fmt.Sprintf("(%d)", n)) {
			t.Errorf("secret %d: message %q should reveal the secret", n, p.message)
		}
	}
}

func TestRejectedInputDoesNotCountAttempt(t *testing.T) {
	inputs := []string{"", "abc", "   ", "0", "21", "-5", "100"}

	for _, raw := range inputs {
		c, p := newTestController(t, 10)
		p.input = raw
		focusBefore := p.focusCalls

		if got := c.SubmitGuess(raw); got != OutcomeRejected {
			t.Errorf("SubmitGuess(%q) = %v, expected rejected", raw, got)
		}
		if c.State().Attempts != 0 {
			t.Errorf("SubmitGuess(%q) counted an attempt", raw)
		}
		if p.message != MsgInvalid || p.tone != core.ToneWarning {
			t.Errorf("SubmitGuess(%q) message = %q (%v), expected warning", raw, p.message, p.tone)
		}
		if p.input != "" {
			t.Errorf("SubmitGuess(%q) should clear the input", raw)
		}
		if p.focusCalls != focusBefore+1 {
			t.Errorf("SubmitGuess(%q) should refocus the input", raw)
		}
	}
}

func TestFeedbackDirection(t *testing.T) {
	const secret = 11
	for n := Min; n <= Max; n++ {
		c, p := newTestController(t, secret)
		got := c.SubmitGuess(fmt.Sprint(n))

		switch {
		case n < secret:
			if got != OutcomeTooLow || p.tone != core.ToneLow || !strings.Contains(p.message, "Trop bas") {
				t.Errorf("guess %d: got %v %q, expected too low", n, got, p.message)
			}
		case n > secret:
			if got != OutcomeTooHigh || p.tone != core.ToneHigh || !strings.Contains(p.message, "Trop haut") {
				t.Errorf("guess %d: got %v %q, expected too high", n, got, p.message)
			}
		default:
			if got != OutcomeWin || !c.State().Finished() {
				t.Errorf("guess %d: got %v, expected win and finished", n, got)
			}
		}

		if n != secret {
			if !strings.Contains(p.message, fmt.Sprintf("C'est %d.", n)) {
				t.Errorf("guess %d: message %q should echo the guess", n, p.message)
			}
			if !p.focused || !p.inputEnabled {
				t.Errorf("guess %d: input should stay enabled and focused", n)
			}
		}
	}
}

func TestFixedSecretScenario(t *testing.T) {
	c, p := newTestController(t, 14)

	if got := c.SubmitGuess("10"); got != OutcomeTooLow {
		t.Fatalf("guess 10 = %v, expected too low", got)
	}
	if c.State().Attempts != 1 {
		t.Errorf("attempts = %d, expected 1", c.State().Attempts)
	}

	if got := c.SubmitGuess("18"); got != OutcomeTooHigh {
		t.Fatalf("guess 18 = %v, expected too high", got)
	}
	if c.State().Attempts != 2 {
		t.Errorf("attempts = %d, expected 2", c.State().Attempts)
	}

	if got := c.SubmitGuess("14"); got != OutcomeWin {
		t.Fatalf("guess 14 = %v, expected win", got)
	}
	if !strings.Contains(p.message, "(14)") || !strings.Contains(p.message, "en 3 essais") {
		t.Errorf("victory message = %q", p.message)
	}
	if p.inputEnabled {
		t.Error("input and submit should be disabled after a win")
	}
	if !p.restartVisible {
		t.Error("restart should be visible after a win")
	}
	if !p.live {
		t.Error("output should become a polite live region after a win")
	}
	if p.focused {
		t.Error("input should not be focused after a win")
	}
}

func TestGuessesIgnoredWhenFinished(t *testing.T) {
	c, p := newTestController(t, 5)
	c.SubmitGuess("5")
	msg := p.message

	if got := c.SubmitGuess("3"); got != OutcomeIgnored {
		t.Errorf("SubmitGuess after win = %v, expected ignored", got)
	}
	if got := c.SubmitGuess("abc"); got != OutcomeIgnored {
		t.Errorf("invalid SubmitGuess after win = %v, expected ignored", got)
	}
	if c.State().Attempts != 1 {
		t.Errorf("attempts = %d, expected 1", c.State().Attempts)
	}
	if p.message != msg {
		t.Errorf("message changed to %q after win", p.message)
	}
}

func TestRestart(t *testing.T) {
	c, p := newTestController(t, 5)
	c.SubmitGuess("3")
	c.SubmitGuess("5")

	c.Restart()

	st := c.State()
	if st.Phase != PhaseActive || st.Attempts != 0 {
		t.Errorf("State() after restart = %+v, expected active with 0 attempts", st)
	}
	if st.Secret < Min || st.Secret > Max {
		t.Errorf("secret %d out of range", st.Secret)
	}
	if p.message != MsgRestart || p.tone != core.ToneNeutral {
		t.Errorf("message = %q (%v), expected restart prompt", p.message, p.tone)
	}
	if !p.inputEnabled || !p.focused || p.restartVisible || p.live {
		t.Errorf("presenter after restart = %+v", p)
	}
}

func TestRestartWhileActive(t *testing.T) {
	c, _ := newTestController(t, 5)
	c.SubmitGuess("3")
	c.Restart()

	if c.State().Attempts != 0 {
		t.Errorf("attempts = %d after restart, expected 0", c.State().Attempts)
	}
}

func TestSecretsStayInRange(t *testing.T) {
	p := &fakePresenter{}
	c, err := New(p, core.DefaultConfig(), WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		c.Restart()
		s := c.State().Secret
		if s < Min || s > Max {
			t.Fatalf("secret %d out of range", s)
		}
		seen[s] = true
	}
	if len(seen) != Max-Min+1 {
		t.Errorf("saw %d distinct secrets, expected %d", len(seen), Max-Min+1)
	}
}

func TestSameSeedSameSecret(t *testing.T) {
	a, _ := New(&fakePresenter{}, core.RuntimeConfig{Seed: 7})
	b, _ := New(&fakePresenter{}, core.RuntimeConfig{Seed: 7})
	if a.State().Secret != b.State().Secret {
		t.Errorf("secrets differ for equal seeds: %d vs %d", a.State().Secret, b.State().Secret)
	}
}

func TestCheckRoles(t *testing.T) {
	if err := CheckRoles(func(Role) bool { return true }); err != nil {
		t.Errorf("CheckRoles(all) = %v, expected nil", err)
	}

	err := CheckRoles(func(r Role) bool { return r != RoleSubmit && r != RoleOutput })
	missing, ok := err.(*MissingElementError)
	if !ok {
		t.Fatalf("CheckRoles error = %T, expected *MissingElementError", err)
	}
	if len(missing.Roles) != 2 || missing.Roles[0] != RoleSubmit || missing.Roles[1] != RoleOutput {
		t.Errorf("missing roles = %v, expected [submit output]", missing.Roles)
	}
	if !strings.Contains(err.Error(), "submit, output") {
		t.Errorf("Error() = %q", err.Error())
	}
}
