package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/guess"
)

// focusTarget identifies the control holding keyboard focus.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusInput
	focusSubmit
	focusRestart
)

// Surface is the terminal implementation of guess.Presenter.
// It holds presentation state only; the controller owns the game.
type Surface struct {
	input          textinput.Model
	submitLabel    string
	restartLabel   string
	inputEnabled   bool
	restartVisible bool
	live           bool
	message        string
	tone           core.Tone
	focus          focusTarget
}

var _ guess.Presenter = (*Surface)(nil)

// NewSurface builds the controls described by layout.
// The layout must already be validated.
func NewSurface(layout config.Layout) *Surface {
	el := layout.Element(guess.RoleGuessInput)

	ti := textinput.New()
	ti.Placeholder = el.Placeholder
	ti.CharLimit = el.CharLimit
	ti.Prompt = "> "
	if el.Numeric {
		ti.Prompt = "# "
	}
	ti.Width = 12

	return &Surface{
		input:        ti,
		submitLabel:  labelOr(layout.Element(guess.RoleSubmit).Label, "OK"),
		restartLabel: labelOr(layout.Element(guess.RoleRestart).Label, "Restart"),
		inputEnabled: true,
	}
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// SetMessage implements guess.Presenter.
func (s *Surface) SetMessage(text string, tone core.Tone) {
	s.message = text
	s.tone = tone
}

// SetInputEnabled implements guess.Presenter.
func (s *Surface) SetInputEnabled(enabled bool) {
	s.inputEnabled = enabled
	if !enabled && (s.focus == focusInput || s.focus == focusSubmit) {
		s.setFocus(s.fallbackFocus())
	}
}

// SetRestartVisible implements guess.Presenter.
func (s *Surface) SetRestartVisible(visible bool) {
	s.restartVisible = visible
	switch {
	case !visible && s.focus == focusRestart:
		s.setFocus(s.fallbackFocus())
	case visible && s.focus == focusNone:
		s.setFocus(focusRestart)
	}
}

// FocusInput implements guess.Presenter.
func (s *Surface) FocusInput() {
	if s.inputEnabled {
		s.setFocus(focusInput)
	}
}

// ClearInput implements guess.Presenter.
func (s *Surface) ClearInput() {
	s.input.Reset()
}

// SetLive implements guess.Presenter.
func (s *Surface) SetLive(polite bool) {
	s.live = polite
}

// Value returns the current guess input text.
func (s *Surface) Value() string {
	return s.input.Value()
}

// Message returns the output area text and tone.
func (s *Surface) Message() (string, core.Tone) {
	return s.message, s.tone
}

// Typing reports whether keystrokes should go to the guess input.
func (s *Surface) Typing() bool {
	return s.inputEnabled && s.focus == focusInput
}

// CycleFocus moves focus by delta over the focusable controls.
func (s *Surface) CycleFocus(delta int) {
	targets := s.focusables()
	if len(targets) == 0 {
		s.setFocus(focusNone)
		return
	}

	idx := -1
	for i, t := range targets {
		if t == s.focus {
			idx = i
			break
		}
	}

	next := (idx + delta) % len(targets)
	if next < 0 {
		next += len(targets)
	}
	s.setFocus(targets[next])
}

// focusables lists the controls that can currently take focus, in screen order.
func (s *Surface) focusables() []focusTarget {
	var targets []focusTarget
	if s.inputEnabled {
		targets = append(targets, focusInput, focusSubmit)
	}
	if s.restartVisible {
		targets = append(targets, focusRestart)
	}
	return targets
}

func (s *Surface) fallbackFocus() focusTarget {
	targets := s.focusables()
	if len(targets) == 0 {
		return focusNone
	}
	return targets[0]
}

func (s *Surface) setFocus(t focusTarget) {
	s.focus = t
	if t == focusInput {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}
