package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/guess"
)

const defaultOutputWidth = 64

// Styles holds every lipgloss style of the game screen.
// Build one per renderer so SSH sessions get their own color profile.
type Styles struct {
	Title          lipgloss.Style
	Input          lipgloss.Style
	InputDisabled  lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Help           lipgloss.Style
	Debug          lipgloss.Style

	output lipgloss.Style
	tones  map[core.Tone]lipgloss.Style
}

// NewStyles creates styles for r using the layout theme and output width.
func NewStyles(r *lipgloss.Renderer, layout config.Layout) Styles {
	width := layout.Element(guess.RoleOutput).Width
	if width <= 0 {
		width = defaultOutputWidth
	}

	s := Styles{
		Title: r.NewStyle().Bold(true).MarginBottom(1),
		Input: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		InputDisabled: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),
		Button: r.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238")),
		ButtonFocused: r.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")),
		ButtonDisabled: r.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("235")),
		Help:  r.NewStyle().MarginTop(1),
		Debug: r.NewStyle().Foreground(lipgloss.Color("240")),

		output: r.NewStyle().Width(width).Padding(0, 1).MarginTop(1),
		tones:  make(map[core.Tone]lipgloss.Style),
	}

	for _, tone := range core.Tones() {
		st := s.output
		if c := layout.Theme.Color(tone); c != "" {
			st = st.Background(lipgloss.Color(c)).Foreground(lipgloss.Color("0"))
		}
		s.tones[tone] = st
	}

	return s
}

// Message returns the output area style for a tone.
func (s Styles) Message(tone core.Tone) lipgloss.Style {
	if st, ok := s.tones[tone]; ok {
		return st
	}
	return s.output
}
