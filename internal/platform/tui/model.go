package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/guess"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game        *guess.Controller
	surface     *Surface
	styles      Styles
	keyMapper   *KeyMapper
	help        help.Model
	config      core.RuntimeConfig
	title       string
	windowTitle string
	quitting    bool
}

// NewModel validates layout, builds the surface and starts a game on it.
// A layout missing any element role yields a *guess.MissingElementError
// and no game is created.
func NewModel(layout config.Layout, styles Styles, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if err := layout.Validate(); err != nil {
		return Model{}, err
	}

	surface := NewSurface(layout)
	game, err := guess.New(surface, cfg, guess.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	game.Start()

	title := layout.Title
	if title == "" {
		title = "Devine le nombre"
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		surface:   surface,
		styles:    styles,
		keyMapper: NewKeyMapper(DefaultKeyMap()),
		help:      h,
		config:    cfg,
		title:     title,
	}, nil
}

// Init starts the cursor blink and sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.title))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	// Cursor blink and other textinput messages
	var cmd tea.Cmd
	m.surface.input, cmd = m.surface.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg, m.surface.Typing())

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionActivate:
		m.activate()

	case core.ActionRestart:
		m.game.Restart()

	case core.ActionFocusNext:
		m.surface.CycleFocus(1)

	case core.ActionFocusPrev:
		m.surface.CycleFocus(-1)

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:
		if m.surface.Typing() {
			var cmd tea.Cmd
			m.surface.input, cmd = m.surface.input.Update(msg)
			return m, cmd
		}
	}

	return m.syncWindowTitle()
}

// activate presses the focused control.
func (m *Model) activate() {
	switch m.surface.focus {
	case focusInput, focusSubmit:
		m.game.SubmitGuess(m.surface.Value())
	case focusRestart:
		m.game.Restart()
	}
}

// syncWindowTitle announces the output through the window title while the
// output is a live region, and restores the game title otherwise.
func (m Model) syncWindowTitle() (tea.Model, tea.Cmd) {
	want := m.title
	if m.surface.live {
		want, _ = m.surface.Message()
	}
	if want == m.windowTitle {
		return m, nil
	}
	m.windowTitle = want
	return m, tea.SetWindowTitle(want)
}

// Game returns the controller, mainly for tests.
func (m Model) Game() *guess.Controller {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	inputStyle := m.styles.Input
	if !m.surface.inputEnabled {
		inputStyle = m.styles.InputDisabled
	}
	b.WriteString(inputStyle.Render(m.surface.input.View()))
	b.WriteString("\n")

	buttons := []string{m.renderButton(m.surface.submitLabel, focusSubmit, m.surface.inputEnabled)}
	if m.surface.restartVisible {
		buttons = append(buttons, m.renderButton(m.surface.restartLabel, focusRestart, true))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n")

	text, tone := m.surface.Message()
	b.WriteString(m.styles.Message(tone).Render(text))
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render(m.help.View(m.keyMapper.Keys())))
	b.WriteString("\n")

	if m.config.Debug {
		st := m.game.State()
		b.WriteString(m.styles.Debug.Render(fmt.Sprintf("debug: secret=%d attempts=%d phase=%s", st.Secret, st.Attempts, st.Phase)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderButton(label string, target focusTarget, enabled bool) string {
	switch {
	case !enabled:
		return m.styles.ButtonDisabled.Render(label)
	case m.surface.focus == target:
		return m.styles.ButtonFocused.Render(label)
	default:
		return m.styles.Button.Render(label)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
