package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a game in this terminal.

Controls:
  Enter        - Submit the guess / press the focused button
  Tab          - Next control
  Shift+Tab    - Previous control
  Ctrl+R       - New game
  F1           - Toggle help
  Esc/Ctrl+C   - Quit

Examples:
  guess play
  guess play --seed 42
  guess play --debug --log-file ./guess.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Startup errors go to stderr; once the alt screen is up, logs go to a file or nowhere.
	startup := log.NewWithOptions(os.Stderr, log.Options{Prefix: "guess"})

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		startup.Error("cannot set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	layout, err := config.LoadLayout(flagLayout)
	if err != nil {
		startup.Error("cannot load layout", "error", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Debug:   flagDebug,
	}

	model, err := tui.NewModel(layout, tui.NewStyles(lipgloss.DefaultRenderer(), layout), cfg, logger)
	if err != nil {
		// Incomplete layout: nothing is playable
		startup.Error("cannot start game", "error", err)
		os.Exit(1)
	}

	if err := tui.Run(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
