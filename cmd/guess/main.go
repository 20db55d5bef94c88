// guess is a terminal "guess the number" game.
//
// Usage:
//
//	guess                - Play locally (same as "guess play")
//	guess play           - Play locally
//	guess serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for a reproducible secret
//	--layout <path>    - Use a custom screen layout YAML
//	--debug            - Enable debug logging (logs the secret number)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagLayout  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Devine le nombre - guess the number in your terminal",
	Long: `A number between 1 and 20 is picked at random. Type your guess and
press Enter: you are told whether it is too low or too high until you
find it. Then press Enter on "Rejouer" to play again.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play

Examples:
  guess
  guess play --seed 42
  guess play --layout ./my-layout.yaml
  guess serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to custom layout YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging, including the secret number")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from the global flags.
// fallback is used when no log file is given; a nil fallback with debug
// enabled writes to ~/.arcade/guess-debug.log.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" && fallback == nil && flagDebug {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "guess-debug.log")
	}

	w := fallback
	closeFn := func() {}
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case w == nil:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "guess",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
