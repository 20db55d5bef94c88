package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagRate        float64
	flagBurst       int
	flagEnvFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own secret number.
Nothing is stored between sessions.

Settings are read from flags, then GUESS_* environment variables,
then an optional .env file:
  GUESS_SSH_ADDR, GUESS_HOST_KEY, GUESS_IDLE_TIMEOUT (minutes),
  GUESS_RATE_LIMIT (sessions/s per IP), GUESS_RATE_BURST

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/guess_host_key

Examples:
  guess serve                           # Listen on :23234 with auto-generated key
  guess serve --ssh :2222               # Listen on port 2222
  guess serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default 30)")
	serveCmd.Flags().Float64Var(&flagRate, "rate", 0, "New sessions per second allowed per client IP (default 1)")
	serveCmd.Flags().IntVar(&flagBurst, "burst", 0, "Sessions a client IP may open at once (default 10)")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional env file with GUESS_* settings")
}

func runServe(cmd *cobra.Command, _ []string) {
	env, err := config.LoadServerEnv(flagEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layout, err := config.LoadLayout(flagLayout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override environment
	if cmd.Flags().Changed("ssh") {
		env.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		env.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		env.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if cmd.Flags().Changed("rate") {
		env.RateLimit = flagRate
	}
	if cmd.Flags().Changed("burst") {
		env.RateBurst = flagBurst
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     env.Address,
		HostKeyPath: env.HostKeyPath,
		IdleTimeout: env.IdleTimeout,
		RateLimit:   env.RateLimit,
		RateBurst:   env.RateBurst,
		Layout:      layout,
		Debug:       flagDebug,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting guess SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
