package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadServerEnv.
const (
	EnvSSHAddr     = "GUESS_SSH_ADDR"
	EnvHostKey     = "GUESS_HOST_KEY"
	EnvIdleTimeout = "GUESS_IDLE_TIMEOUT" // minutes
	EnvRateLimit   = "GUESS_RATE_LIMIT"   // new sessions per second per IP
	EnvRateBurst   = "GUESS_RATE_BURST"
)

// ServerEnv holds SSH server settings with their defaults applied.
type ServerEnv struct {
	Address     string
	HostKeyPath string
	IdleTimeout time.Duration
	RateLimit   float64
	RateBurst   int
}

// DefaultServerEnv returns the settings used when nothing is configured.
func DefaultServerEnv() ServerEnv {
	return ServerEnv{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		RateLimit:   1,
		RateBurst:   10,
	}
}

// LoadServerEnv loads the given .env files (missing files are skipped)
// and overlays GUESS_* variables on the defaults.
// Variables already set in the process environment win over .env values.
func LoadServerEnv(files ...string) (ServerEnv, error) {
	env := DefaultServerEnv()

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return env, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvSSHAddr); v != "" {
		env.Address = v
	}
	if v := os.Getenv(EnvHostKey); v != "" {
		env.HostKeyPath = v
	}
	if v := os.Getenv(EnvIdleTimeout); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 0 {
			return env, fmt.Errorf("invalid %s %q", EnvIdleTimeout, v)
		}
		env.IdleTimeout = time.Duration(minutes) * time.Minute
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return env, fmt.Errorf("invalid %s %q", EnvRateLimit, v)
		}
		env.RateLimit = rate
	}
	if v := os.Getenv(EnvRateBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return env, fmt.Errorf("invalid %s %q", EnvRateBurst, v)
		}
		env.RateBurst = burst
	}

	return env, nil
}
