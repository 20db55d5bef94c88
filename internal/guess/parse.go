package guess

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber means no integer could be extracted from the input.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange means the integer falls outside [Min, Max].
	ErrOutOfRange = fmt.Errorf("out of range %d-%d", Min, Max)
)

// InvalidGuessError is returned for any rejected guess.
// The cause is ErrNotANumber or ErrOutOfRange.
type InvalidGuessError struct {
	Raw string
	Err error
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("invalid guess %q: %v", e.Raw, e.Err)
}

func (e *InvalidGuessError) Unwrap() error {
	return e.Err
}

var firstInteger = regexp.MustCompile(`-?\d+`)

// Mobile and French keyboards insert these instead of a plain space.
var spaceStripper = strings.NewReplacer("\u00a0", "", "\u202f", "")

// ParseGuess extracts an integer from raw user input.
// It tolerates surrounding whitespace, non-breaking spaces, a decimal comma
// and trailing junk: "12,0", " 7 " and "12x" all parse.
func ParseGuess(raw string) (int, error) {
	if raw == "" {
		return 0, ErrNotANumber
	}

	s := spaceStripper.Replace(strings.TrimSpace(raw))
	s = strings.Replace(s, ",", ".", 1)

	m := firstInteger.FindString(s)
	if m == "" {
		return 0, ErrNotANumber
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// Validate parses raw and checks it lies within [Min, Max].
// Failures are reported as *InvalidGuessError.
func Validate(raw string) (int, error) {
	n, err := ParseGuess(raw)
	if err != nil {
		return 0, &InvalidGuessError{Raw: raw, Err: err}
	}
	if n < Min || n > Max {
		return 0, &InvalidGuessError{Raw: raw, Err: ErrOutOfRange}
	}
	return n, nil
}
