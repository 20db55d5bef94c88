package guess

import (
	"errors"
	"testing"
)

func TestParseGuess(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		wantErr  bool
	}{
		{"plain", "7", 7, false},
		{"surrounding spaces", " 7 ", 7, false},
		{"non-breaking spaces", "\u00a07\u00a0", 7, false},
		{"narrow non-breaking space inside", "1\u202f2", 12, false},
		{"decimal comma", "12,0", 12, false},
		{"decimal dot", "12.9", 12, false},
		{"trailing junk", "12x", 12, false},
		{"leading junk", "abc15", 15, false},
		{"negative", "-5", -5, false},
		{"zero", "0", 0, false},
		{"empty", "", 0, true},
		{"letters only", "abc", 0, true},
		{"blank", "   ", 0, true},
		{"lone minus", "-", 0, true},
		{"overflow", "99999999999999999999999", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGuess(tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("ParseGuess(%q) error = %v, expected ErrNotANumber", tc.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGuess(%q) unexpected error: %v", tc.raw, err)
			}
			if got != tc.expected {
				t.Errorf("ParseGuess(%q) = %d, expected %d", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
		cause    error
	}{
		{"1", 1, nil},
		{"20", 20, nil},
		{" 14 ", 14, nil},
		{"0", 0, ErrOutOfRange},
		{"21", 0, ErrOutOfRange},
		{"-5", 0, ErrOutOfRange},
		{"", 0, ErrNotANumber},
		{"abc", 0, ErrNotANumber},
	}

	for _, tc := range tests {
		got, err := Validate(tc.raw)
		if tc.cause == nil {
			if err != nil || got != tc.expected {
				t.Errorf("Validate(%q) = (%d, %v), expected (%d, nil)", tc.raw, got, err, tc.expected)
			}
			continue
		}

		var invalid *InvalidGuessError
		if !errors.As(err, &invalid) {
			t.Errorf("Validate(%q) error = %v, expected *InvalidGuessError", tc.raw, err)
			continue
		}
		if invalid.Raw != tc.raw {
			t.Errorf("InvalidGuessError.Raw = %q, expected %q", invalid.Raw, tc.raw)
		}
		if !errors.Is(err, tc.cause) {
			t.Errorf("Validate(%q) cause = %v, expected %v", tc.raw, err, tc.cause)
		}
	}
}
