// Package config provides YAML-based layout loading and environment
// configuration for the game and its SSH server.
package config

import (
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/guess"
)

// Layout describes the screen: which elements exist and how they look.
// It plays the role of the page markup; elements are keyed by guess.Role.
type Layout struct {
	Title    string             `yaml:"title"`
	Elements map[string]Element `yaml:"elements"`
	Theme    Theme              `yaml:"theme"`
}

// Element configures one UI element.
type Element struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`       // buttons
	Placeholder string `yaml:"placeholder"` // guess input
	CharLimit   int    `yaml:"char_limit"`  // guess input
	Numeric     bool   `yaml:"numeric"`     // guess input: hint numeric entry
	Width       int    `yaml:"width"`       // output area
}

// Theme maps message tones to background colors (hex or ANSI index).
type Theme struct {
	Neutral string `yaml:"neutral"`
	Warning string `yaml:"warning"`
	Low     string `yaml:"low"`
	High    string `yaml:"high"`
	Win     string `yaml:"win"`
}

// Color returns the configured background for a tone, or "" for none.
func (t Theme) Color(tone core.Tone) string {
	switch tone {
	case core.ToneWarning:
		return t.Warning
	case core.ToneLow:
		return t.Low
	case core.ToneHigh:
		return t.High
	case core.ToneWin:
		return t.Win
	default:
		return t.Neutral
	}
}

// Has reports whether the layout declares the element for role.
func (l Layout) Has(role guess.Role) bool {
	_, ok := l.Elements[string(role)]
	return ok
}

// Element returns the element for role, or a zero Element.
func (l Layout) Element(role guess.Role) Element {
	return l.Elements[string(role)]
}

// Validate returns a *guess.MissingElementError if any role is absent.
func (l Layout) Validate() error {
	return guess.CheckRoles(l.Has)
}
