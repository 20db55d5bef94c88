// Package core provides fundamental types shared by the game and the
// platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Tone is the style hint attached to a feedback message.
// The platform maps each tone to a background color from the layout theme.
type Tone uint8

const (
	ToneNeutral Tone = iota // no background
	ToneWarning             // invalid input
	ToneLow                 // guess below the secret
	ToneHigh                // guess above the secret
	ToneWin                 // secret found
)

// Tones lists every tone in declaration order.
func Tones() []Tone {
	return []Tone{ToneNeutral, ToneWarning, ToneLow, ToneHigh, ToneWin}
}

// String returns the lower-case tone name, also used as the theme key.
func (t Tone) String() string {
	switch t {
	case ToneNeutral:
		return "neutral"
	case ToneWarning:
		return "warning"
	case ToneLow:
		return "low"
	case ToneHigh:
		return "high"
	case ToneWin:
		return "win"
	default:
		return "unknown"
	}
}
