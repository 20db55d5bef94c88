package guess

import "github.com/vovakirdan/tui-guess/internal/core"

// Presenter is the presentation surface driven by the Controller.
// Implementations must be safe to call from the event handler only;
// the controller never calls them concurrently.
type Presenter interface {
	// SetMessage replaces the output area text and its style hint.
	SetMessage(text string, tone core.Tone)
	// SetInputEnabled enables or disables both the guess input and the submit control.
	SetInputEnabled(enabled bool)
	// SetRestartVisible shows or hides the restart control.
	SetRestartVisible(visible bool)
	// FocusInput moves focus to the guess input.
	FocusInput()
	// ClearInput empties the guess input.
	ClearInput()
	// SetLive marks the output area as a polite live region.
	SetLive(polite bool)
}
