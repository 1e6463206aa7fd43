package dialog

// shape holds the construction and dispatch rules that differ per Type.
type shape interface {
	// normalize enforces type invariants on resolved options.
	normalize(opts *Options)
	// hasInput reports whether the dialog carries a text input.
	hasInput() bool
	// callbackArgs returns the trailing arguments passed to success and
	// complete callbacks.
	callbackArgs(input string) []string
}

func (t Type) shape() shape {
	switch t {
	case TypeConfirm:
		return confirmShape{}
	case TypePrompt:
		return promptShape{}
	default:
		return alertShape{}
	}
}

type alertShape struct{}

func (alertShape) normalize(opts *Options) {
	opts.Cancel = Button{Suppressed: true}
}

func (alertShape) hasInput() bool               { return false }
func (alertShape) callbackArgs(string) []string { return nil }

type confirmShape struct{}

func (confirmShape) normalize(*Options)           {}
func (confirmShape) hasInput() bool               { return false }
func (confirmShape) callbackArgs(string) []string { return nil }

type promptShape struct{}

func (promptShape) normalize(*Options) {}
func (promptShape) hasInput() bool     { return true }

func (promptShape) callbackArgs(input string) []string {
	return []string{input}
}
