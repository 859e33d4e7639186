package cli

import (
	"fmt"
	"io"
)

// Screen identifies one of the fixed views. Exactly one is active at a
// time; switching to a screen hides the previous one.
type Screen string

const (
	ScreenHero      Screen = "hero"
	ScreenLogin     Screen = "login"
	ScreenRegister  Screen = "register"
	ScreenLoanForm  Screen = "loanform"
	ScreenDashboard Screen = "dashboard"
)

// Message targets for inline feedback, one per form concern.
const (
	msgRegError    = "regError"
	msgLoginError  = "loginError"
	msgLoanError   = "loanError"
	msgLoanSuccess = "loanSuccess"
	msgDocError    = "docError"
	msgDocSuccess  = "docSuccess"
)

// View tracks the active screen and the per-target inline messages.
// The hero banner has its own visibility flag, driven by the active
// screen.
type View struct {
	out         io.Writer
	active      Screen
	heroVisible bool
	messages    map[string]string
}

func NewView(out io.Writer) *View {
	return &View{
		out:         out,
		active:      ScreenHero,
		heroVisible: true,
		messages:    make(map[string]string),
	}
}

// Show switches the active screen.
func (v *View) Show(s Screen) {
	v.active = s
	v.heroVisible = s == ScreenHero
	fmt.Fprintf(v.out, "--- %s ---\n", s)
}

func (v *View) Active() Screen { return v.active }

func (v *View) HeroVisible() bool { return v.heroVisible }

// SetMessage sets the inline message for a target and echoes it to the
// user. An empty message clears the target silently.
func (v *View) SetMessage(target, msg string) {
	if msg == "" {
		delete(v.messages, target)
		return
	}
	v.messages[target] = msg
	fmt.Fprintln(v.out, msg)
}

// Message returns the current text for a target, "" when cleared.
func (v *View) Message(target string) string { return v.messages[target] }
