package cli

// Screen is one of the two forms the client can show.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
)

func parseScreen(s string) (Screen, bool) {
	switch Screen(s) {
	case ScreenLogin, ScreenRegister:
		return Screen(s), true
	}
	return "", false
}

// form holds the visible screen and its two message slots.
type form struct {
	screen  Screen
	errMsg  string
	success string
}

func newForm() *form {
	return &form{screen: ScreenLogin}
}

func (f *form) clear() {
	f.errMsg = ""
	f.success = ""
}

// switchTo changes the screen on user request; messages are always cleared,
// even when the screen does not change.
func (f *form) switchTo(s Screen) {
	f.screen = s
	f.clear()
}

func (f *form) beginSubmit() {
	f.clear()
}

func (f *form) fail(msg string) {
	f.errMsg = msg
}

func (f *form) succeed(msg string) {
	f.success = msg
}

// registered moves back to the login screen and keeps msg visible there.
func (f *form) registered(msg string) {
	f.screen = ScreenLogin
	f.errMsg = ""
	f.success = msg
}
