package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_StartsOnLoginWithNoMessages(t *testing.T) {
	f := newForm()
	assert.Equal(t, ScreenLogin, f.screen)
	assert.Empty(t, f.errMsg)
	assert.Empty(t, f.success)
}

func TestForm_SwitchClearsMessages(t *testing.T) {
	f := newForm()
	f.fail("boom")
	f.success = "yay"

	f.switchTo(ScreenRegister)
	assert.Equal(t, ScreenRegister, f.screen)
	assert.Empty(t, f.errMsg)
	assert.Empty(t, f.success)

	f.fail("again")
	f.switchTo(ScreenRegister)
	assert.Empty(t, f.errMsg, "switching to the same screen clears too")
}

func TestForm_SubmitClearsMessages(t *testing.T) {
	f := newForm()
	f.registered("done")
	f.beginSubmit()
	assert.Empty(t, f.success)
	assert.Empty(t, f.errMsg)
}

func TestForm_RegisteredReturnsToLogin(t *testing.T) {
	f := newForm()
	f.switchTo(ScreenRegister)
	f.fail("old error")

	f.registered("done")
	assert.Equal(t, ScreenLogin, f.screen)
	assert.Equal(t, "done", f.success)
	assert.Empty(t, f.errMsg)
}

func TestParseScreen(t *testing.T) {
	s, ok := parseScreen("register")
	assert.True(t, ok)
	assert.Equal(t, ScreenRegister, s)

	_, ok = parseScreen("settings")
	assert.False(t, ok)
}

func TestForm_SucceedKeepsError(t *testing.T) {
	f := newForm()
	f.fail("old error")

	f.succeed("Logged out")
	assert.Equal(t, "Logged out", f.success)
	assert.Equal(t, "old error", f.errMsg)

	f.switchTo(ScreenLogin)
	assert.Empty(t, f.success)
}
