package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgRegistered    = "Registration successful. Please log in."
	msgStorageFailed = "Something went wrong while accessing local storage."
	msgLoggedIn      = "Logged in as %s"
	msgLoggedOut     = "Logged out"
)

// SwitchScreen shows screen s and clears both message slots.
func (a *App) SwitchScreen(ctx context.Context, s Screen) {
	a.form.switchTo(s)
	a.log.Debug(ctx, "screen switched", "screen", s)
}

// Register shows the register screen, prompts for email, password and
// confirmation, and submits them to the CredentialStore. On success the
// client returns to the login screen with a success message.
func (a *App) Register(ctx context.Context) error {
	if a.form.screen != ScreenRegister {
		a.SwitchScreen(ctx, ScreenRegister)
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	a.form.beginSubmit()
	if err := a.credentials.Register(ctx, email, string(password), string(confirm)); err != nil {
		a.reportFailure(ctx, "register", err)
		return err
	}

	a.form.registered(msgRegistered)
	a.printMessages()
	return nil
}

// Login shows the login screen, prompts for credentials and, when they
// match a stored account, establishes the session.
func (a *App) Login(ctx context.Context) error {
	if a.form.screen != ScreenLogin {
		a.SwitchScreen(ctx, ScreenLogin)
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.form.beginSubmit()
	user, err := a.credentials.Authenticate(ctx, email, string(password))
	if err != nil {
		a.reportFailure(ctx, "login", err)
		return err
	}

	if err := a.sessions.Establish(ctx, user.Email); err != nil {
		a.reportFailure(ctx, "login", err)
		return err
	}

	a.form.succeed(fmt.Sprintf(msgLoggedIn, user.Email))
	a.printMessages()
	return nil
}

// Logout ends the session and leaves the error slot as it is. Logging out
// while anonymous is not an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.reportFailure(ctx, "logout", err)
		return err
	}
	a.form.succeed(msgLoggedOut)
	a.printMessages()
	return nil
}

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	marker, ok, err := a.sessions.Current(ctx)
	if err != nil {
		a.reportFailure(ctx, "whoami", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", marker.Email, marker.EstablishedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// reportFailure puts a validation error in the error slot verbatim; storage
// failures are logged and shown as a generic message.
func (a *App) reportFailure(ctx context.Context, op string, err error) {
	if common.IsValidation(err) {
		a.form.fail(err.Error())
	} else {
		a.log.Error(ctx, op+" failed", "err", err)
		a.form.fail(msgStorageFailed)
	}
	a.printMessages()
}

func (a *App) printMessages() {
	if a.form.errMsg != "" {
		fmt.Fprintln(a.out, "Error:", a.form.errMsg)
	}
	if a.form.success != "" {
		fmt.Fprintln(a.out, a.form.success)
	}
}
