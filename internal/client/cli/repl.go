package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	currentScreen() Screen
	SwitchScreen(ctx context.Context, s Screen)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until input
// ends or the user types "exit" or "quit". Commands that prompt for more
// input read from the same reader, so piped scripts work unchanged.
//
//	help                       show available commands
//	screen [login|register]    switch screen, or show the current one
//	register                   fill in and submit the register form
//	login                      fill in and submit the login form
//	logout                     end the session
//	whoami                     show the signed-in user
//	exit | quit                leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ck %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: whoami, logout, screen, login, register, exit")
			} else {
				printlnFn("Available commands: login, register, screen, whoami, exit")
			}

		case "screen":
			if len(args) == 0 {
				printlnFn("Current screen:", a.currentScreen())
				continue
			}
			s, ok := parseScreen(args[0])
			if !ok {
				printlnFn("Usage: screen [login|register]")
				continue
			}
			a.SwitchScreen(ctx, s)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
