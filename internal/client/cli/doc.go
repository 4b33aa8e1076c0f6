// Package cli provides the interactive credkeeper command-line client.
//
// It wires configuration, the local store and the two services, and runs a
// REPL with two screens, login and register. Every screen switch and every
// submit clears the error and success messages before validating again; a
// successful registration returns to the login screen.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and form for details.
package cli
