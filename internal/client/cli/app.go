package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/client/storage"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

type App struct {
	credentials services.CredentialStore
	sessions    services.SessionManager
	log         logging.Logger
	form        *form
	reader      *bufio.Reader
	out         io.Writer
	closeStore  func() error
}

// NewApp opens the store selected by c and builds the services over it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, closeFn, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening local store", "backend", c.StorageBackend, "err", err)
		return nil, err
	}
	log.Debug(ctx, "local store opened", "backend", c.StorageBackend, "path", c.DatabasePath)

	return &App{
		credentials: services.NewCredentialStore(users.NewKVRepository(store), log),
		sessions:    services.NewSessionManager(session.NewKVRepository(store), log),
		log:         log,
		form:        newForm(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closeStore:  closeFn,
	}, nil
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to credkeeper (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// Close releases the local store.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	return err
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.currentSession(ctx)
	return ok
}

func (a *App) currentScreen() Screen {
	return a.form.screen
}

// getStatus renders the prompt decoration: the screen, and the signed-in
// email if there is one.
func (a *App) getStatus(ctx context.Context) string {
	s := string(a.form.screen)
	if email, ok := a.currentSession(ctx); ok {
		s = s + " " + email
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) currentSession(ctx context.Context) (string, bool) {
	marker, ok, err := a.sessions.Current(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading session", "err", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	return marker.Email, true
}
