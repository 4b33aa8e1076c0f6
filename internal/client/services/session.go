package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/client/models"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

// SessionManager owns the single session marker.
//
// Contract:
//   - Establish: replace any marker with one for email, stamped now.
//   - Current: the stored marker, if any and readable.
//   - Clear: remove the marker; clearing an absent marker is fine.
//
// Errors from these methods are storage failures only.
type SessionManager interface {
	Establish(ctx context.Context, email string) error
	Current(ctx context.Context) (models.SessionMarker, bool, error)
	Clear(ctx context.Context) error
}

type sessionManager struct {
	repo session.Repository
	log  logging.Logger
	now  func() time.Time
}

// NewSessionManager constructs a SessionManager over repo.
func NewSessionManager(repo session.Repository, log logging.Logger) SessionManager {
	return &sessionManager{repo: repo, log: log, now: time.Now}
}

func (m *sessionManager) Establish(ctx context.Context, email string) error {
	marker := models.SessionMarker{Email: email, EstablishedAt: m.now()}
	if err := m.repo.Save(ctx, marker); err != nil {
		return err
	}
	m.log.Info(ctx, "session established", "email", email)
	return nil
}

func (m *sessionManager) Current(ctx context.Context) (models.SessionMarker, bool, error) {
	return m.repo.Load(ctx)
}

func (m *sessionManager) Clear(ctx context.Context) error {
	if err := m.repo.Delete(ctx); err != nil {
		return err
	}
	m.log.Debug(ctx, "session cleared")
	return nil
}
