package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/credkeeper/internal/client/models"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

// CredentialStore defines the account operations.
//
// Contract:
//   - Register: validate and append a new account.
//   - Authenticate: find the account matching email and password.
type CredentialStore interface {
	Register(ctx context.Context, email, password, confirm string) error
	Authenticate(ctx context.Context, email, password string) (models.UserRecord, error)
}

type credentialStore struct {
	repo users.Repository
	log  logging.Logger
}

// NewCredentialStore constructs a CredentialStore over repo.
func NewCredentialStore(repo users.Repository, log logging.Logger) CredentialStore {
	return &credentialStore{repo: repo, log: log}
}

// Register checks, in order, the email format, the password length, the
// confirmation and the uniqueness of the email (ignoring case), and then
// appends {email, password} exactly as given. The first failing check is
// returned; nothing is written unless every check passes.
func (s *credentialStore) Register(ctx context.Context, email, password, confirm string) error {
	if !validEmail(email) {
		return common.ErrInvalidEmail
	}
	if !strongEnough(password) {
		return common.ErrWeakPassword
	}
	if password != confirm {
		return common.ErrPasswordMismatch
	}

	err := s.repo.Modify(ctx, func(list []models.UserRecord) ([]models.UserRecord, error) {
		taken := slices.ContainsFunc(list, func(u models.UserRecord) bool {
			return sameEmail(u.Email, email)
		})
		if taken {
			return nil, common.ErrEmailTaken
		}
		return append(list, models.UserRecord{Email: email, Password: password}), nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user registered", "email", email)
	return nil
}

// Authenticate returns the first record whose email matches ignoring case
// and whose password matches exactly. It never writes.
func (s *credentialStore) Authenticate(ctx context.Context, email, password string) (models.UserRecord, error) {
	if !validEmail(email) {
		return models.UserRecord{}, common.ErrInvalidEmail
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return models.UserRecord{}, err
	}

	i := slices.IndexFunc(list, func(u models.UserRecord) bool {
		return sameEmail(u.Email, email) && u.Password == password
	})
	if i < 0 {
		s.log.Warn(ctx, "authentication failed", "email", email)
		return models.UserRecord{}, common.ErrInvalidCredentials
	}
	return list[i], nil
}
