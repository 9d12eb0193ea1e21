// Package accounts implements local account registration and the session
// user record that gates settings sync.
package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

// Service manages account records and the signed-in user.
type Service struct {
	store *store.Service
}

// NewService creates an account service over the typed store.
func NewService(st *store.Service) *Service {
	return &Service{store: st}
}

// Register creates an account. Emails are unique; the password is stored
// only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return domain.User{}, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return domain.User{}, &domain.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if name == "" {
		name = email
	}

	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to generate account id: %w", err)
	}

	account := domain.Account{
		ID:           id.String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.SetAccounts(ctx, append(accounts, account)); err != nil {
		return domain.User{}, err
	}
	return account.Project(), nil
}

// Login verifies credentials and persists the reduced user projection as
// the signed-in session user.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		user := a.Project()
		if err := s.store.SetUser(ctx, &user); err != nil {
			return domain.User{}, err
		}
		return user, nil
	}
	return domain.User{}, domain.ErrInvalidCredentials
}

// Logout clears the session user and disables settings sync.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.SetUser(ctx, nil); err != nil {
		return err
	}
	return s.store.SetSyncEnabled(ctx, false)
}

// CurrentUser returns the signed-in user, or nil when signed out.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.store.User(ctx)
}
