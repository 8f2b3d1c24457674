package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// IdentityService resolves verified actor ids to accounts and handles
// login and profile maintenance.
type IdentityService struct {
	store storage.Store
	jwt   *auth.JWTManager
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(store storage.Store, jwt *auth.JWTManager) *IdentityService {
	return &IdentityService{store: store, jwt: jwt}
}

// ResolveActor maps an opaque verified actor id to its account.
//
// An empty id means no actor was authenticated at all
// (models.ErrUnauthenticated). A non-empty id without a matching account is
// an orphaned credential — the session outlived the account — and surfaces
// as models.ErrAccountNotFound rather than a crash.
func (s *IdentityService) ResolveActor(ctx context.Context, actorID string) (*models.Account, error) {
	return requireAccount(ctx, s.store, actorID)
}

// Login verifies an account's password and returns the account with a
// signed session token. Unknown account and wrong password are deliberately
// indistinguishable.
func (s *IdentityService) Login(ctx context.Context, accountID, password string) (*models.Account, string, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	if account == nil || !auth.VerifyPassword(account.PasswordHash, password) {
		slog.Warn("Login rejected", "account_id", accountID)
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(account)
	if err != nil {
		return nil, "", err
	}

	slog.Info("Login successful", "account_id", account.ID)
	return account, token, nil
}

// LoginAccounts returns the id/name picker list for the login screen.
func (s *IdentityService) LoginAccounts(ctx context.Context) ([]*models.Account, error) {
	return s.store.ListAccounts(ctx)
}

// ProfileUpdate carries the changeable fields of an account profile.
// Password fields are optional; a new password requires the current one.
type ProfileUpdate struct {
	Name            string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile renames the actor and optionally changes their password.
// The new name must stay unique within the actor's group.
func (s *IdentityService) UpdateProfile(ctx context.Context, actorID string, update ProfileUpdate) (*models.Account, error) {
	account, err := requireAccount(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}

	name, err := validateName(update.Name)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetAccountByName(ctx, account.GroupID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != account.ID {
		return nil, fmt.Errorf("account name %q: %w", name, models.ErrDuplicateName)
	}
	account.Name = name

	if update.NewPassword != "" {
		if update.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password is required", models.ErrValidation)
		}
		if !auth.VerifyPassword(account.PasswordHash, update.CurrentPassword) {
			return nil, models.ErrInvalidCredentials
		}
		if err := auth.ValidatePassword(update.NewPassword); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
		hash, err := auth.HashPassword(update.NewPassword)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("Profile updated", "account_id", account.ID)
	return account, nil
}
