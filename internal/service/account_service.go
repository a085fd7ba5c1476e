package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/you/login-tut/internal/model"
	"github.com/you/login-tut/internal/observability"
	"github.com/you/login-tut/internal/security"
)

// UserRepository persists credential records.
type UserRepository interface {
	FindByName(ctx context.Context, name string) (*model.User, error)
	Create(ctx context.Context, name, passwordHash string) error
}

// AccountService handles signup and login.
type AccountService struct {
	repo UserRepository
	cost int
}

func NewAccountService(r UserRepository, bcryptCost int) *AccountService {
	return &AccountService{repo: r, cost: bcryptCost}
}

// Signup hashes the password and inserts the credential record. The store's
// unique index decides duplicates; model.ErrUserExists reports the loser.
func (a *AccountService) Signup(ctx context.Context, name, password string) error {
	hash, err := security.HashPassword(password, a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.repo.Create(ctx, name, hash); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	observability.GetLogger(ctx).Info("user_signed_up", zap.String("name", name))
	return nil
}

// Login checks the plaintext password against the stored digest. It returns
// model.ErrUserNotFound or model.ErrWrongPassword so the handler can render
// the matching view; bcrypt mismatch never escapes as an internal error.
func (a *AccountService) Login(ctx context.Context, name, password string) error {
	u, err := a.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := security.ComparePassword(u.Password, password); err != nil {
		return model.ErrWrongPassword
	}

	observability.GetLogger(ctx).Info("user_login_success", zap.String("name", name))
	return nil
}
