package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/models"
	"github.com/msb-finance/loancli/internal/common"
)

// AuthService drives registration, login, logout and session restore.
//
// Contract:
//   - Register/Login validate the form first; no request is issued on a
//     validation failure. On success the session is persisted before it
//     is returned.
//   - Logout clears the persisted session and is idempotent.
//   - Restore loads the stored session on startup; an expired session is
//     cleared and reads as absent.
type AuthService interface {
	Register(ctx context.Context, form *models.RegisterForm) (*models.Session, error)
	Login(ctx context.Context, form *models.LoginForm) (*models.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Session, error)
}

type authService struct {
	client api.Client
	store  SessionStore
}

// NewAuthService constructs an AuthService bound to the given API
// client and session store.
func NewAuthService(client api.Client, store SessionStore) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, form *models.RegisterForm) (*models.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	resp, err := a.client.Register(ctx, &api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		return nil, err
	}

	return a.saveSession(ctx, resp)
}

func (a *authService) Login(ctx context.Context, form *models.LoginForm) (*models.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, &api.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return nil, err
	}

	return a.saveSession(ctx, resp)
}

// saveSession persists the auth response as the current session. A
// missing role defaults to a plain user.
func (a *authService) saveSession(ctx context.Context, resp *api.AuthResponse) (*models.Session, error) {
	role := resp.Role
	if role == "" {
		role = models.RoleUser
	}

	sess := &models.Session{Token: resp.Token, User: resp.User, Role: role}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			if clearErr := a.store.Clear(ctx); clearErr != nil {
				return nil, clearErr
			}
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}
