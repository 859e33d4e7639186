// Package services contains the application services for the loan
// client: session persistence, authentication, loan applications and
// document handling.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msb-finance/loancli/internal/client/models"
	sessionrepo "github.com/msb-finance/loancli/internal/client/repositories/session"
	"github.com/msb-finance/loancli/internal/common"
	"github.com/msb-finance/loancli/internal/dbx"
)

// Storage keys for the persisted session fields.
const (
	keyToken = "token"
	keyUser  = "currentUser"
	keyRole  = "role"
)

// SessionStore is the single source of truth for the persisted session.
// Token, user and role are written together on successful auth and
// removed together on logout. The per-field setters remove the stored
// entry when given the zero value; they never store it literally.
type SessionStore interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error

	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, user *models.User) error
	Role(ctx context.Context) (string, error)
	SetRole(ctx context.Context, role string) error
}

type sessionStore struct {
	db *sql.DB
}

// NewSessionStore builds a SessionStore over the local client database.
func NewSessionStore(db *sql.DB) SessionStore {
	return &sessionStore{db: db}
}

func (s *sessionStore) repo(db dbx.DBTX) sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(db)
}

// Load restores the persisted session. A partial session (token without
// user or vice versa) reads as no session; a stored JWT whose expiry has
// passed returns common.ErrSessionExpired so the caller can clear it.
func (s *sessionStore) Load(ctx context.Context) (*models.Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.User(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.Role(ctx)
	if err != nil {
		return nil, err
	}

	if token == "" || user == nil {
		return nil, nil
	}
	if tokenExpired(token) {
		return nil, common.ErrSessionExpired
	}
	return &models.Session{Token: token, User: user, Role: role}, nil
}

// Save persists all three session fields in one transaction.
func (s *sessionStore) Save(ctx context.Context, sess *models.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUser, userJSON); err != nil {
			return err
		}
		return repo.Set(ctx, keyRole, []byte(sess.Role))
	})
}

// Clear removes every persisted session field. Calling it on an empty
// store is a no-op.
func (s *sessionStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

func (s *sessionStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *sessionStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.repo(s.db).Delete(ctx, keyToken)
	}
	return s.repo(s.db).Set(ctx, keyToken, []byte(token))
}

func (s *sessionStore) User(ctx context.Context) (*models.User, error) {
	v, err := s.repo(s.db).Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(v, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (s *sessionStore) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.repo(s.db).Delete(ctx, keyUser)
	}
	v, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo(s.db).Set(ctx, keyUser, v)
}

func (s *sessionStore) Role(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, keyRole)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *sessionStore) SetRole(ctx context.Context, role string) error {
	if role == "" {
		return s.repo(s.db).Delete(ctx, keyRole)
	}
	return s.repo(s.db).Set(ctx, keyRole, []byte(role))
}

// tokenExpired reports whether tok is a JWT whose exp claim has passed.
// The client holds no signing key, so the claim is read unverified;
// opaque tokens are never considered expired locally.
func tokenExpired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
