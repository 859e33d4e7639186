// Package api implements the client for the loan service REST API.
package api

import (
	"context"

	"github.com/msb-finance/loancli/internal/client/models"
)

// TokenSource supplies the current bearer token. The session store is
// the single canonical source; the client never caches tokens itself.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the payload of both auth endpoints. Role is empty on
// register responses.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
	Role  string       `json:"role,omitempty"`
}

// LoanRequest is the body of POST /loans.
type LoanRequest struct {
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"termMonths"`
	Income     float64 `json:"income"`
	Employment string  `json:"employment"`
	Purpose    string  `json:"purpose"`
}

// Upload is one file to send to the documents endpoint.
type Upload struct {
	Name    string
	Content []byte
}

// Client wraps the six API operations. Operations needing auth fail
// fast with common.ErrAuthRequired when no token is present.
type Client interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	SubmitLoan(ctx context.Context, req *LoanRequest) (*models.Loan, error)
	ListLoans(ctx context.Context) ([]models.Loan, error)
	UploadDocuments(ctx context.Context, files []Upload) (bool, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
}
