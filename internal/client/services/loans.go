package services

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/models"
)

// refreshRetryDelay is the constant backoff between retries of
// best-effort list reloads.
const refreshRetryDelay = 500 * time.Millisecond

// LoanService submits loan applications and lists the caller's loans.
type LoanService interface {
	Submit(ctx context.Context, form *models.LoanForm) (*models.Loan, error)
	List(ctx context.Context) ([]models.Loan, error)
}

type loanService struct {
	client  api.Client
	retries uint64
}

// NewLoanService constructs a LoanService. List retries transient
// transport failures up to retries times.
func NewLoanService(client api.Client, retries uint64) LoanService {
	return &loanService{client: client, retries: retries}
}

// Submit validates the form client-side and sends the application.
// Validation failures never reach the wire.
func (s *loanService) Submit(ctx context.Context, form *models.LoanForm) (*models.Loan, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return s.client.SubmitLoan(ctx, &api.LoanRequest{
		Amount:     form.Amount,
		TermMonths: form.TermMonths,
		Income:     form.Income,
		Employment: form.Employment,
		Purpose:    form.Purpose,
	})
}

func (s *loanService) List(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := withRetry(ctx, s.retries, func(ctx context.Context) error {
		got, err := s.client.ListLoans(ctx)
		if err != nil {
			return err
		}
		loans = got
		return nil
	})
	return loans, err
}

// withRetry retries fn on transport-level failures with a constant
// backoff. Server responses, whatever their status, are never retried.
func withRetry(ctx context.Context, retries uint64, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retries, retry.NewConstant(refreshRetryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if api.IsTransport(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}
