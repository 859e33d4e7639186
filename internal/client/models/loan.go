package models

import "time"

// Product limits for a loan application. Amounts are in rand.
const (
	MinLoanAmount = 300
	MaxLoanAmount = 4000

	// MaxIncomeMultiple caps the requested amount relative to the
	// declared monthly income.
	MaxIncomeMultiple = 10
)

// Loan is a server-owned loan application. The client writes the
// request subset and reads back whatever the server returns.
type Loan struct {
	ID         string    `json:"id,omitempty"`
	Amount     float64   `json:"amount"`
	TermMonths int       `json:"termMonths"`
	Income     float64   `json:"income,omitempty"`
	Employment string    `json:"employment,omitempty"`
	Purpose    string    `json:"purpose,omitempty"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
