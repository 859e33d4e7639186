package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantMsg  string
	}{
		{"ok", "abcdef", "abcdef", ""},
		{"too short", "abc", "abc", "Password must be at least 6 characters"},
		{"mismatch", "abcdef", "abcdex", "Passwords do not match"},
		{"short and mismatched reports mismatch", "abc", "abcd", "Passwords do not match"},
		{"empty", "", "", "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &RegisterForm{Name: "Alice", Email: "alice@example.org", Password: tt.password, Confirm: tt.confirm}
			err := f.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Error())
		})
	}
}

func TestLoginForm_Validate(t *testing.T) {
	assert.NoError(t, (&LoginForm{Email: "a@b.c", Password: "x"}).Validate())

	for _, f := range []*LoginForm{
		{Email: "", Password: "x"},
		{Email: "a@b.c", Password: ""},
		{},
	} {
		err := f.Validate()
		require.Error(t, err)
		assert.Equal(t, "Please enter both email and password.", err.Error())
	}
}

func TestLoanForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		income  float64
		wantMsg string
	}{
		{"accepted", 500, 100, ""},
		{"lower bound", 300, 5000, ""},
		{"upper bound", 4000, 5000, ""},
		{"below window", 200, 5000, "Loan amount must be between R300 and R4000"},
		{"above window", 4001, 5000, "Loan amount must be between R300 and R4000"},
		{"amount not a number", math.NaN(), 5000, "Loan amount must be between R300 and R4000"},
		{"zero income", 500, 0, "Please provide valid income"},
		{"negative income", 500, -1, "Please provide valid income"},
		{"income not a number", 500, math.NaN(), "Please provide valid income"},
		{"exceeds income multiple", 1200, 100, "Loan exceeds income multiple"},
		{"exactly ten times income", 1000, 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &LoanForm{Amount: tt.amount, TermMonths: 6, Income: tt.income, Employment: "employed", Purpose: "car"}
			err := f.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Error())
		})
	}
}

func TestLoanForm_TermDefaultsToOne(t *testing.T) {
	f := &LoanForm{Amount: 500, Income: 100}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.TermMonths)
}

func TestDocument_OwnedBy(t *testing.T) {
	d := &Document{Filename: "payslip.pdf", User: DocumentOwner{ID: "u1"}}
	assert.True(t, d.OwnedBy("u1"))
	assert.False(t, d.OwnedBy("u2"))
	assert.False(t, d.OwnedBy(""))
}

func TestSession_Authenticated(t *testing.T) {
	u := &User{ID: "u1", Name: "Alice", Email: "a@b.c"}
	assert.True(t, (&Session{Token: "t1", User: u, Role: RoleUser}).Authenticated())
	assert.False(t, (&Session{User: u, Role: RoleUser}).Authenticated())
	assert.False(t, (&Session{Token: "t1"}).Authenticated())

	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
}
