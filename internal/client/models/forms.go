package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a client-side rejection produced before any request
// is issued. Its text is shown to the user as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(loanFormRules, LoanForm{})
	return v
}

// RegisterForm carries the registration inputs. Only the password rules
// are enforced client-side; everything else is the server's call.
type RegisterForm struct {
	Name     string
	Email    string
	Phone    string
	Password string `validate:"min=6"`
	Confirm  string `validate:"eqfield=Password"`
}

// Validate checks the password confirmation before the minimum length,
// so a mismatch is reported even when both inputs are short.
func (f *RegisterForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	if hasFailure(errs, "Confirm", "eqfield") {
		return newValidationError("Passwords do not match")
	}
	return newValidationError("Password must be at least 6 characters")
}

// LoginForm carries the login inputs; both are required.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (f *LoginForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return newValidationError("Please enter both email and password.")
		}
		return err
	}
	return nil
}

// LoanForm carries the loan application inputs. The amount tags mirror
// MinLoanAmount and MaxLoanAmount. A zero TermMonths defaults to one.
type LoanForm struct {
	Amount     float64 `validate:"gte=300,lte=4000"`
	TermMonths int     `validate:"gte=1"`
	Income     float64 `validate:"gt=0"`
	Employment string
	Purpose    string
}

// loanFormRules adds the cross-field rule: the requested amount may not
// exceed MaxIncomeMultiple times the declared income.
func loanFormRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(LoanForm)
	if f.Income > 0 && f.Amount > f.Income*MaxIncomeMultiple {
		sl.ReportError(f.Amount, "Amount", "Amount", "incomemultiple", "")
	}
}

// Validate reports the first problem in the same order the form checks
// them: amount window, income, income multiple.
func (f *LoanForm) Validate() error {
	if f.TermMonths == 0 {
		f.TermMonths = 1
	}
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	switch {
	case hasFailure(errs, "Amount", "gte") || hasFailure(errs, "Amount", "lte"):
		return newValidationError(fmt.Sprintf("Loan amount must be between R%d and R%d", MinLoanAmount, MaxLoanAmount))
	case hasFailure(errs, "Income", "gt"):
		return newValidationError("Please provide valid income")
	case hasFailure(errs, "Amount", "incomemultiple"):
		return newValidationError("Loan exceeds income multiple")
	case hasFailure(errs, "TermMonths", "gte"):
		return newValidationError("Term must be at least one month")
	}
	return newValidationError("Invalid loan application")
}

func hasFailure(errs validator.ValidationErrors, field, tag string) bool {
	for _, fe := range errs {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}
