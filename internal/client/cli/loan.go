package cli

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/msb-finance/loancli/internal/client/models"
)

// parseNumber keeps the form's permissive numeric handling: input that
// does not parse becomes NaN and is rejected by validation with the
// range message for that field.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// SubmitLoan collects the application form, submits it, and on success
// reloads the loan list before switching back to the dashboard.
func (a *App) SubmitLoan(ctx context.Context) error {
	if !a.beginSubmit(formLoan) {
		return nil
	}
	state := formIdle
	defer func() { a.endSubmit(formLoan, state) }()

	a.view.Show(ScreenLoanForm)
	a.view.SetMessage(msgLoanError, "")
	a.view.SetMessage(msgLoanSuccess, "")

	amount, err := getSimpleText(a.reader, "Loan amount (R)", a.out)
	if err != nil {
		return err
	}
	months, err := getSimpleText(a.reader, "Term in months", a.out)
	if err != nil {
		return err
	}
	income, err := getSimpleText(a.reader, "Monthly income (R)", a.out)
	if err != nil {
		return err
	}
	employment, err := getSimpleText(a.reader, "Employment status", a.out)
	if err != nil {
		return err
	}
	purpose, err := getSimpleText(a.reader, "Purpose", a.out)
	if err != nil {
		return err
	}

	term, err := strconv.Atoi(strings.TrimSpace(months))
	if err != nil {
		term = 1
	}

	form := &models.LoanForm{
		Amount:     parseNumber(amount),
		TermMonths: term,
		Income:     parseNumber(income),
		Employment: employment,
		Purpose:    purpose,
	}

	if _, err := a.loans.Submit(ctx, form); err != nil {
		a.view.SetMessage(msgLoanError, errorMessage(err, "Application failed"))
		return err
	}

	state = formDone
	a.view.SetMessage(msgLoanSuccess, "Loan application submitted successfully")

	a.sleep(ctx, a.config.LoanReloadDelay)
	if loans, err := a.loans.List(ctx); err != nil {
		a.log.Error(ctx, "error loading loans", "error", err)
	} else {
		a.renderLoans(loans)
	}

	a.sleep(ctx, a.config.DashboardSwitchDelay-a.config.LoanReloadDelay)
	a.view.Show(ScreenDashboard)
	return nil
}
