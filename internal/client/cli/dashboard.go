package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/msb-finance/loancli/internal/client/models"
)

// Dashboard renders the dashboard: greeting, loan applications and
// uploaded documents. A partial or stale session is cleared and the
// user is dropped back to the hero screen instead.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		if err := a.auth.Logout(ctx); err != nil {
			a.log.Error(ctx, "error clearing session", "error", err)
		}
		a.session = nil
		a.view.Show(ScreenHero)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s <%s>\n", a.session.User.Name, a.session.User.Email)
	a.refresh(ctx)
	a.view.Show(ScreenDashboard)
	return nil
}

// refresh loads loans and documents concurrently and independently:
// either side can fail without blocking the other. Failures here are
// logged, not shown; submissions surface their own errors.
func (a *App) refresh(ctx context.Context) {
	var (
		wg              sync.WaitGroup
		loans           []models.Loan
		docs            []models.Document
		loanErr, docErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		loans, loanErr = a.loans.List(ctx)
	}()
	go func() {
		defer wg.Done()
		docs, docErr = a.documents.List(ctx)
	}()
	wg.Wait()

	if loanErr != nil {
		a.log.Error(ctx, "error loading loans", "error", loanErr)
	} else {
		a.renderLoans(loans)
	}
	if docErr != nil {
		a.log.Error(ctx, "error loading documents", "error", docErr)
	} else {
		a.renderDocuments(docs)
	}
}

func (a *App) renderLoans(loans []models.Loan) {
	fmt.Fprintln(a.out, "Loan applications:")
	if len(loans) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, l := range loans {
		fmt.Fprintf(a.out, "  R%v - %d months\n", l.Amount, l.TermMonths)
	}
}

// renderDocuments prints the uploaded documents section. An empty list
// renders nothing at all, heading included.
func (a *App) renderDocuments(docs []models.Document) {
	if len(docs) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Uploaded Documents")
	for _, d := range docs {
		fmt.Fprintf(a.out, "  %s (%s)\n", d.Filename, d.UploadedAt.Format("2006-01-02"))
	}
}
