// Package cli implements the interactive terminal client: a command
// loop over screens (hero, login, register, loan form, dashboard) with
// per-form submission state and inline feedback messages.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/config"
	"github.com/msb-finance/loancli/internal/client/models"
	"github.com/msb-finance/loancli/internal/client/services"
	"github.com/msb-finance/loancli/internal/client/storage"
	"github.com/msb-finance/loancli/internal/logging"
)

type formID int

const (
	formRegister formID = iota
	formLogin
	formLoan
	formUpload
)

type formState int

const (
	formIdle formState = iota
	formSubmitting
	formDone
)

// App wires the command loop to the application services. It owns the
// view, an in-memory mirror of the stored session, and the per-form
// submission state.
type App struct {
	config    *config.Config
	auth      services.AuthService
	loans     services.LoanService
	documents services.DocumentService
	log       logging.Logger
	view      *View
	reader    *bufio.Reader
	out       io.Writer
	db        *sql.DB

	session *models.Session
	forms   map[formID]formState
	quit    bool
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	store := services.NewSessionStore(db)
	client := api.NewHTTPClient(cfg.BaseURL, store)

	return &App{
		config:    cfg,
		auth:      services.NewAuthService(client, store),
		loans:     services.NewLoanService(client, cfg.RefreshRetries),
		documents: services.NewDocumentService(client, store, cfg.RefreshRetries),
		log:       logging.NewZapLogger(cfg.LogLevel),
		view:      NewView(os.Stdout),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		db:        db,
		forms:     make(map[formID]formState),
	}, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) done() bool {
	return a.quit
}

// beginSubmit moves a form from idle to submitting. A submit while the
// form is already in flight is refused.
func (a *App) beginSubmit(f formID) bool {
	if a.forms[f] == formSubmitting {
		return false
	}
	a.forms[f] = formSubmitting
	return true
}

func (a *App) endSubmit(f formID, s formState) {
	a.forms[f] = s
}

// sleep waits for d, honoring context cancellation. Used for the
// deferred list reloads after successful submissions.
func (a *App) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// errorMessage converts a failure into the inline text shown to the
// user. Validation errors read as written, request errors prefer the
// server-supplied message, anything else falls back.
func errorMessage(err error, fallback string) string {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		if msg := reqErr.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}

// start restores any persisted session and picks the initial screen.
// Admin accounts are handed off immediately; a valid user session goes
// straight to the dashboard; everyone else lands on the hero screen.
func (a *App) start(ctx context.Context) {
	sess, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	a.session = sess

	switch {
	case sess != nil && sess.Role == models.RoleAdmin:
		a.adminHandoff()
	case sess.Authenticated():
		if err := a.Dashboard(ctx); err != nil {
			a.log.Error(ctx, "error showing dashboard", "error", err)
		}
	default:
		a.view.Show(ScreenHero)
	}
}

// adminHandoff points an admin account at the separate admin console,
// which shares the stored session, and ends the command loop.
func (a *App) adminHandoff() {
	fmt.Fprintf(a.out, "Admin account: open %s to continue\n", a.config.AdminURL)
	a.quit = true
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "(" + a.session.User.Name + ")"
	}
	return ""
}

// Run restores the session, shows the initial screen and enters the
// command loop. It returns when the user exits or input is exhausted.
func (a *App) Run(ctx context.Context) error {
	a.start(ctx)
	if a.quit {
		return nil
	}

	fmt.Fprintln(a.out, "Welcome to the MSB Finance loan client (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
	return nil
}
