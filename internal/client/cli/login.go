package cli

import (
	"context"

	"github.com/msb-finance/loancli/internal/client/models"
)

// Login authenticates the user and routes by role: admins are handed
// off to the admin console, everyone else lands on the dashboard.
func (a *App) Login(ctx context.Context) error {
	if !a.beginSubmit(formLogin) {
		return nil
	}
	state := formIdle
	defer func() { a.endSubmit(formLogin, state) }()

	a.view.Show(ScreenLogin)
	a.view.SetMessage(msgLoginError, "")

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, &models.LoginForm{Email: email, Password: string(password)})
	if err != nil {
		a.view.SetMessage(msgLoginError, errorMessage(err, "Unexpected error during login."))
		return err
	}

	state = formDone
	a.session = sess

	if sess.Role == models.RoleAdmin {
		a.adminHandoff()
		return nil
	}
	return a.Dashboard(ctx)
}

// Logout clears the stored session and returns to the login screen.
// Logging out while already logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	a.view.Show(ScreenLogin)
	return nil
}
