package cli

import (
	"context"

	"github.com/msb-finance/loancli/internal/client/models"
)

// Register collects the signup form, creates the account and moves to
// the dashboard. On failure the inline error is set and the form
// returns to idle so it can be resubmitted.
func (a *App) Register(ctx context.Context) error {
	if !a.beginSubmit(formRegister) {
		return nil
	}
	state := formIdle
	defer func() { a.endSubmit(formRegister, state) }()

	a.view.Show(ScreenRegister)
	a.view.SetMessage(msgRegError, "")

	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}

	form := &models.RegisterForm{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(password),
		Confirm:  string(confirm),
	}

	sess, err := a.auth.Register(ctx, form)
	if err != nil {
		a.view.SetMessage(msgRegError, errorMessage(err, "Registration failed"))
		return err
	}

	state = formDone
	a.session = sess
	return a.Dashboard(ctx)
}
