package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/models"
)

func TestLogin_Success(t *testing.T) {
	stubText(t, "jane@example.com")
	stubPasswords(t, "password1")

	auth := &fakeAuth{loginResp: userSession()}
	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})

	err := app.Login(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, auth.loginCalls)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, ScreenDashboard, app.view.Active())
	assert.Empty(t, app.view.Message(msgLoginError))
}

func TestLogin_AdminRedirect(t *testing.T) {
	stubText(t, "admin@example.com")
	stubPasswords(t, "password1")

	sess := userSession()
	sess.Role = models.RoleAdmin
	auth := &fakeAuth{loginResp: sess}

	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})
	var out strings.Builder
	app.out = &out

	err := app.Login(context.Background())
	assert.NoError(t, err)
	assert.True(t, app.done())
	assert.Contains(t, out.String(), "https://admin.example.com")
	assert.NotEqual(t, ScreenDashboard, app.view.Active())
}

func TestLogin_MissingFields(t *testing.T) {
	stubText(t, "")
	stubPasswords(t, "")

	auth := &fakeAuth{}
	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})

	err := app.Login(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Please enter both email and password.", app.view.Message(msgLoginError))
	assert.False(t, app.isLoggedIn())
}

func TestLogin_ServerError(t *testing.T) {
	stubText(t, "jane@example.com")
	stubPasswords(t, "wrong-pass")

	auth := &fakeAuth{loginErr: &api.RequestError{Status: 401, Body: `{"message":"Invalid credentials"}`}}
	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})

	err := app.Login(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Invalid credentials", app.view.Message(msgLoginError))

	// the form returned to idle, so a retry goes through
	stubText(t, "jane@example.com")
	stubPasswords(t, "password1")
	auth.loginErr = nil
	auth.loginResp = userSession()
	assert.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
}

func TestLogin_InFlightIgnored(t *testing.T) {
	auth := &fakeAuth{}
	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})
	app.forms[formLogin] = formSubmitting

	err := app.Login(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, auth.loginCalls)
}

func TestLogout(t *testing.T) {
	auth := &fakeAuth{}
	app := newTestApp(auth, &fakeLoans{}, &fakeDocs{})
	app.session = userSession()

	assert.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, ScreenLogin, app.view.Active())

	// logging out again is harmless
	assert.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, 2, auth.logoutCalls)
	assert.Equal(t, ScreenLogin, app.view.Active())
}
