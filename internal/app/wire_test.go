package app_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"preptogether/internal/app"
	"preptogether/internal/devapi"
	"preptogether/internal/domain"
	"preptogether/internal/errutil"
	"preptogether/internal/services/navigation"
	"preptogether/internal/services/profile"
	"preptogether/internal/services/registration"
)

type env struct {
	wire *app.Wire
	out  *bytes.Buffer
	api  *devapi.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	server, err := devapi.New(devapi.Config{JWTSecret: []byte("test"), BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	w, err := app.NewWire(app.Config{
		APIURL:    srv.URL,
		Home:      t.TempDir(),
		LogFormat: "text",
		LogLevel:  "warn",
	}, nil, app.WithHTTPClient(srv.Client()), app.WithOutput(&out))
	require.NoError(t, err)
	return &env{wire: w, out: &out, api: server}
}

func fillBob(t *testing.T, f *registration.Form) {
	t.Helper()
	f.SetUsername("bob")
	f.SetPassword("Abcdef1!")
	f.SetEmail("bob@example.com")
	f.SetRole(domain.RoleJobSeeker)
	f.SetProfession("QA")
	require.NoError(t, f.SetTechnologies([]string{"Selenium", "JIRA", "Git"}))
}

func TestRegisterLoginLogout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	form := e.wire.NewRegistration()
	fillBob(t, form)
	outcome, err := form.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, registration.OutcomeRegistered, outcome)
	assert.Equal(t, domain.RouteLogin, e.wire.Router.Current())
	assert.Contains(t, e.out.String(), "[ Home | Register | Login ]\nLogin\n")

	e.out.Reset()
	require.NoError(t, e.wire.Login(ctx, "bob@example.com", "Abcdef1!"))
	assert.True(t, e.wire.Session.IsLoggedIn())
	assert.Equal(t, domain.RouteProfile, e.wire.Router.Current())
	assert.Contains(t, e.out.String(), "[ Home | Profile | Logout ]\nProfile\nUsername: bob\n")
	assert.Contains(t, e.out.String(), "Technologies: Selenium, JIRA, Git\n")

	email, ok := e.wire.RememberedEmail()
	assert.True(t, ok)
	assert.Equal(t, "bob@example.com", email)

	claims, ok := e.wire.Session.Claims()
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", claims.Subject)

	e.out.Reset()
	require.NoError(t, e.wire.Logout(ctx))
	assert.False(t, e.wire.Session.IsLoggedIn())
	_, stored, err := e.wire.Tokens.LoadToken()
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, domain.RouteHome, e.wire.Router.Current())
	assert.Contains(t, e.out.String(), "[ Home | Register | Login ]\nWelcome to Prepare Together\n")
}

func TestRegister_ExistingEmailStaysOnForm(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first := e.wire.NewRegistration()
	fillBob(t, first)
	_, err := first.Submit(ctx)
	require.NoError(t, err)

	e.out.Reset()
	second := e.wire.NewRegistration()
	fillBob(t, second)
	outcome, err := second.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, registration.OutcomeEmailInUse, outcome)
	assert.Equal(t, registration.MsgEmailInUse, second.Errors().Get(registration.FieldEmail))
	assert.Equal(t, 1, e.api.Users())
	assert.Empty(t, e.out.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := newEnv(t)

	err := e.wire.Login(context.Background(), "bob@example.com", "Abcdef1!")

	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
	errutil.AssertErrorCode(t, err, app.CodeInvalidCredentials)
	assert.False(t, e.wire.Session.IsLoggedIn())
	_, ok := e.wire.RememberedEmail()
	assert.False(t, ok)
}

func TestLogin_RefusedWhenLoggedIn(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.wire.Session.Login("abc"))

	err := e.wire.Login(context.Background(), "bob@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, navigation.ErrAlreadyLoggedIn)
}

func TestRouter_ProfileNeedsLogin(t *testing.T) {
	e := newEnv(t)

	err := e.wire.Router.Navigate(context.Background(), domain.RouteProfile)

	assert.ErrorIs(t, err, navigation.ErrLoginRequired)
	assert.Empty(t, e.out.String())
}

func TestRouter_ProfileWithStaleToken(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.wire.Session.Login("not-a-jwt"))

	err := e.wire.Router.Navigate(context.Background(), domain.RouteProfile)

	require.Error(t, err)
	assert.Contains(t, e.out.String(), "Failed to fetch user data. Please try again.\n")
}

func TestSessionEnd_ClearsLoadedProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	form := e.wire.NewRegistration()
	fillBob(t, form)
	_, err := form.Submit(ctx)
	require.NoError(t, err)
	require.NoError(t, e.wire.Login(ctx, "bob@example.com", "Abcdef1!"))
	require.Equal(t, profile.StatusLoaded, e.wire.Profile.Snapshot().Status)

	require.NoError(t, e.wire.Session.Logout())

	snap := e.wire.Profile.Snapshot()
	assert.Equal(t, profile.StatusIdle, snap.Status)
	assert.Empty(t, snap.Profile.Email)
}
