package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preptogether/internal/api"
	"preptogether/internal/domain"
	"preptogether/internal/errutil"
)

func newClient(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/", api.WithHTTPClient(srv.Client()))
}

func TestCheckEmail_SendsEscapedQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/check-email", r.URL.Path)
		assert.Equal(t, "bob+x@example.com", r.URL.Query().Get("email"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"exists": true}`))
	})

	exists, err := c.CheckEmail(context.Background(), "bob+x@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRegister_PostsDraftAsJSON(t *testing.T) {
	req := domain.RegistrationRequest{
		Username:     "bob",
		Password:     "Abcdef1!",
		Email:        "bob@example.com",
		Role:         domain.RoleJobSeeker,
		Profession:   "QA",
		Technologies: []string{"Selenium", "JIRA", "Git"},
	}
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "bob", got["username"])
		assert.Equal(t, "Abcdef1!", got["password"])
		assert.Equal(t, "bob@example.com", got["email"])
		assert.Equal(t, "jobseeker", got["role"])
		assert.Equal(t, "QA", got["profession"])
		assert.Equal(t, []any{"Selenium", "JIRA", "Git"}, got["technologies"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "User registered successfully"}`))
	})

	res, err := c.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", res.Message)
}

func TestRegister_NonSuccessCarriesStatusAndServerMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Missing role field"}`))
	})

	_, err := c.Register(context.Background(), domain.RegistrationRequest{})
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, api.CodeStatus)
	errutil.AssertErrorContext(t, err, "path", "/register")
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	assert.Contains(t, err.Error(), "Missing role field")
	assert.False(t, api.IsTransport(err))
}

func TestLogin_ReturnsToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		var in struct{ Email, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "bob@example.com", in.Email)
		assert.Equal(t, "Abcdef1!", in.Password)
		_, _ = w.Write([]byte(`{"access_token": "tok-123"}`))
	})

	token, err := c.Login(context.Background(), "bob@example.com", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_EmptyTokenIsDecodeError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Login(context.Background(), "bob@example.com", "pw")
	errutil.AssertErrorCode(t, err, api.CodeDecode)
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
	})

	_, err := c.Login(context.Background(), "bob@example.com", "nope")
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}

func TestFetchProfile_SendsBearerToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"user": {"id": 7, "username": "bob", "email": "bob@example.com",
			"role": "jobseeker", "profession": "QA", "technologies": ["Selenium", "JIRA", "Git"]}}`))
	})

	p, err := c.FetchProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{
		Username:     "bob",
		Email:        "bob@example.com",
		Role:         domain.RoleJobSeeker,
		Profession:   "QA",
		Technologies: []string{"Selenium", "JIRA", "Git"},
	}, p)
}

func TestFetchProfile_MissingUser(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "User not found"}`))
	})

	_, err := c.FetchProfile(context.Background(), "tok")
	errutil.AssertErrorCode(t, err, api.CodeDecode)
}

func TestDecodeFailure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.CheckEmail(context.Background(), "bob@example.com")
	errutil.AssertErrorCode(t, err, api.CodeDecode)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := api.New(base)
	_, err := c.CheckEmail(context.Background(), "bob@example.com")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, api.CodeTransport)
	assert.True(t, api.IsTransport(err))
	assert.Zero(t, api.StatusCode(err))
	assert.NotContains(t, err.Error(), "bob@example.com")
}

func TestStatusCode_PlainError(t *testing.T) {
	assert.Zero(t, api.StatusCode(assert.AnError))
	assert.False(t, api.IsTransport(assert.AnError))
}
