package hubauth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hubauth "github.com/brazil-data-cube/hubauth"
)

// clearEnv unsets the authenticator's variables so the developer's shell
// cannot leak into NewFromEnv.
func clearEnv(t *testing.T) {
	t.Helper()

	keys := []string{
		"OAUTH_APPLICATION_NAME",
		"OAUTH_ALLOWED_ROLES",
		"OAUTH_ADMIN_ROLES",
		"OAUTH_SCOPE",
		"OAUTH_AUTHORIZE_URL",
		"OAUTH_USERDATA_URL",
		"OAUTH_ACCESS_TOKEN_URL",
		"OAUTH_DISCOVERY_URL",
		"OAUTH_CLIENT_ID",
		"OAUTH_CLIENT_SECRET",
		"OAUTH_USER_AGENT",
		"OAUTH_HTTP_TIMEOUT",
	}
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

// fakeIdP serves the token and userinfo endpoints of a minimal provider.
func fakeIdP(t *testing.T, roles []string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at",
			"token_type":   "Bearer",
			"scope":        "openid email",
		})
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email": "user@email.com",
			"roles": roles,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setProviderEnv(t *testing.T, server *httptest.Server) {
	t.Helper()
	clearEnv(t)
	t.Setenv("OAUTH_CLIENT_ID", "client")
	t.Setenv("OAUTH_CLIENT_SECRET", "secret")
	t.Setenv("OAUTH_ACCESS_TOKEN_URL", server.URL+"/oauth/token")
	t.Setenv("OAUTH_USERDATA_URL", server.URL+"/users/me")
}

func TestNewFromEnv_FullLogin(t *testing.T) {
	server := fakeIdP(t, []string{"jupyter:user", "jupyter:admin"})
	setProviderEnv(t, server)
	t.Setenv("OAUTH_ALLOWED_ROLES", "user")
	t.Setenv("OAUTH_ADMIN_ROLES", "admin")

	auth, err := hubauth.NewFromEnv()
	require.NoError(t, err)

	result, err := auth.Authenticate(context.Background(), "code", "http://localhost:8000/hub/oauth_callback")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "user_email_com", result.Name)
	assert.True(t, result.Admin)
	assert.Equal(t, "at", result.AuthState.AccessToken)
	assert.Equal(t, []string{"openid", "email"}, result.AuthState.Scope)
}

func TestNewFromEnv_PolicyDenial(t *testing.T) {
	server := fakeIdP(t, []string{"geoportal:user"})
	setProviderEnv(t, server)
	t.Setenv("OAUTH_ALLOWED_ROLES", "user,admin")

	auth, err := hubauth.NewFromEnv()
	require.NoError(t, err)

	result, err := auth.Authenticate(context.Background(), "code", "http://localhost:8000/hub/oauth_callback")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNewFromEnv_MissingCredentials(t *testing.T) {
	clearEnv(t)

	_, err := hubauth.NewFromEnv()
	require.Error(t, err)
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "user_email_com", hubauth.NormalizeUsername("user@email.com"))
}
