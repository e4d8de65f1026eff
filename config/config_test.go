package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

// clearEnv unsets every variable this config reads so tests see defaults
// regardless of what the developer's shell exports. t.Setenv registers the
// restore; Unsetenv removes the value for the duration of the test.
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
		"HUBAUTH_OBSERVABILITY_METRICS_ENABLED",
		"HUBAUTH_OBSERVABILITY_METRICS_STATSD_ADDRESS",
		"HUBAUTH_OBSERVABILITY_METRICS_STATSD_PREFIX",
	}
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func parseConfig(t *testing.T) AppConfig {
	t.Helper()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := parseConfig(t)

	if cfg.Auth.ApplicationName != "jupyter" {
		t.Fatalf("unexpected application name %q", cfg.Auth.ApplicationName)
	}
	if !reflect.DeepEqual(cfg.Auth.Scope, []string{"openid", "email"}) {
		t.Fatalf("unexpected default scope %v", cfg.Auth.Scope)
	}
	if cfg.Auth.UserAgent != "JupyterHub" {
		t.Fatalf("unexpected user agent %q", cfg.Auth.UserAgent)
	}
	if cfg.Auth.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Auth.HTTPTimeout)
	}
	if len(cfg.Auth.AllowedRoles) != 0 {
		t.Fatalf("allowed roles must default to empty, got %v", cfg.Auth.AllowedRoles)
	}
	if len(cfg.Auth.AdminRoles) != 0 {
		t.Fatalf("admin roles must default to empty, got %v", cfg.Auth.AdminRoles)
	}
	if cfg.Observability.MetricsEnabled {
		t.Fatal("metrics must default to disabled")
	}
}

func TestAppConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OAUTH_APPLICATION_NAME", "geoportal")
	t.Setenv("OAUTH_ALLOWED_ROLES", "user,admin")
	t.Setenv("OAUTH_ADMIN_ROLES", "admin")
	t.Setenv("OAUTH_SCOPE", "openid,email,profile")
	t.Setenv("OAUTH_CLIENT_ID", "client")
	t.Setenv("OAUTH_CLIENT_SECRET", "secret")
	t.Setenv("OAUTH_ACCESS_TOKEN_URL", "https://idp.example.com/token")
	t.Setenv("OAUTH_HTTP_TIMEOUT", "10s")
	t.Setenv("HUBAUTH_OBSERVABILITY_METRICS_ENABLED", "true")

	cfg := parseConfig(t)

	if cfg.Auth.ApplicationName != "geoportal" {
		t.Fatalf("unexpected application name %q", cfg.Auth.ApplicationName)
	}
	if !reflect.DeepEqual(cfg.Auth.AllowedRoles, []string{"user", "admin"}) {
		t.Fatalf("unexpected allowed roles %v", cfg.Auth.AllowedRoles)
	}
	if !reflect.DeepEqual(cfg.Auth.AdminRoles, []string{"admin"}) {
		t.Fatalf("unexpected admin roles %v", cfg.Auth.AdminRoles)
	}
	if !reflect.DeepEqual(cfg.Auth.Scope, []string{"openid", "email", "profile"}) {
		t.Fatalf("unexpected scope %v", cfg.Auth.Scope)
	}
	if cfg.Auth.TokenURL != "https://idp.example.com/token" {
		t.Fatalf("unexpected token URL %q", cfg.Auth.TokenURL)
	}
	if cfg.Auth.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Auth.HTTPTimeout)
	}
	if !cfg.Observability.IsEnabled() {
		t.Fatal("expected metrics enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{HTTPTimeout: -1}
	cfg.Sanitize()

	if cfg.ApplicationName != "jupyter" {
		t.Fatalf("expected application name guardrail, got %q", cfg.ApplicationName)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected timeout guardrail, got %v", cfg.HTTPTimeout)
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    AuthConfig
		errMsg string
	}{
		{
			name:   "missing client id",
			cfg:    AuthConfig{ClientSecret: "secret"},
			errMsg: "OAUTH_CLIENT_ID",
		},
		{
			name:   "missing client secret",
			cfg:    AuthConfig{ClientID: "client"},
			errMsg: "OAUTH_CLIENT_SECRET",
		},
		{
			name: "complete",
			cfg:  AuthConfig{ClientID: "client", ClientSecret: "secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if got := err.Error(); !strings.Contains(got, tt.errMsg) {
				t.Fatalf("error %q does not mention %q", got, tt.errMsg)
			}
		})
	}
}

func TestObservabilityConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityConfig{MetricsEnabled: true, StatsdAddress: "   "}
	cfg.Sanitize()

	if cfg.MetricsEnabled {
		t.Fatal("blank statsd address must disable metrics")
	}
	if cfg.IsEnabled() {
		t.Fatal("expected IsEnabled to be false")
	}
}
