package config

import (
	"errors"
	"time"
)

// AuthConfig holds the OAuth client and role-policy configuration. All
// environment variables carry the OAUTH_ prefix (see AppConfig), matching
// what deployments of the original authenticator already export.
type AuthConfig struct {
	// ApplicationName scopes role tags: only "application:role" entries
	// whose prefix equals this name participate in policy decisions.
	ApplicationName string `env:"APPLICATION_NAME" envDefault:"jupyter"`

	// AllowedRoles lists role names that may log in. Empty means the
	// policy is open: every authenticated user passes.
	AllowedRoles []string `env:"ALLOWED_ROLES" envSeparator:","`

	// AdminRoles lists role names granted admin privileges. Empty means
	// nobody is admin.
	AdminRoles []string `env:"ADMIN_ROLES" envSeparator:","`

	// Scope is the OAuth scope set requested during authorization.
	Scope []string `env:"SCOPE" envSeparator:"," envDefault:"openid,email"`

	// Endpoint URLs. Empty values are resolved from the discovery
	// document when DiscoveryURL is set, or fall back to the Brazil Data
	// Cube production endpoints.
	AuthorizeURL string `env:"AUTHORIZE_URL"`
	UserdataURL  string `env:"USERDATA_URL"`
	TokenURL     string `env:"ACCESS_TOKEN_URL"`
	DiscoveryURL string `env:"DISCOVERY_URL"`

	// OAuth client credentials. Required; absence is a startup error.
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// UserAgent identifies the calling product to the provider.
	UserAgent string `env:"USER_AGENT" envDefault:"JupyterHub"`

	// HTTPTimeout bounds each outbound call to the provider. A timeout is
	// surfaced as a regular upstream failure; nothing is retried.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to values loaded from env.
func (c *AuthConfig) Sanitize() {
	if c.ApplicationName == "" {
		c.ApplicationName = "jupyter"
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
}

// Validate surfaces configuration errors at startup rather than at the
// first login attempt.
func (c *AuthConfig) Validate() error {
	if c.ClientID == "" {
		return errors.New("auth config: OAUTH_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return errors.New("auth config: OAUTH_CLIENT_SECRET is required")
	}
	return nil
}
