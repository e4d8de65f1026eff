package config

// AppConfig is the top-level configuration for the authenticator, composed
// from domain-specific files:
//   - auth.go: OAuth client and role-policy configuration
//   - observability.go: metrics emission
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library; see internal/bootstrap.
type AppConfig struct {
	Auth          AuthConfig          `envPrefix:"OAUTH_"`
	Observability ObservabilityConfig `envPrefix:"HUBAUTH_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// It should be called after loading configuration from the environment.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Observability.Sanitize()
}

// Validate surfaces startup-time configuration errors.
func (c *AppConfig) Validate() error {
	return c.Auth.Validate()
}
