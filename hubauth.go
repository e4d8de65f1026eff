// Package hubauth implements Brazil Data Cube OAuth 2.0 login for
// multi-user notebook platforms. It performs the authorization-code
// exchange, fetches the authenticated user's profile, applies
// application-scoped role policy, and returns the host platform's identity
// record: normalized username, admin flag, and an opaque auth-state blob
// the host persists for the session.
//
// The package holds no state of its own; every login attempt is an
// independent, stateless function of the authorization code, the provider's
// responses, and the configured policy. Hosts own the web callback layer
// and session lifecycle.
//
// Typical wiring:
//
//	auth, err := hubauth.NewFromEnv()
//	...
//	result, err := auth.Authenticate(ctx, code, redirectURL)
//	if err != nil { /* provider failure, surface a login error */ }
//	if result == nil { /* access denied by role policy */ }
package hubauth

import (
	"log/slog"
	"net/http"

	"github.com/brazil-data-cube/hubauth/config"
	"github.com/brazil-data-cube/hubauth/internal/bootstrap"
	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	"github.com/brazil-data-cube/hubauth/internal/service"
)

// Re-exported domain types forming the public contract.
type (
	// Result is the identity record for an allowed login.
	Result = domainauth.Result

	// AuthState is the opaque blob the host persists across a session.
	AuthState = domainauth.AuthState

	// Profile is the user record from the provider's userinfo endpoint.
	Profile = domainauth.Profile

	// TokenResponse is the provider's token-endpoint response.
	TokenResponse = domainauth.TokenResponse

	// UpstreamError reports a provider failure; match with errors.As.
	UpstreamError = domainauth.UpstreamError

	// Authenticator runs login attempts. Safe for concurrent use.
	Authenticator = service.Authenticator

	// BeginLoginResult carries the provider authorization URL and state.
	BeginLoginResult = service.BeginLoginResult
)

// NormalizeUsername converts an email-like identifier into a platform-safe
// account name. Exposed for hosts that render usernames independently of
// the login flow.
func NormalizeUsername(identifier string) string {
	return domainauth.NormalizeUsername(identifier)
}

// Option customises authenticator construction.
type Option func(*settings)

type settings struct {
	logger     *slog.Logger
	httpClient *http.Client
}

// WithLogger sets a structured logger for the authenticator.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets a custom HTTP client for provider calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// New builds an Authenticator from explicit configuration.
func New(cfg config.AppConfig, opts ...Option) (*Authenticator, error) {
	var s settings
	for _, o := range opts {
		o(&s)
	}

	return bootstrap.BuildAuthenticator(bootstrap.AuthenticatorConfig{
		Config:     cfg,
		Logger:     s.logger,
		HTTPClient: s.httpClient,
	})
}

// NewFromEnv builds an Authenticator from environment variables (and a
// .env file when present), the way hub deployments configure it.
func NewFromEnv(opts ...Option) (*Authenticator, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}
