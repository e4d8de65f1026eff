package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
)

// BeginInput carries inputs for constructing the provider redirect.
type BeginInput struct {
	// RedirectURL is the host callback the provider should send the user
	// back to. Required.
	RedirectURL string
}

// ExchangeInput groups parameters for the authorization-code exchange.
type ExchangeInput struct {
	Code        string
	RedirectURL string
}

// OAuthFlow is the provider-facing capability set of the login flow:
// redirect construction, code exchange, and profile retrieval. The two HTTP
// calls within one attempt are strictly sequential; implementations hold no
// cross-attempt state.
type OAuthFlow interface {
	// Begin builds the provider authorization URL and returns it together
	// with the opaque state the host's callback layer must verify.
	Begin(ctx context.Context, in BeginInput) (authURL, state string, err error)

	// Exchange trades an authorization code for a token response. Failures
	// are reported as *domainauth.UpstreamError.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.TokenResponse, error)

	// FetchProfile retrieves the authenticated user's profile using the
	// token from Exchange. Failures are reported as *domainauth.UpstreamError.
	FetchProfile(ctx context.Context, token domainauth.TokenResponse) (domainauth.Profile, error)
}

// RolePolicy decides login admission and admin privileges for a profile.
// Implementations must be pure: no I/O, no side effects.
type RolePolicy interface {
	Allowed(profile domainauth.Profile) bool
	Admin(profile domainauth.Profile) bool
}
