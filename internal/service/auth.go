package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	obserrors "github.com/brazil-data-cube/hubauth/internal/observability/errors"
	"github.com/brazil-data-cube/hubauth/internal/observability/statsd"
	"github.com/brazil-data-cube/hubauth/internal/ports"
)

// AuthenticatorOptions groups dependencies for Authenticator.
type AuthenticatorOptions struct {
	Flow    ports.OAuthFlow
	Policy  ports.RolePolicy
	Logger  *slog.Logger
	Metrics statsd.Sink
}

// Authenticator orchestrates a single login attempt: code exchange, profile
// fetch, role policy, result assembly. Attempts are independent and share no
// mutable state, so any number may run concurrently. Nothing is retried; a
// failed upstream call fails the whole attempt.
type Authenticator struct {
	flow    ports.OAuthFlow
	policy  ports.RolePolicy
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewAuthenticator constructs a new Authenticator.
func NewAuthenticator(opts AuthenticatorOptions) (*Authenticator, error) {
	if opts.Flow == nil {
		return nil, errors.New("OAuth flow is required")
	}
	if opts.Policy == nil {
		return nil, errors.New("role policy is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = (*statsd.Client)(nil) // nil *Client is a no-op sink
	}

	return &Authenticator{
		flow:    opts.Flow,
		policy:  opts.Policy,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
}

// BeginLogin builds the provider authorization URL for the host's redirect
// handler. The host must round-trip State through the callback.
func (a *Authenticator) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, err := a.flow.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state}, nil
}

// Authenticate completes a login attempt. It returns the identity record on
// success, (nil, nil) when the profile was retrieved but role policy denied
// access — a normal outcome, not a failure — and an error when the identity
// provider misbehaved at either HTTP step.
func (a *Authenticator) Authenticate(ctx context.Context, code, redirectURL string) (*domainauth.Result, error) {
	start := time.Now()

	result, err := a.authenticate(ctx, code, redirectURL)
	a.emit(result, err, time.Since(start))
	return result, err
}

func (a *Authenticator) authenticate(ctx context.Context, code, redirectURL string) (*domainauth.Result, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	token, err := a.flow.Exchange(ctx, ports.ExchangeInput{Code: code, RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	profile, err := a.flow.FetchProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}

	if !a.policy.Allowed(profile) {
		a.logger.InfoContext(ctx, "login denied: user holds none of the allowed roles",
			"user", domainauth.NormalizeUsername(profile.Email),
		)
		return nil, nil
	}

	return &domainauth.Result{
		Name:      domainauth.NormalizeUsername(profile.Email),
		Admin:     a.policy.Admin(profile),
		AuthState: domainauth.NewAuthState(token, profile),
	}, nil
}

func (a *Authenticator) emit(result *domainauth.Result, err error, elapsed time.Duration) {
	tags := map[string]string{"result": "allowed"}
	switch {
	case err != nil:
		tags["result"] = "error"
		tags["error"] = obserrors.Classify(err)
	case result == nil:
		tags["result"] = "denied"
	}

	a.metrics.Count("auth.attempt", 1, tags)
	a.metrics.Timing("auth.duration", elapsed, map[string]string{"result": tags["result"]})
}
