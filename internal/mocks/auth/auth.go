package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"fmt"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	"github.com/brazil-data-cube/hubauth/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.OAuthFlow  = (*MockOAuthFlow)(nil)
	_ ports.RolePolicy = (*StaticPolicy)(nil)
)

// MockOAuthFlow simulates an identity provider for tests with deterministic
// state handling and configurable token/profile responses.
type MockOAuthFlow struct {
	BeginFunc        func(ctx context.Context, in ports.BeginInput) (authURL, state string, err error)
	ExchangeFunc     func(ctx context.Context, in ports.ExchangeInput) (domainauth.TokenResponse, error)
	FetchProfileFunc func(ctx context.Context, token domainauth.TokenResponse) (domainauth.Profile, error)

	// Deterministic values for predictable testing
	AuthURL string
	Token   domainauth.TokenResponse
	Profile domainauth.Profile

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockOAuthFlow creates a MockOAuthFlow with sensible defaults.
func NewMockOAuthFlow() *MockOAuthFlow {
	return &MockOAuthFlow{
		AuthURL: "https://mock-idp/auth/v1/oauth/authorize",
		Token: domainauth.TokenResponse{
			AccessToken: "mock-access-token",
			TokenType:   "Bearer",
			Scope:       domainauth.ScopeList{"openid", "email"},
		},
		Profile: ProfileWithRoles("user@email.com", "jupyter:user"),
	}
}

func (m *MockOAuthFlow) Begin(ctx context.Context, in ports.BeginInput) (string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	return m.AuthURL, fmt.Sprintf("state-%d", m.callCount), nil
}

func (m *MockOAuthFlow) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.TokenResponse, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	return m.Token, nil
}

func (m *MockOAuthFlow) FetchProfile(ctx context.Context, token domainauth.TokenResponse) (domainauth.Profile, error) {
	if m.FetchProfileFunc != nil {
		return m.FetchProfileFunc(ctx, token)
	}
	return m.Profile, nil
}

// StaticPolicy is a fixed-answer policy for tests.
type StaticPolicy struct {
	AllowAll bool
	AdminAll bool
}

func (p StaticPolicy) Allowed(domainauth.Profile) bool { return p.AllowAll }
func (p StaticPolicy) Admin(domainauth.Profile) bool   { return p.AdminAll }

// ProfileWithRoles builds a profile the way the provider's userinfo endpoint
// would return it, including the raw claim map.
func ProfileWithRoles(email string, roles ...string) domainauth.Profile {
	claimRoles := make([]any, len(roles))
	for i, r := range roles {
		claimRoles[i] = r
	}
	return domainauth.Profile{
		Email: email,
		Roles: roles,
		Claims: map[string]any{
			"email": email,
			"roles": claimRoles,
		},
	}
}
