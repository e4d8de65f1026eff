package auth

// Package auth contains domain-level types and decision logic for the
// Brazil Data Cube OAuth login flow. It is pure and free of
// framework/adapter concerns.

import (
	"encoding/json"
	"strings"
)

// ScopeList is the granted OAuth scope set. The provider returns it either
// as a single space-delimited string or as a JSON array; both decode to a
// plain list of scope strings.
type ScopeList []string

// UnmarshalJSON implements json.Unmarshaler for ScopeList.
func (s *ScopeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = ScopeList(strings.Split(single, " "))
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = ScopeList(many)
	return nil
}

// TokenResponse is the provider's answer to the authorization-code exchange.
// AccessToken and TokenType are required; RefreshToken may be absent.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken *string   `json:"refresh_token"`
	Scope        ScopeList `json:"scope"`
}

// Profile is the authenticated user's record from the userinfo endpoint.
// Email is the external identity and is required by the flow. Claims keeps
// the verbatim decoded response body so the host can persist it untouched.
type Profile struct {
	Email  string
	Roles  []string
	Claims map[string]any
}

// UnmarshalJSON decodes the typed fields and retains the raw claim map.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields struct {
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var claims map[string]any
	if err := json.Unmarshal(data, &claims); err != nil {
		return err
	}

	p.Email = fields.Email
	p.Roles = fields.Roles
	p.Claims = claims
	return nil
}

// AuthState is the opaque blob the host platform persists across a user's
// session. Field names match what hosts expect to find in auth state.
type AuthState struct {
	Scope        []string       `json:"scope"`
	AccessToken  string         `json:"access_token"`
	RefreshToken *string        `json:"refresh_token"`
	OAuthUser    map[string]any `json:"oauth_user"`
}

// Result is the identity record produced by an allowed login. A denied
// login produces no Result at all rather than a zero value.
type Result struct {
	Name      string    `json:"name"`
	Admin     bool      `json:"admin"`
	AuthState AuthState `json:"auth_state"`
}

// NewAuthState assembles the persisted auth state from the token exchange
// and userinfo responses. Scope is always a list, even when the provider
// omitted it from the token response.
func NewAuthState(token TokenResponse, profile Profile) AuthState {
	scope := []string(token.Scope)
	if scope == nil {
		scope = []string{}
	}

	return AuthState{
		Scope:        scope,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		OAuthUser:    profile.Claims,
	}
}
