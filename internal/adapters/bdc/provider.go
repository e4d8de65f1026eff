package bdc

// Package bdc implements the OAuthFlow port against the Brazil Data Cube
// identity provider. It performs the authorization-code exchange and the
// userinfo fetch over plain HTTP; the provider issues opaque tokens, so no
// id_token verification is involved.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	"github.com/brazil-data-cube/hubauth/internal/ports"
)

// Default Brazil Data Cube endpoints, used when neither explicit URLs nor a
// discovery document are configured.
const (
	DefaultAuthorizeURL = "https://brazildatacube.dpi.inpe.br/auth/v1/oauth/authorize"
	DefaultTokenURL     = "https://brazildatacube.dpi.inpe.br/auth/v1/oauth/token"
	DefaultUserdataURL  = "https://brazildatacube.dpi.inpe.br/auth/v1/users/me"
)

// DefaultUserAgent identifies the calling product to the provider.
const DefaultUserAgent = "JupyterHub"

const maxErrorBodySnippet = 256

// ProviderConfig holds configuration for the BDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	Scope        []string

	// Explicit endpoint URLs. Any URL left empty is resolved from the
	// discovery document when DiscoveryURL is set, or falls back to the
	// package defaults.
	AuthorizeURL string
	TokenURL     string
	UserdataURL  string

	// DiscoveryURL optionally points at an OIDC discovery document
	// (issuer or full .well-known URL) used to resolve endpoints.
	DiscoveryURL string

	UserAgent  string
	HTTPClient *http.Client // Optional, defaults to a 30s-timeout client
}

// Provider implements ports.OAuthFlow for the Brazil Data Cube IdP.
// It holds only immutable configuration; login attempts share nothing.
type Provider struct {
	oauth        *oauth2.Config
	tokenURL     string
	userdataURL  string
	clientID     string
	clientSecret string
	userAgent    string
	httpClient   *http.Client
}

var _ ports.OAuthFlow = (*Provider)(nil)

// NewProvider creates a BDC provider, resolving endpoints from discovery
// when configured.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	authorizeURL := cfg.AuthorizeURL
	tokenURL := cfg.TokenURL
	userdataURL := cfg.UserdataURL

	if cfg.DiscoveryURL != "" {
		disc, err := discoverEndpoints(cfg.DiscoveryURL, httpClient)
		if err != nil {
			return nil, fmt.Errorf("oidc discovery: %w", err)
		}
		if authorizeURL == "" {
			authorizeURL = disc.authorizeURL
		}
		if tokenURL == "" {
			tokenURL = disc.tokenURL
		}
		if userdataURL == "" {
			userdataURL = disc.userdataURL
		}
	}

	if authorizeURL == "" {
		authorizeURL = DefaultAuthorizeURL
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if userdataURL == "" {
		userdataURL = DefaultUserdataURL
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       cfg.Scope,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authorizeURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		tokenURL:     tokenURL,
		userdataURL:  userdataURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		userAgent:    userAgent,
		httpClient:   httpClient,
	}, nil
}

type discoveredEndpoints struct {
	authorizeURL string
	tokenURL     string
	userdataURL  string
}

// discoverEndpoints resolves provider endpoints from an OIDC discovery
// document. The userinfo endpoint is read from the raw document since
// go-oidc does not export it through Endpoint().
func discoverEndpoints(discoveryURL string, httpClient *http.Client) (discoveredEndpoints, error) {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(discoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")

	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return discoveredEndpoints{}, err
	}

	var doc struct {
		UserinfoEndpoint string `json:"userinfo_endpoint"`
	}
	if err := op.Claims(&doc); err != nil {
		return discoveredEndpoints{}, fmt.Errorf("decode discovery document: %w", err)
	}

	endpoint := op.Endpoint()
	return discoveredEndpoints{
		authorizeURL: endpoint.AuthURL,
		tokenURL:     endpoint.TokenURL,
		userdataURL:  doc.UserinfoEndpoint,
	}, nil
}

// Begin builds the provider authorization URL with a fresh opaque state.
// The host's callback layer owns state verification.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, error) {
	if in.RedirectURL == "" {
		return "", "", errors.New("redirect URL is required")
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", "", fmt.Errorf("generate state: %w", err)
	}

	authURL := p.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("redirect_uri", in.RedirectURL),
		oauth2.SetAuthURLParam("response_type", "code"),
	)

	return authURL, state, nil
}

// Exchange trades the authorization code for a token response.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.TokenResponse, error) {
	var zero domainauth.TokenResponse

	if in.Code == "" {
		return zero, errors.New("authorization code is required")
	}
	if in.RedirectURL == "" {
		return zero, errors.New("redirect URL is required")
	}

	form := url.Values{
		"redirect_uri": {in.RedirectURL},
		"code":         {in.Code},
		"grant_type":   {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return zero, &domainauth.UpstreamError{Op: "token", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	p.setCommonHeaders(req)
	req.Header.Set("Authorization", "Basic "+basicAuth(p.clientID, p.clientSecret))

	body, status, err := p.do(req)
	if err != nil {
		return zero, &domainauth.UpstreamError{Op: "token", StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		return zero, &domainauth.UpstreamError{Op: "token", StatusCode: status, Body: snippet(body)}
	}

	var token domainauth.TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return zero, &domainauth.UpstreamError{Op: "token", StatusCode: status, Err: fmt.Errorf("decode token response: %w", err)}
	}
	if token.AccessToken == "" {
		return zero, &domainauth.UpstreamError{Op: "token", StatusCode: status, Err: errors.New("missing access_token in token response")}
	}
	if token.TokenType == "" {
		return zero, &domainauth.UpstreamError{Op: "token", StatusCode: status, Err: errors.New("missing token_type in token response")}
	}

	return token, nil
}

// FetchProfile retrieves the authenticated user's profile. The token type
// from the provider is echoed back verbatim, not hardcoded to Bearer.
func (p *Provider) FetchProfile(ctx context.Context, token domainauth.TokenResponse) (domainauth.Profile, error) {
	var zero domainauth.Profile

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userdataURL, nil)
	if err != nil {
		return zero, &domainauth.UpstreamError{Op: "userinfo", Err: err}
	}
	p.setCommonHeaders(req)
	req.Header.Set("Authorization", token.TokenType+" "+token.AccessToken)

	body, status, err := p.do(req)
	if err != nil {
		return zero, &domainauth.UpstreamError{Op: "userinfo", StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		return zero, &domainauth.UpstreamError{Op: "userinfo", StatusCode: status, Body: snippet(body)}
	}

	var profile domainauth.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return zero, &domainauth.UpstreamError{Op: "userinfo", StatusCode: status, Err: fmt.Errorf("decode userinfo response: %w", err)}
	}
	if profile.Email == "" {
		return zero, &domainauth.UpstreamError{Op: "userinfo", StatusCode: status, Err: errors.New("missing email in userinfo response")}
	}

	return profile, nil
}

func (p *Provider) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", p.userAgent)
}

func (p *Provider) do(req *http.Request) ([]byte, int, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// basicAuth encodes "client_id:client_secret" per RFC 2617: UTF-8 bytes,
// standard base64 alphabet with padding.
func basicAuth(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}

func snippet(body []byte) string {
	if len(body) > maxErrorBodySnippet {
		return string(body[:maxErrorBodySnippet])
	}
	return string(body)
}

// generateRandomString generates a cryptographically secure URL-safe random
// string of exact length.
func generateRandomString(length int) (string, error) {
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	return s[:length], nil
}
