package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brazil-data-cube/hubauth/config"
	"github.com/brazil-data-cube/hubauth/internal/adapters/bdc"
	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	"github.com/brazil-data-cube/hubauth/internal/observability/statsd"
	"github.com/brazil-data-cube/hubauth/internal/service"
)

// AuthenticatorConfig carries everything needed to wire an Authenticator.
type AuthenticatorConfig struct {
	Config     config.AppConfig
	Logger     *slog.Logger
	HTTPClient *http.Client // Optional, for tests and custom transports
}

// BuildAuthenticator wires config → provider → policy → orchestrator.
// The config is sanitized here so callers constructing it in code get the
// same guardrails as env loading.
func BuildAuthenticator(cfg AuthenticatorConfig) (*service.Authenticator, error) {
	cfg.Config.Sanitize()
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}

	auth := cfg.Config.Auth

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: auth.HTTPTimeout}
	}

	provider, err := bdc.NewProvider(bdc.ProviderConfig{
		ClientID:     auth.ClientID,
		ClientSecret: auth.ClientSecret,
		Scope:        auth.Scope,
		AuthorizeURL: auth.AuthorizeURL,
		TokenURL:     auth.TokenURL,
		UserdataURL:  auth.UserdataURL,
		DiscoveryURL: auth.DiscoveryURL,
		UserAgent:    auth.UserAgent,
		HTTPClient:   httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("build provider: %w", err)
	}

	metrics, err := buildMetrics(cfg.Config.Observability, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("build metrics: %w", err)
	}

	return service.NewAuthenticator(service.AuthenticatorOptions{
		Flow: provider,
		Policy: domainauth.Policy{
			Application:  auth.ApplicationName,
			AllowedRoles: auth.AllowedRoles,
			AdminRoles:   auth.AdminRoles,
		},
		Logger:  cfg.Logger,
		Metrics: metrics,
	})
}

func buildMetrics(cfg config.ObservabilityConfig, logger *slog.Logger) (statsd.Sink, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
