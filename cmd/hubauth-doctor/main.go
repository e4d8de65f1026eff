// Command hubauth-doctor validates authenticator configuration without
// touching the host platform: it loads the environment, checks required
// values, wires the provider (including OIDC discovery when configured),
// and prints a sample authorization URL a login would redirect to.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/brazil-data-cube/hubauth/config"
	"github.com/brazil-data-cube/hubauth/internal/adapters/bdc"
	"github.com/brazil-data-cube/hubauth/internal/bootstrap"
	"github.com/brazil-data-cube/hubauth/internal/service"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	redirectURL := flag.String("redirect-url", "http://localhost:8000/hub/oauth_callback", "host callback URL used for the sample authorization URL")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	auth, err := bootstrap.BuildAuthenticator(bootstrap.AuthenticatorConfig{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if err := printConfig(cfg); err != nil {
		return err
	}

	return printSampleAuthURL(ctx, auth, *redirectURL)
}

func printConfig(cfg config.AppConfig) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	rows := [][2]string{
		{"application", cfg.Auth.ApplicationName},
		{"scope", strings.Join(cfg.Auth.Scope, " ")},
		{"allowed roles", orNone(cfg.Auth.AllowedRoles, "(open: everyone)")},
		{"admin roles", orNone(cfg.Auth.AdminRoles, "(nobody)")},
		{"authorize URL", orDefault(cfg.Auth.AuthorizeURL, bdc.DefaultAuthorizeURL)},
		{"token URL", orDefault(cfg.Auth.TokenURL, bdc.DefaultTokenURL)},
		{"userdata URL", orDefault(cfg.Auth.UserdataURL, bdc.DefaultUserdataURL)},
		{"discovery URL", orDefault(cfg.Auth.DiscoveryURL, "(not configured)")},
		{"client ID", cfg.Auth.ClientID},
		{"client secret", "(set, redacted)"},
		{"metrics", fmt.Sprintf("enabled=%t address=%s", cfg.Observability.IsEnabled(), cfg.Observability.StatsdAddress)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return w.Flush()
}

func printSampleAuthURL(ctx context.Context, auth *service.Authenticator, redirectURL string) error {
	result, err := auth.BeginLogin(ctx, redirectURL)
	if err != nil {
		return fmt.Errorf("build authorization URL: %w", err)
	}

	_, err = fmt.Printf("\nsample authorization URL:\n%s\n", result.AuthURL)
	return err
}

func orNone(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
