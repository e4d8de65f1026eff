package config

import "strings"

// ObservabilityConfig controls emission of login metrics to an external
// StatsD-compatible sink. Metrics are optional; the authenticator runs with
// a no-op sink when disabled.
type ObservabilityConfig struct {
	MetricsEnabled bool   `env:"OBSERVABILITY_METRICS_ENABLED"        envDefault:"false"`
	StatsdAddress  string `env:"OBSERVABILITY_METRICS_STATSD_ADDRESS" envDefault:"127.0.0.1:8125"`
	StatsdPrefix   string `env:"OBSERVABILITY_METRICS_STATSD_PREFIX"  envDefault:"hubauth"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *ObservabilityConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	if c.StatsdAddress == "" {
		c.MetricsEnabled = false
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *ObservabilityConfig) IsEnabled() bool {
	return c.MetricsEnabled && c.StatsdAddress != ""
}
