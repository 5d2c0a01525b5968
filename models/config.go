// Package models defines the shared data structures for the directory:
// catalog records, drafts, submissions, and runtime configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration loaded from config.yaml.
// CLI flags override file values where both are present.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`

	// SiteHost is the public host of the directory, used by backlink
	// verification to recognize links pointing back at us.
	SiteHost string `yaml:"site_host"`

	// SponsorPriceCents is the base sponsor-plan price before coupons.
	SponsorPriceCents int64 `yaml:"sponsor_price_cents"`

	// Coupons maps coupon codes to discount fractions (0.25 = 25% off).
	// Static allow-list, validated locally only.
	Coupons map[string]float64 `yaml:"coupons"`

	JWTSecret string   `yaml:"jwt_secret"`
	FetchTTL  Duration `yaml:"fetch_ttl"`
}

// Duration wraps time.Duration so YAML can carry values like "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// LoadConfig reads a YAML config file and applies defaults for
// anything the file leaves unset. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:        ":8080",
		SiteHost:          "altdir.dev",
		SponsorPriceCents: 9900,
		Coupons: map[string]float64{
			"LAUNCH25": 0.25,
			"OSS10":    0.10,
		},
		FetchTTL: Duration(24 * time.Hour),
	}
}
