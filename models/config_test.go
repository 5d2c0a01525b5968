package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("default listen addr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.SponsorPriceCents != 9900 {
		t.Errorf("default price = %d, want 9900", cfg.SponsorPriceCents)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("listen_addr: \":9090\"\nsite_host: example.org\nfetch_ttl: 30m\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("listen addr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.SiteHost != "example.org" {
		t.Errorf("site host = %q, want example.org", cfg.SiteHost)
	}
	if cfg.FetchTTL.Std() != 30*time.Minute {
		t.Errorf("fetch ttl = %v, want 30m", cfg.FetchTTL.Std())
	}
	// File left coupons unset, defaults survive the merge.
	if len(cfg.Coupons) == 0 {
		t.Error("coupons default was lost")
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fetch_ttl: soon\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted an unparsable duration")
	}
}
