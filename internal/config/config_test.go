package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Primary.BasePort != 5173 || cfg.Catalog.BasePort != 6006 {
		t.Fatalf("unexpected base ports: %d, %d", cfg.Primary.BasePort, cfg.Catalog.BasePort)
	}
	if cfg.StartupTimeout != 30*time.Second || cfg.MaxRetries != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"primary": {"ready_marker": "listening on", "base_port": 3000},
		"startup_timeout": "10s",
		"max_retries": 5
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Primary.ReadyMarker != "listening on" || cfg.Primary.BasePort != 3000 {
		t.Fatalf("primary overrides not applied: %+v", cfg.Primary)
	}
	if cfg.StartupTimeout != 10*time.Second || cfg.MaxRetries != 5 {
		t.Fatalf("scalar overrides not applied: %+v", cfg)
	}
	// Untouched sections keep defaults.
	if cfg.Catalog.BasePort != 6006 || cfg.StopGracePeriod != 5*time.Second {
		t.Fatalf("defaults lost during merge: %+v", cfg)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"startup_timeout": "-3s"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-positive duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envStartupTimeout, "12s")
	t.Setenv(envMaxRetries, "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartupTimeout != 12*time.Second {
		t.Fatalf("env duration override not applied: %s", cfg.StartupTimeout)
	}
	if cfg.MaxRetries != 7 {
		t.Fatalf("env int override not applied: %d", cfg.MaxRetries)
	}
}

func TestEnvOverrideIgnoresInvalid(t *testing.T) {
	t.Setenv(envProbeTimeout, "not-a-duration")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Fatalf("invalid env value should keep default, got %s", cfg.ProbeTimeout)
	}
}

func TestExpandCommand(t *testing.T) {
	sc := ServerConfig{Command: []string{"npm", "run", "dev", "--", "--port", PortPlaceholder}}
	got := sc.ExpandCommand(5173)
	if got[len(got)-1] != "5173" {
		t.Fatalf("placeholder not expanded: %v", got)
	}
	// The original argv must stay untouched.
	if sc.Command[len(sc.Command)-1] != PortPlaceholder {
		t.Fatalf("ExpandCommand mutated the template: %v", sc.Command)
	}
}
