// Package config loads daemon tunables from an optional JSON file plus
// environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultStartupTimeout  = 30 * time.Second
	defaultHealthInterval  = 30 * time.Second
	defaultProbeTimeout    = 5 * time.Second
	defaultStopGracePeriod = 5 * time.Second
	defaultMaxRetries      = 3
	defaultPortAttempts    = 20

	envStartupTimeout  = "DEVSERVE_STARTUP_TIMEOUT"
	envHealthInterval  = "DEVSERVE_HEALTH_INTERVAL"
	envProbeTimeout    = "DEVSERVE_PROBE_TIMEOUT"
	envStopGracePeriod = "DEVSERVE_STOP_GRACE_PERIOD"
	envMaxRetries      = "DEVSERVE_MAX_RETRIES"
)

// PortPlaceholder is substituted with the allocated port in server
// command argv entries.
const PortPlaceholder = "{port}"

// ServerConfig describes how to launch one server type. The readiness
// marker is the tool-version-specific banner substring; it is plain
// configuration, not protocol.
type ServerConfig struct {
	Command     []string
	ReadyMarker string
	BasePort    int
	Env         []string
}

// ExpandCommand returns the argv with the port placeholder applied.
func (s ServerConfig) ExpandCommand(port int) []string {
	out := make([]string, len(s.Command))
	for i, arg := range s.Command {
		out[i] = strings.ReplaceAll(arg, PortPlaceholder, strconv.Itoa(port))
	}
	return out
}

// Config aggregates tunable timeouts, budgets and per-server launch
// settings for the daemon.
type Config struct {
	Primary ServerConfig
	Catalog ServerConfig

	StartupTimeout  time.Duration
	HealthInterval  time.Duration
	ProbeTimeout    time.Duration
	StopGracePeriod time.Duration
	MaxRetries      int
	PortAttempts    int
}

// Default returns the built-in configuration: a vite-style primary
// server and a storybook-style catalog server.
func Default() Config {
	return Config{
		Primary: ServerConfig{
			Command:     []string{"npm", "run", "dev", "--", "--port", PortPlaceholder, "--strictPort"},
			ReadyMarker: "Local:",
			BasePort:    5173,
		},
		Catalog: ServerConfig{
			Command:     []string{"npm", "run", "storybook", "--", "--port", PortPlaceholder, "--no-open"},
			ReadyMarker: "Storybook",
			BasePort:    6006,
		},
		StartupTimeout:  defaultStartupTimeout,
		HealthInterval:  defaultHealthInterval,
		ProbeTimeout:    defaultProbeTimeout,
		StopGracePeriod: defaultStopGracePeriod,
		MaxRetries:      defaultMaxRetries,
		PortAttempts:    defaultPortAttempts,
	}
}

// Load builds a Config from an optional JSON file path plus environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := mergeFromFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideDuration(envStartupTimeout, &cfg.StartupTimeout)
	overrideDuration(envHealthInterval, &cfg.HealthInterval)
	overrideDuration(envProbeTimeout, &cfg.ProbeTimeout)
	overrideDuration(envStopGracePeriod, &cfg.StopGracePeriod)

	if v := os.Getenv(envMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		} else {
			log.Printf("invalid %s value %q", envMaxRetries, v)
		}
	}
}

func overrideDuration(env string, dst *time.Duration) {
	v := os.Getenv(env)
	if v == "" {
		return
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		*dst = dur
	} else {
		log.Printf("invalid %s value %q", env, v)
	}
}

// Server returns the launch settings for the given server type name
// ("primary" or "catalog").
func (c Config) Server(name string) (ServerConfig, error) {
	switch name {
	case "primary":
		return c.Primary, nil
	case "catalog":
		return c.Catalog, nil
	default:
		return ServerConfig{}, fmt.Errorf("unknown server type %q", name)
	}
}

type fileServerConfig struct {
	Command     []string `json:"command"`
	ReadyMarker string   `json:"ready_marker"`
	BasePort    int      `json:"base_port"`
	Env         []string `json:"env"`
}

type fileConfig struct {
	Primary         *fileServerConfig `json:"primary"`
	Catalog         *fileServerConfig `json:"catalog"`
	StartupTimeout  string            `json:"startup_timeout"`
	HealthInterval  string            `json:"health_interval"`
	ProbeTimeout    string            `json:"probe_timeout"`
	StopGracePeriod string            `json:"stop_grace_period"`
	MaxRetries      *int              `json:"max_retries"`
	PortAttempts    *int              `json:"port_attempts"`
}

func mergeFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	mergeServer(&cfg.Primary, raw.Primary)
	mergeServer(&cfg.Catalog, raw.Catalog)

	if err := mergeDuration(&cfg.StartupTimeout, raw.StartupTimeout, "startup_timeout"); err != nil {
		return err
	}
	if err := mergeDuration(&cfg.HealthInterval, raw.HealthInterval, "health_interval"); err != nil {
		return err
	}
	if err := mergeDuration(&cfg.ProbeTimeout, raw.ProbeTimeout, "probe_timeout"); err != nil {
		return err
	}
	if err := mergeDuration(&cfg.StopGracePeriod, raw.StopGracePeriod, "stop_grace_period"); err != nil {
		return err
	}

	if raw.MaxRetries != nil {
		if *raw.MaxRetries < 0 {
			return errors.New("max_retries must be >= 0")
		}
		cfg.MaxRetries = *raw.MaxRetries
	}
	if raw.PortAttempts != nil {
		if *raw.PortAttempts <= 0 {
			return errors.New("port_attempts must be > 0")
		}
		cfg.PortAttempts = *raw.PortAttempts
	}
	return nil
}

func mergeServer(dst *ServerConfig, src *fileServerConfig) {
	if src == nil {
		return
	}
	if len(src.Command) > 0 {
		dst.Command = src.Command
	}
	if src.ReadyMarker != "" {
		dst.ReadyMarker = src.ReadyMarker
	}
	if src.BasePort > 0 {
		dst.BasePort = src.BasePort
	}
	if len(src.Env) > 0 {
		dst.Env = src.Env
	}
}

func mergeDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", field, err)
	}
	if dur <= 0 {
		return fmt.Errorf("%s must be > 0", field)
	}
	*dst = dur
	return nil
}
