package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-builder/internal/config"
)

// cliConfig is the content of ~/.tripctl.yaml.
type cliConfig struct {
	// Device is this machine's draft scope. It is generated on first run so
	// every later invocation sees the same drafts.
	Device     string `yaml:"device"`
	APIBaseURL string `yaml:"api_base_url"`
	DraftPath  string `yaml:"draft_path"`
	Timeout    string `yaml:"timeout,omitempty"`
	Theme      string `yaml:"default_theme,omitempty"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tripctl.yaml"
	}
	return filepath.Join(home, ".tripctl.yaml")
}

// loadCLIConfig reads path, filling defaults. A missing file is created with
// a fresh device id; an existing file without one gets one written back.
func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cliConfig{}, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cliConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	dirty := false
	if cfg.Device == "" {
		cfg.Device = uuid.NewString()
		dirty = true
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = config.DefaultAPIBaseURL
		dirty = true
	}
	if cfg.DraftPath == "" {
		cfg.DraftPath = filepath.Join(filepath.Dir(path), ".tripctl", "drafts.db")
		dirty = true
	}
	if cfg.Theme == "" {
		cfg.Theme = "light"
	}

	if _, err := cfg.scope(); err != nil {
		return cliConfig{}, err
	}
	if _, err := cfg.timeout(); err != nil {
		return cliConfig{}, err
	}

	if dirty {
		if err := saveCLIConfig(path, cfg); err != nil {
			return cliConfig{}, err
		}
	}
	return cfg, nil
}

func saveCLIConfig(path string, cfg cliConfig) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c cliConfig) scope() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Device)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("config: device %q is not a valid UUID", c.Device)
	}
	return id, nil
}

func (c cliConfig) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: timeout %q must be a positive duration", c.Timeout)
	}
	return d, nil
}
