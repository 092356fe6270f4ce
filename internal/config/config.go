// Package config stores the persistent zeroregs settings. Command-line
// flags override the values loaded here.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// Register backends
const (
	AdapterSim      = "sim"
	AdapterSnapshot = "snapshot"
	AdapterCMSISDAP = "cmsisdap"
)

// Adapters lists the accepted adapter names.
var Adapters = []string{AdapterSim, AdapterSnapshot, AdapterCMSISDAP}

const (
	MinSpeedHz = 1000
	MaxSpeedHz = 10_000_000

	maxSyncTimeoutMS = 60_000
)

// EnvPath overrides the config file location.
const EnvPath = "ZEROREGS_CONFIG"

// Config stores persistent settings
type Config struct {
	Adapter       string `json:"adapter"`
	Probe         string `json:"probe,omitempty"` // "vid:pid" or known probe name
	Serial        string `json:"serial"`
	SpeedHz       int    `json:"speed_hz"`
	ShowDisabled  bool   `json:"show_disabled"`
	SyncTimeoutMS int    `json:"sync_timeout_ms"`
	Profile       string `json:"profile"`
	Variant       string `json:"variant"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Adapter:       AdapterSim,
		SpeedHz:       1_000_000,
		SyncTimeoutMS: int(regs.DefaultSyncPolicy().Timeout / time.Millisecond),
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	var errs []error

	known := false
	for _, a := range Adapters {
		if c.Adapter == a {
			known = true
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("adapter %q is not one of %v", c.Adapter, Adapters))
	}
	if c.SpeedHz < MinSpeedHz || c.SpeedHz > MaxSpeedHz {
		errs = append(errs, fmt.Errorf("speed_hz %d outside %d..%d", c.SpeedHz, MinSpeedHz, MaxSpeedHz))
	}
	if c.SyncTimeoutMS < 0 || c.SyncTimeoutMS > maxSyncTimeoutMS {
		errs = append(errs, fmt.Errorf("sync_timeout_ms %d outside 0..%d", c.SyncTimeoutMS, maxSyncTimeoutMS))
	}
	if c.Variant != "" {
		if _, err := samd21.VariantCapabilities(c.Variant); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SyncPolicy returns the sync-wait policy. Zero keeps the default timeout.
func (c *Config) SyncPolicy() regs.SyncPolicy {
	p := regs.DefaultSyncPolicy()
	if c.SyncTimeoutMS > 0 {
		p.Timeout = time.Duration(c.SyncTimeoutMS) * time.Millisecond
	}
	return p
}

// Path returns the path to the config file
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	// Windows: %APPDATA%\ZeroRegs
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "ZeroRegs", "config.json"), nil
	}

	// Linux/macOS: ~/.config/zeroregs
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "zeroregs", "config.json"), nil
}

// Load reads the config file, returning the defaults if it does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file. Fields missing from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config file
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile validates cfg and writes it to path, creating the directory.
func SaveFile(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
