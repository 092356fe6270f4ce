package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Adapter != AdapterSim {
		t.Errorf("Adapter = %q, want %q", cfg.Adapter, AdapterSim)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"cmsisdap", func(c *Config) { c.Adapter = AdapterCMSISDAP }, ""},
		{"variant", func(c *Config) { c.Variant = "ATSAMD21E18A" }, ""},
		{"unknown adapter", func(c *Config) { c.Adapter = "buspirate" }, "adapter"},
		{"slow clock", func(c *Config) { c.SpeedHz = 10 }, "speed_hz"},
		{"fast clock", func(c *Config) { c.SpeedHz = 50_000_000 }, "speed_hz"},
		{"negative timeout", func(c *Config) { c.SyncTimeoutMS = -1 }, "sync_timeout_ms"},
		{"bad variant", func(c *Config) { c.Variant = "STM32F303" }, "variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSyncPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SyncTimeoutMS = 250
	if got := cfg.SyncPolicy().Timeout; got != 250*time.Millisecond {
		t.Errorf("Timeout = %v, want 250ms", got)
	}
	cfg.SyncTimeoutMS = 0
	if got := cfg.SyncPolicy().Timeout; got <= 0 {
		t.Errorf("zero timeout should fall back to the default, got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeroregs", "config.json")
	t.Setenv(EnvPath, path)

	want := DefaultConfig()
	want.Adapter = AdapterCMSISDAP
	want.Probe = "03eb:2157"
	want.Serial = "ATML2130021800001234"
	want.SpeedHz = 4_000_000
	want.ShowDisabled = true
	want.Profile = "boards/zero.prof"
	want.Variant = "ATSAMD21G18A"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"show_disabled": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.ShowDisabled || cfg.Adapter != AdapterSim || cfg.SpeedHz != DefaultConfig().SpeedHz {
		t.Errorf("partial load = %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"adapter": `},
		{"bad adapter", `{"adapter": "jlink"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile accepted invalid config")
			}
		})
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedHz = 0
	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveFile(path, cfg); err == nil {
		t.Fatal("SaveFile accepted invalid config")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config was written")
	}
}
