package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/zeroregs/internal/config"
)

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep the user's config file out of the tests.
	t.Setenv(config.EnvPath, filepath.Join(t.TempDir(), "config.json"))

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Read in background to prevent pipe buffer from blocking
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	verbose = false
	configPath = ""
	adapterType = config.AdapterSim
	probeName = ""
	adapterSerial = ""
	adapterSpeed = 1_000_000
	snapshotPath = ""
	profilePath = ""
	variantName = ""
	syncTimeout = 0
	onlyList = ""
	showDisabled = false
	jsonOutput = false
	captureOut = ""
	captureOnly = ""
	interfacesJSON = false
	unchange := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unchange)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(unchange)
	}

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	// Restore stdout and wait for reader
	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), err
}

func TestDumpE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantAbsent  []string
	}{
		{
			name: "simulator report",
			args: []string{"dump"},
			wantContain: []string{
				"--------------------------- DSU",
				"--------------------------- GCLK",
				"GCLK_MAIN:  GEN00 (always)",
				"GEN00:  DFLL48M IDC",
				"--------------------------- SERCOM5 USART",
			},
			wantAbsent: []string{"--disabled--"},
		},
		{
			name:        "only one peripheral",
			args:        []string{"dump", "--only", "sercom5"},
			wantContain: []string{"--------------------------- SERCOM5 USART"},
			wantAbsent:  []string{"GCLK", "DSU"},
		},
		{
			name:        "show disabled",
			args:        []string{"dump", "--only", "EIC", "--show-disabled"},
			wantContain: []string{"--------------------------- EIC", "--disabled--"},
		},
		{
			name:        "json",
			args:        []string{"dump", "--only", "DSU", "--json"},
			wantContain: []string{`"section": "DSU"`, `"lines": [`},
		},
		{
			name: "optional peripheral on request",
			args: []string{"dump", "--only", "SBMATRIX"},
			wantContain: []string{
				"--------------------------- SBMATRIX",
				"PRS 0x0:  0 0",
				"PRS 0xF:  0 0",
				"SFR 0x0:  0",
				"SFR 0xF:  0",
			},
			wantAbsent: []string{"GCLK", "DSU"},
		},
		{
			name:        "optional peripheral with others",
			args:        []string{"dump", "--only", "WDT,SBMATRIX", "--show-disabled"},
			wantContain: []string{"--------------------------- SBMATRIX", "--------------------------- WDT"},
		},
		{
			name:       "optional peripheral off by default",
			args:       []string{"dump"},
			wantAbsent: []string{"SBMATRIX", "PRS 0x0"},
		},
		{
			name:       "variant without SERCOM5",
			args:       []string{"dump", "--only", "SERCOM5", "--variant", "ATSAMD21E18A"},
			wantAbsent: []string{"SERCOM5"},
		},
		{
			name:    "unknown peripheral",
			args:    []string{"dump", "--only", "UART9"},
			wantErr: true,
		},
		{
			name:    "unknown adapter",
			args:    []string{"dump", "--adapter", "buspirate"},
			wantErr: true,
		},
		{
			name:    "snapshot adapter without file",
			args:    []string{"dump", "--adapter", "snapshot"},
			wantErr: true,
		},
		{
			name:    "bad variant",
			args:    []string{"dump", "--variant", "ATSAMD20G18"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(output, absent) {
					t.Errorf("Output contains unexpected string: %q\nGot:\n%s", absent, output)
				}
			}
		})
	}
}

// TestCaptureE2E captures the simulator to a file and checks the snapshot
// reports exactly like the live source.
func TestCaptureE2E(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "zero.snap")

	out, err := execute(t, "capture", "--out", snap)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.Contains(out, "Captured") || !strings.Contains(out, snap) {
		t.Errorf("unexpected capture output: %q", out)
	}

	live, err := execute(t, "dump", "--show-disabled")
	if err != nil {
		t.Fatalf("dump sim: %v", err)
	}
	offline, err := execute(t, "dump", "--show-disabled", "--adapter", "snapshot", "--snapshot", snap)
	if err != nil {
		t.Fatalf("dump snapshot: %v", err)
	}
	if live != offline {
		t.Errorf("snapshot report differs from live report:\n%s\nwant:\n%s", offline, live)
	}

	if _, err := execute(t, "capture"); err == nil {
		t.Error("capture without --out succeeded")
	}
}

func TestCaptureStdout(t *testing.T) {
	out, err := execute(t, "capture", "--only", "GCLK", "--out", "-")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	for _, want := range []string{"# zeroregs register snapshot", `target "ATSAMD21G18A"`, "0x40000c00:", "bank 0x40000c02["} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q\nGot:\n%s", want, out)
		}
	}
}

func TestIdentifyE2E(t *testing.T) {
	out, err := execute(t, "identify")
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	for _, want := range []string{"DID:      0x10010305", "Cortex-M0+", "Device:   ATSAMD21G18A", "256KB flash, 32KB SRAM"} {
		if !strings.Contains(out, want) {
			t.Errorf("identify output missing %q\nGot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Probe:") {
		t.Error("simulator should not report a probe")
	}
}

func TestPinsE2E(t *testing.T) {
	out, err := execute(t, "pins")
	if err != nil {
		t.Fatalf("pins: %v", err)
	}
	for _, want := range []string{"Board arduino_zero (ATSAMD21G18A)", "PA11  D0/RX", "SERCOM0:3"} {
		if !strings.Contains(out, want) {
			t.Errorf("pins output missing %q\nGot:\n%s", want, out)
		}
	}

	if _, err := execute(t, "pins", "--profile", "/nonexistent/board.prof"); err == nil {
		t.Error("missing profile accepted")
	}
}

func TestConfigFileE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeroregs.json")
	cfg := config.DefaultConfig()
	cfg.ShowDisabled = true
	if err := config.SaveFile(path, cfg); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "dump", "--config", path, "--only", "EIC")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "--disabled--") {
		t.Errorf("show_disabled from config not applied:\n%s", out)
	}
}

func TestSyncTimeoutFlag(t *testing.T) {
	if _, err := execute(t, "dump", "--only", "GCLK", "--sync-timeout", "250ms"); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if got := settings.SyncPolicy().Timeout; got != 250*time.Millisecond {
		t.Errorf("sync timeout = %v, want 250ms", got)
	}
}

func TestInterfacesE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping USB enumeration in short mode")
	}

	out, err := execute(t, "interfaces")
	if err != nil {
		t.Skipf("USB enumeration unavailable: %v", err)
	}
	if !strings.Contains(out, "Simulator") {
		t.Errorf("simulator entry missing:\n%s", out)
	}
}
