package cmd

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/internal/config"
	"github.com/OpenTraceLab/zeroregs/pkg/idcode/deviceinfo"
	"github.com/OpenTraceLab/zeroregs/pkg/probe"
	"github.com/OpenTraceLab/zeroregs/pkg/profile"
	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/report"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
	"github.com/OpenTraceLab/zeroregs/pkg/snapshot"
)

// backend is an open register source.
type backend struct {
	bus regs.Bus
	// swd is set for the cmsisdap adapter.
	swd *probe.SWD
	// target names the part read from the snapshot or detected on the
	// bus, if known.
	target string
}

func (b *backend) Close() error {
	if b.swd != nil {
		return b.swd.Close()
	}
	return nil
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Adapter {
	case config.AdapterSim:
		glog.V(1).Info("using simulated Arduino Zero")
		mem, err := samd21.ArduinoZeroBooted()
		if err != nil {
			return nil, err
		}
		return &backend{bus: mem}, nil

	case config.AdapterSnapshot:
		if snapshotPath == "" {
			return nil, fmt.Errorf("--adapter snapshot requires --snapshot FILE")
		}
		snap, err := snapshot.ParseFile(snapshotPath)
		if err != nil {
			return nil, err
		}
		mem, err := snap.Bus()
		if err != nil {
			return nil, err
		}
		return &backend{bus: mem, target: snap.Target}, nil

	case config.AdapterCMSISDAP:
		opts := probe.Options{Serial: cfg.Serial, SpeedHz: cfg.SpeedHz}
		if cfg.Probe != "" {
			vid, pid, err := probe.LookupProbe(cfg.Probe)
			if err != nil {
				return nil, err
			}
			opts.VID, opts.PID = vid, pid
		}
		swd, err := probe.Open(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to open probe: %w", err)
		}
		info := swd.Info()
		glog.V(1).Infof("probe %s %s serial %s firmware %s", info.Vendor, info.Product, info.Serial, info.Firmware)
		return &backend{bus: swd, swd: swd}, nil
	}
	return nil, fmt.Errorf("unsupported adapter type: %s", cfg.Adapter)
}

// loadProfile returns the configured board profile or the built-in one.
func loadProfile(cfg *config.Config) (*profile.Profile, error) {
	if cfg.Profile == "" {
		return profile.Default(), nil
	}
	return profile.Load(cfg.Profile)
}

// detectVariant reads the DSU device identifier and returns the part name,
// or "" when the identifier is not a known SAM D21.
func detectVariant(bus regs.Bus) string {
	did, err := bus.Read32(samd21.DSUBase + samd21.DSUDID)
	if err != nil {
		glog.V(1).Infof("variant detection: %v", err)
		return ""
	}
	info := deviceinfo.Lookup(did)
	if !info.Known {
		glog.V(1).Infof("variant detection: unknown DID 0x%08X", did)
		return ""
	}
	glog.V(1).Infof("detected %s (DID 0x%08X)", info.Name, did)
	return info.Name
}

// resolveTarget works out the capability set and pin table: an explicit
// variant beats the profile. With neither, the snapshot's recorded part is
// used, then the part named by the DSU device identifier. only, when
// non-empty, narrows the result; optional peripherals such as SBMATRIX are
// switched on when only names them.
func resolveTarget(cfg *config.Config, b *backend, only string) (*report.Target, error) {
	prof, err := loadProfile(cfg)
	if err != nil {
		return nil, err
	}

	variant := cfg.Variant
	if variant == "" && cfg.Profile == "" && b != nil {
		variant = b.target
		if variant == "" {
			variant = detectVariant(b.bus)
			b.target = variant
		}
	}

	var caps samd21.Set
	if variant != "" {
		caps, err = samd21.VariantCapabilities(variant)
	} else {
		caps, err = prof.Capabilities()
	}
	if err != nil {
		return nil, err
	}

	if only != "" {
		want, err := samd21.ParseSet(only)
		if err != nil {
			return nil, err
		}
		for _, p := range want.List() {
			if samd21.IsOptional(p) {
				caps = caps.Add(p)
				continue
			}
			if !caps.Has(p) {
				glog.Warningf("%s is not present on this target", p)
			}
		}
		caps = caps.Intersect(want)
	}

	return &report.Target{Caps: caps, Pins: prof.Pins}, nil
}

// variantOf names the part for snapshots and listings.
func variantOf(cfg *config.Config, b *backend) string {
	if cfg.Variant == "" && cfg.Profile == "" && b != nil && b.target != "" {
		return b.target
	}
	if cfg.Variant != "" {
		return cfg.Variant
	}
	if prof, err := loadProfile(cfg); err == nil && prof.Variant != "" {
		return prof.Variant
	}
	return samd21.DefaultVariant
}
