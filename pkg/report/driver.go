package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// Target describes what to dump.
type Target struct {
	// Caps lists the peripherals present. Peripherals outside the set are
	// skipped without touching the bus.
	Caps samd21.Set
	// Pins is the pin table for the PORT section. Nil selects the Arduino
	// Zero table.
	Pins []samd21.Pin
}

func (t *Target) pins() []samd21.Pin {
	if t == nil || t.Pins == nil {
		return samd21.ArduinoZeroPins
	}
	return t.Pins
}

// Section is one peripheral printer.
type Section struct {
	Peripheral samd21.Peripheral
	Print      func(ctx context.Context, opts *Options, bus regs.Bus, t *Target) error
}

func block(base uint32, fn func(context.Context, *Options, regs.Block) error) func(context.Context, *Options, regs.Bus, *Target) error {
	return func(ctx context.Context, opts *Options, bus regs.Bus, _ *Target) error {
		return fn(ctx, opts, regs.Block{Bus: bus, Base: base})
	}
}

func indexed(base uint32, idx int, fn func(context.Context, *Options, regs.Block, int) error) func(context.Context, *Options, regs.Bus, *Target) error {
	return func(ctx context.Context, opts *Options, bus regs.Bus, _ *Target) error {
		return fn(ctx, opts, regs.Block{Bus: bus, Base: base}, idx)
	}
}

// Sections returns every printer in report order.
func Sections() []Section {
	s := []Section{
		{samd21.DSU, block(samd21.DSUBase, PrintDSU)},
		{samd21.AC, block(samd21.ACBase, PrintAC)},
		{samd21.ADC, block(samd21.ADCBase, PrintADC)},
		{samd21.DAC, block(samd21.DACBase, PrintDAC)},
		{samd21.DMAC, block(samd21.DMACBase, PrintDMAC)},
		{samd21.EIC, block(samd21.EICBase, PrintEIC)},
		{samd21.EVSYS, block(samd21.EVSYSBase, PrintEVSYS)},
		{samd21.GCLK, block(samd21.GCLKBase, PrintGCLK)},
		{samd21.I2S, block(samd21.I2SBase, PrintI2S)},
		{samd21.NVMCTRL, block(samd21.NVMCTRLBase, PrintNVMCTRL)},
		{samd21.PAC, func(ctx context.Context, opts *Options, bus regs.Bus, _ *Target) error {
			return PrintPAC(ctx, opts, bus)
		}},
		{samd21.PM, block(samd21.PMBase, PrintPM)},
		{samd21.PORT, func(ctx context.Context, opts *Options, bus regs.Bus, t *Target) error {
			return PrintPORT(ctx, opts, regs.Block{Bus: bus, Base: samd21.PORTBase}, t.pins())
		}},
		{samd21.RTC, block(samd21.RTCBase, PrintRTC)},
		{samd21.SBMATRIX, block(samd21.SBMATRIXBase, PrintSBMATRIX)},
	}
	for i, p := range []samd21.Peripheral{samd21.SERCOM0, samd21.SERCOM1, samd21.SERCOM2, samd21.SERCOM3, samd21.SERCOM4, samd21.SERCOM5} {
		s = append(s, Section{p, indexed(samd21.SERCOMBase(i), i, PrintSERCOM)})
	}
	s = append(s, Section{samd21.SYSCTRL, block(samd21.SYSCTRLBase, PrintSYSCTRL)})
	for i, p := range []samd21.Peripheral{samd21.TCC0, samd21.TCC1, samd21.TCC2} {
		s = append(s, Section{p, indexed(samd21.TCCBase(i), i, PrintTCC)})
	}
	for i, p := range []samd21.Peripheral{samd21.TC3, samd21.TC4, samd21.TC5, samd21.TC6, samd21.TC7} {
		s = append(s, Section{p, indexed(samd21.TCBase(i+3), i+3, PrintTC)})
	}
	return append(s,
		Section{samd21.USB, block(samd21.USBBase, PrintUSB)},
		Section{samd21.WDT, block(samd21.WDTBase, PrintWDT)},
	)
}

func (t *Target) selected() []Section {
	var out []Section
	for _, s := range Sections() {
		if t != nil && t.Caps.Has(s.Peripheral) {
			out = append(out, s)
		}
	}
	return out
}

// PrintAll prints every section present in t.Caps to opts.Out. A failing
// section is logged and the dump continues with the next one; the returned
// error joins every section failure. Cancelling ctx stops the dump.
func PrintAll(ctx context.Context, opts *Options, bus regs.Bus, t *Target) error {
	var errs []error
	for _, s := range t.selected() {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := s.Print(ctx, opts, bus, t); err != nil {
			glog.Warningf("%s: %v", s.Peripheral, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Peripheral, err))
		}
	}
	return errors.Join(errs...)
}

// SectionReport is the machine-readable form of one section.
type SectionReport struct {
	Section string   `json:"section"`
	Lines   []string `json:"lines"`
	Error   string   `json:"error,omitempty"`
}

// Collect runs every section into memory. Sections that print nothing and
// did not fail are left out.
func Collect(ctx context.Context, opts *Options, bus regs.Bus, t *Target) ([]SectionReport, error) {
	var (
		out  []SectionReport
		errs []error
	)
	for _, s := range t.selected() {
		if err := ctx.Err(); err != nil {
			return out, errors.Join(append(errs, err)...)
		}
		var buf bytes.Buffer
		o := *opts
		o.Out = &buf
		err := s.Print(ctx, &o, bus, t)

		rep := SectionReport{Section: string(s.Peripheral)}
		if text := strings.TrimRight(buf.String(), "\n"); text != "" {
			rep.Lines = strings.Split(text, "\n")
		}
		if err != nil {
			glog.Warningf("%s: %v", s.Peripheral, err)
			rep.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", s.Peripheral, err))
		}
		if rep.Lines == nil && err == nil {
			continue
		}
		out = append(out, rep)
	}
	return out, errors.Join(errs...)
}

// WriteJSON writes the collected sections as an indented JSON array.
func WriteJSON(w io.Writer, sections []SectionReport) error {
	if sections == nil {
		sections = []SectionReport{}
	}
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
