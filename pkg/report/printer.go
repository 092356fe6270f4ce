package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

// Options controls report output. It is passed by pointer through every
// printer and never modified by them.
type Options struct {
	Out          io.Writer
	ShowDisabled bool
	Sync         regs.SyncPolicy
}

const headerRule = "--------------------------- "

// printer carries the state of one section. The first bus or write error
// sticks: later reads return zero and nothing more is written.
type printer struct {
	ctx  context.Context
	opts *Options
	blk  regs.Block
	err  error
}

func newPrinter(ctx context.Context, opts *Options, blk regs.Block) *printer {
	return &printer{ctx: ctx, opts: opts, blk: blk}
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *printer) readAbs(addr uint32, width int) uint32 {
	if p.err != nil {
		return 0
	}
	v, err := regs.Read(p.blk.Bus, addr, width)
	if err != nil {
		p.fail(fmt.Errorf("read 0x%08X: %w", addr, err))
		return 0
	}
	return v
}

func (p *printer) r8(off uint32) uint32  { return p.readAbs(p.blk.Addr(off), 1) }
func (p *printer) r16(off uint32) uint32 { return p.readAbs(p.blk.Addr(off), 2) }
func (p *printer) r32(off uint32) uint32 { return p.readAbs(p.blk.Addr(off), 4) }

// wait blocks until the given sync flags clear.
func (p *printer) wait(flags ...regs.Busy) bool {
	if p.err != nil {
		return false
	}
	if err := p.opts.Sync.Wait(p.ctx, p.blk.Bus, flags...); err != nil {
		p.fail(err)
		return false
	}
	return true
}

// bank reads one banked slot. On error the values are zero.
func (p *printer) bank(b *regs.Bank, id int) []uint32 {
	if p.err == nil {
		vals, err := b.Read(p.ctx, p.blk.Bus, p.opts.Sync, uint8(id))
		if err == nil {
			return vals
		}
		p.fail(err)
	}
	return make([]uint32, len(b.Data))
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.opts.Out, s+"\n"); err != nil {
		p.fail(err)
	}
}

func (p *printer) header(name string) {
	p.println(headerRule + name)
}

// disabled reports a disabled peripheral: nothing, or the header and a
// marker line when disabled items are shown.
func (p *printer) disabled(name string) {
	if p.opts.ShowDisabled {
		p.header(name)
		p.println("--disabled--")
	}
}

// disabledLine reports a disabled sub-block such as "XOSC:  --disabled--".
func (p *printer) disabledLine(label string) {
	if p.opts.ShowDisabled {
		p.println(label + ":  --disabled--")
	}
}

func (p *printer) emit(l *line) {
	p.println(l.String())
}

// line accumulates "LABEL: " followed by space separated tokens.
type line struct {
	b strings.Builder
}

func newLine(label string) *line {
	l := &line{}
	l.b.WriteString(label)
	l.b.WriteString(": ")
	return l
}

func (l *line) add(tok string) *line {
	l.b.WriteByte(' ')
	l.b.WriteString(tok)
	return l
}

func (l *line) addf(format string, args ...any) *line {
	return l.add(fmt.Sprintf(format, args...))
}

func (l *line) kv(key string, val any) *line {
	return l.add(fmt.Sprintf("%s=%v", key, val))
}

func (l *line) flag(set bool, name string) *line {
	if set {
		l.add(name)
	}
	return l
}

// bit adds name when the bit field f is set in v.
func (l *line) bit(v uint32, f regs.Field, name string) *line {
	return l.flag(f.IsSet(v), name)
}

func (l *line) flags(v uint32, fs []regs.Flag) *line {
	for _, name := range regs.SetFlags(v, fs) {
		l.add(name)
	}
	return l
}

func (l *line) String() string {
	return l.b.String()
}

func hex(v uint32) string {
	return fmt.Sprintf("0x%X", v)
}

// scale renders 2^shift, falling back to the exponent form once the value
// no longer fits in 64 bits.
func scale(shift uint32) string {
	if shift >= 64 {
		return fmt.Sprintf("2^%d", shift)
	}
	return fmt.Sprintf("%d", uint64(1)<<shift)
}

func pad2(v uint32) string {
	return fmt.Sprintf("%02d", v)
}

// binary renders v like the datasheet bitmaps, without leading zeros.
func binary(v uint32) string {
	return fmt.Sprintf("%b", v)
}
