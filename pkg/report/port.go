package report

import (
	"context"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintPORT prints the configuration of each board pin: the routed
// peripheral function when the multiplexer is enabled, otherwise the
// direction and input options.
func PrintPORT(ctx context.Context, opts *Options, blk regs.Block, pins []samd21.Pin) error {
	p := newPrinter(ctx, opts, blk)
	p.header("PORT")

	for _, pin := range pins {
		g := blk.At(uint32(pin.Group) * samd21.PORTGroupSize)

		bit := uint32(1) << uint(pin.Index)
		dir := p.readAbs(g.Addr(samd21.PORTDir), 4)&bit != 0
		out := p.readAbs(g.Addr(samd21.PORTOut), 4)&bit != 0
		cfg := p.readAbs(g.Addr(samd21.PORTPinCfg+uint32(pin.Index)), 1)
		inen := samd21.PORTPinCfgInEn.IsSet(cfg)
		pullen := samd21.PORTPinCfgPullEn.IsSet(cfg)
		pmuxen := samd21.PORTPinCfgPMuxEn.IsSet(cfg)
		var sel uint32
		if pmuxen {
			pmux := p.readAbs(g.Addr(samd21.PORTPMux+uint32(pin.Index/2)), 1)
			sel = pmux >> (4 * uint(pin.Index%2)) & 0xF
		}

		label := pin.Port() + " " + pin.Name
		if !dir && !inen && !pullen && !pmuxen {
			p.disabledLine(label)
			continue
		}

		l := newLine(label)
		if pmuxen {
			l.kv("pmux", pin.Function(sel))
		} else {
			dirName := "IN"
			if dir {
				dirName = "OUT"
			}
			l.kv("dir", dirName).flag(inen, "INEN")
			if !dir && pullen {
				if out {
					l.add("PULLUP")
				} else {
					l.add("PULLDOWN")
				}
			}
			l.bit(cfg, samd21.PORTPinCfgDrvStr, "DRVSTR")
		}
		p.emit(l)
	}
	return p.err
}
