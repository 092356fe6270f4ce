package snapshot

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// Capture reads every region and every slot of every bank from bus.
// Regions are read a word at a time; banks go through their selectors.
func Capture(ctx context.Context, bus regs.Bus, target string, regions []samd21.Region, banks []*regs.Bank, policy regs.SyncPolicy) (*Snapshot, error) {
	s := New(target)
	for _, r := range regions {
		for i := 0; i < r.Words; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			addr := r.Addr + 4*uint32(i)
			v, err := bus.Read32(addr)
			if err != nil {
				return nil, fmt.Errorf("capture %s: read 0x%08X: %w", r.Name, addr, err)
			}
			s.Words[addr] = v
		}
		glog.V(1).Infof("captured %s: %d words at 0x%08X", r.Name, r.Words, r.Addr)
	}

	for _, b := range banks {
		all, err := b.ReadAll(ctx, bus, policy)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", b.Name, err)
		}
		for id, vals := range all {
			slot := Slot{Select: b.Select, Index: uint8(id), Data: make(map[uint32]uint32, len(vals))}
			for i, r := range b.Data {
				slot.Data[r.Addr] = vals[i]
			}
			s.Slots = append(s.Slots, slot)
		}
		glog.V(1).Infof("captured %s: %d slots", b.Name, len(all))
	}
	return s, nil
}

// CaptureTarget captures everything the report reads for the peripherals
// in caps.
func CaptureTarget(ctx context.Context, bus regs.Bus, target string, caps samd21.Set, policy regs.SyncPolicy) (*Snapshot, error) {
	return Capture(ctx, bus, target, samd21.CaptureRegions(caps), samd21.CaptureBanks(caps), policy)
}
