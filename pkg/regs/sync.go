package regs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
)

// ErrSyncTimeout is returned when a sync-busy flag (or a banked selector)
// does not settle within the configured bound.
var ErrSyncTimeout = errors.New("regs: synchronization timed out")

// DefaultSyncTimeout bounds every synchronization wait unless overridden.
const DefaultSyncTimeout = 100 * time.Millisecond

// Busy describes a status flag that reads non-zero while a write is
// propagating across clock domains.
type Busy struct {
	Addr  uint32
	Width int
	Mask  uint32
}

// SyncPolicy bounds synchronization waits.
type SyncPolicy struct {
	// Timeout is the total time allowed for one wait. Zero means DefaultSyncTimeout.
	Timeout time.Duration
	// Interval is the pause between polls. Zero polls back to back.
	Interval time.Duration
}

// DefaultSyncPolicy returns the policy used when none is configured.
func DefaultSyncPolicy() SyncPolicy {
	return SyncPolicy{Timeout: DefaultSyncTimeout}
}

func (p SyncPolicy) deadline() time.Time {
	t := p.Timeout
	if t <= 0 {
		t = DefaultSyncTimeout
	}
	return time.Now().Add(t)
}

// poll calls ready until it reports true, the deadline passes or ctx ends.
// ready is always called at least once.
func (p SyncPolicy) poll(ctx context.Context, what string, ready func() (bool, error)) error {
	deadline := p.deadline()
	polls := 0
	for {
		ok, err := ready()
		if err != nil {
			return err
		}
		polls++
		if ok {
			if polls > 1 {
				glog.V(2).Infof("regs: %s settled after %d polls", what, polls)
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s after %d polls: %w", what, polls, ErrSyncTimeout)
		}
		if p.Interval > 0 {
			time.Sleep(p.Interval)
		}
	}
}

// Wait polls every flag until all read clear.
func (p SyncPolicy) Wait(ctx context.Context, bus Bus, flags ...Busy) error {
	if len(flags) == 0 {
		return nil
	}
	return p.poll(ctx, fmt.Sprintf("sync 0x%08X", flags[0].Addr), func() (bool, error) {
		return busyClear(bus, flags)
	})
}

func busyClear(bus Bus, flags []Busy) (bool, error) {
	for _, f := range flags {
		v, err := Read(bus, f.Addr, f.Width)
		if err != nil {
			return false, err
		}
		if v&f.Mask != 0 {
			return false, nil
		}
	}
	return true, nil
}

// Reg names one register of a bank's data window.
type Reg struct {
	Addr  uint32
	Width int
}

// Bank describes an indirect register: an 8-bit index written to Select
// populates the Data registers with the configuration of that slot.
//
// Every read follows the same sequence: write the index, wait until the
// Busy flags clear and the Echo field reads back the index, then read Data.
type Bank struct {
	Name   string
	Select uint32
	Slots  int

	// Echo is the register and field that reflect the current selection.
	EchoAt    uint32
	EchoWidth int
	Echo      Field

	Busy []Busy
	Data []Reg
}

// Read selects slot id and returns the Data register values in order.
func (b *Bank) Read(ctx context.Context, bus Bus, policy SyncPolicy, id uint8) ([]uint32, error) {
	if int(id) >= b.Slots {
		return nil, fmt.Errorf("%s: slot %d out of range [0,%d)", b.Name, id, b.Slots)
	}
	if err := bus.Write8(b.Select, id); err != nil {
		return nil, fmt.Errorf("%s: select %d: %w", b.Name, id, err)
	}

	err := policy.poll(ctx, fmt.Sprintf("%s slot %d", b.Name, id), func() (bool, error) {
		ok, err := busyClear(bus, b.Busy)
		if err != nil || !ok {
			return false, err
		}
		v, err := Read(bus, b.EchoAt, b.EchoWidth)
		if err != nil {
			return false, err
		}
		return b.Echo.Get(v) == uint32(id), nil
	})
	if err != nil {
		return nil, err
	}

	vals := make([]uint32, len(b.Data))
	for i, r := range b.Data {
		v, err := Read(bus, r.Addr, r.Width)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %d: %w", b.Name, id, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// ReadAll reads every slot in index order.
func (b *Bank) ReadAll(ctx context.Context, bus Bus, policy SyncPolicy) ([][]uint32, error) {
	out := make([][]uint32, 0, b.Slots)
	for id := 0; id < b.Slots; id++ {
		vals, err := b.Read(ctx, bus, policy, uint8(id))
		if err != nil {
			return out, err
		}
		out = append(out, vals)
	}
	return out, nil
}
