// Package probe reads target registers through a CMSIS-DAP debug probe
// over SWD. A connected probe implements regs.Bus by driving the MEM-AP of
// the Cortex-M0+ debug port.
package probe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

// Debug port registers
const (
	dpABORT    = 0x00 // write
	dpIDR      = 0x00 // read
	dpCTRLSTAT = 0x04
	dpSELECT   = 0x08
)

// MEM-AP registers (bank 0)
const (
	apCSW = 0x00
	apTAR = 0x04
	apDRW = 0x0C
)

const (
	// ABORT: clear STKCMP, STKERR, WDERR and ORUNERR.
	abortClearAll = 0x1E

	ctrlCSYSPWRUPREQ = 1 << 30
	ctrlCDBGPWRUPREQ = 1 << 28
	ctrlCSYSPWRUPACK = 1 << 31
	ctrlCDBGPWRUPACK = 1 << 29

	// CSW: privileged data access, master type debug, no auto-increment.
	cswBase   = 0x23000000
	cswSize8  = 0
	cswSize16 = 1
	cswSize32 = 2
)

// DefaultSpeedHz is the SWCLK frequency used when none is configured.
const DefaultSpeedHz = 1_000_000

// JTAG-to-SWD switch: line reset, 0xE79E, line reset, idle.
var swjSwitchSequence = []byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x9E, 0xE7,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x00,
}

// Info describes the connected probe.
type Info struct {
	Vendor     string
	Product    string
	Serial     string
	Firmware   string
	PacketSize int
}

// Options selects and configures a probe.
type Options struct {
	// VID and PID select the probe; zero picks the first known probe.
	VID, PID uint16
	Serial   string
	SpeedHz  int
	// PowerUpTimeout bounds the wait for the debug domain to power up.
	PowerUpTimeout time.Duration
}

// SWD is a regs.Bus backed by a CMSIS-DAP probe in SWD mode. It is safe for
// concurrent use; transfers are serialized.
type SWD struct {
	transport Transport
	protocol  *Protocol

	info  Info
	dpidr uint32

	csw      uint32
	cswValid bool

	mu sync.Mutex
}

var _ regs.Bus = (*SWD)(nil)

// Open connects to a probe over USB and brings up the SWD link.
func Open(ctx context.Context, opts Options) (*SWD, error) {
	vid, pid := opts.VID, opts.PID
	if vid == 0 && pid == 0 {
		first, err := FirstProbe(ctx)
		if err != nil {
			return nil, err
		}
		vid, pid = first.VendorID, first.ProductID
	}

	transport, err := NewUSBTransport(vid, pid, opts.Serial)
	if err != nil {
		return nil, fmt.Errorf("failed to open USB device: %w", err)
	}

	s, err := NewSWD(ctx, transport, transport.PacketSize(), opts)
	if err != nil {
		transport.Close()
		return nil, err
	}
	return s, nil
}

// NewSWD brings up the SWD link over an already open transport: DAP_Connect,
// clock and transfer setup, the JTAG-to-SWD switch, DPIDR, debug power-up
// and MEM-AP selection.
func NewSWD(ctx context.Context, t Transport, packetSize int, opts Options) (*SWD, error) {
	if opts.SpeedHz <= 0 {
		opts.SpeedHz = DefaultSpeedHz
	}
	if opts.PowerUpTimeout <= 0 {
		opts.PowerUpTimeout = time.Second
	}

	s := &SWD{
		transport: t,
		protocol:  NewProtocol(packetSize),
	}
	s.info.PacketSize = packetSize

	if err := s.queryInfo(); err != nil {
		return nil, fmt.Errorf("failed to query device info: %w", err)
	}
	if err := s.connect(opts.SpeedHz); err != nil {
		return nil, fmt.Errorf("failed to connect to SWD: %w", err)
	}
	if err := s.powerUp(ctx, opts.PowerUpTimeout); err != nil {
		return nil, fmt.Errorf("debug power-up: %w", err)
	}

	glog.V(1).Infof("probe: %s %s connected, DPIDR 0x%08X", s.info.Vendor, s.info.Product, s.dpidr)
	return s, nil
}

func (s *SWD) command(cmd []byte) ([]byte, error) {
	return s.transport.WriteRead(cmd)
}

// queryInfo retrieves device information from the probe
func (s *SWD) queryInfo() error {
	fields := []struct {
		id  byte
		dst *string
	}{
		{InfoVendorID, &s.info.Vendor},
		{InfoProductID, &s.info.Product},
		{InfoSerialNum, &s.info.Serial},
		{InfoFirmwareVer, &s.info.Firmware},
	}
	for i, f := range fields {
		resp, err := s.command(s.protocol.EncodeInfo(f.id))
		if err != nil {
			if i == 0 {
				return err
			}
			continue
		}
		// Probes may leave optional strings empty.
		*f.dst, _ = s.protocol.DecodeInfo(resp)
	}
	return nil
}

func (s *SWD) connect(speedHz int) error {
	resp, err := s.command(s.protocol.EncodeConnect(PortSWD))
	if err != nil {
		return err
	}
	port, err := s.protocol.DecodeConnect(resp)
	if err != nil {
		return err
	}
	if port != PortSWD {
		return fmt.Errorf("failed to connect to SWD (got port %d)", port)
	}

	if err := s.setSpeed(speedHz); err != nil {
		return err
	}

	resp, err = s.command(s.protocol.EncodeTransferConfigure(0, 100, 0))
	if err != nil {
		return err
	}
	if err := s.protocol.DecodeTransferConfigure(resp); err != nil {
		return err
	}

	resp, err = s.command(s.protocol.EncodeSWDConfigure(1, false))
	if err != nil {
		return err
	}
	if err := s.protocol.DecodeSWDConfigure(resp); err != nil {
		return err
	}

	seq, err := s.protocol.EncodeSWJSequence(len(swjSwitchSequence)*8, swjSwitchSequence)
	if err != nil {
		return err
	}
	resp, err = s.command(seq)
	if err != nil {
		return err
	}
	if err := s.protocol.DecodeSWJSequence(resp); err != nil {
		return err
	}

	// DPIDR must be the first read after a line reset.
	vals, err := s.transfer([]Transfer{{Read: true, Reg: dpIDR}})
	if err != nil {
		return fmt.Errorf("read DPIDR: %w", err)
	}
	s.dpidr = vals[0]
	return nil
}

func (s *SWD) setSpeed(hz int) error {
	resp, err := s.command(s.protocol.EncodeSWJClock(uint32(hz)))
	if err != nil {
		return err
	}
	return s.protocol.DecodeSWJClock(resp)
}

// powerUp requests system and debug power and waits for both acknowledges.
func (s *SWD) powerUp(ctx context.Context, timeout time.Duration) error {
	_, err := s.transfer([]Transfer{
		{Reg: dpABORT, Value: abortClearAll},
		{Reg: dpSELECT, Value: 0},
		{Reg: dpCTRLSTAT, Value: ctrlCSYSPWRUPREQ | ctrlCDBGPWRUPREQ},
	})
	if err != nil {
		return err
	}

	const ack = ctrlCSYSPWRUPACK | ctrlCDBGPWRUPACK
	deadline := time.Now().Add(timeout)
	for {
		vals, err := s.transfer([]Transfer{{Read: true, Reg: dpCTRLSTAT}})
		if err != nil {
			return err
		}
		if vals[0]&ack == ack {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("no power-up acknowledge (CTRL/STAT 0x%08X)", vals[0])
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}

// transfer runs one DAP_Transfer. A FAULT clears the sticky error flags so
// the next access starts clean.
func (s *SWD) transfer(xfers []Transfer) ([]uint32, error) {
	cmd, err := s.protocol.EncodeTransfer(xfers)
	if err != nil {
		return nil, err
	}
	resp, err := s.command(cmd)
	if err != nil {
		s.cswValid = false
		return nil, err
	}
	vals, err := s.protocol.DecodeTransfer(resp, xfers)
	if err != nil {
		s.cswValid = false
		if clr, encErr := s.protocol.EncodeTransfer([]Transfer{{Reg: dpABORT, Value: abortClearAll}}); encErr == nil {
			if _, abortErr := s.command(clr); abortErr != nil {
				glog.Warningf("probe: clearing sticky errors: %v", abortErr)
			}
		}
		return nil, err
	}
	return vals, nil
}

// memXfers returns the transfers selecting size and address. CSW is only
// rewritten when the access size changes.
func (s *SWD) memXfers(addr uint32, size uint32) []Transfer {
	var xfers []Transfer
	if csw := cswBase | size; !s.cswValid || s.csw != csw {
		xfers = append(xfers, Transfer{AP: true, Reg: apCSW, Value: csw})
		s.csw, s.cswValid = csw, true
	}
	return append(xfers, Transfer{AP: true, Reg: apTAR, Value: addr})
}

func (s *SWD) read(addr uint32, width int) (uint32, error) {
	if err := regs.CheckAlign(addr, width); err != nil {
		return 0, err
	}
	size := uint32(cswSize32)
	switch width {
	case 1:
		size = cswSize8
	case 2:
		size = cswSize16
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	xfers := append(s.memXfers(addr, size), Transfer{AP: true, Read: true, Reg: apDRW})
	vals, err := s.transfer(xfers)
	if err != nil {
		return 0, fmt.Errorf("read 0x%08X: %w", addr, err)
	}

	// Narrow accesses return data on the byte lanes of the address.
	v := vals[0] >> (8 * (addr & 3))
	if width < 4 {
		v &= 1<<(8*width) - 1
	}
	glog.V(2).Infof("probe: read%d 0x%08X = 0x%X", width*8, addr, v)
	return v, nil
}

// Read8 implements regs.Bus.
func (s *SWD) Read8(addr uint32) (uint8, error) {
	v, err := s.read(addr, 1)
	return uint8(v), err
}

// Read16 implements regs.Bus.
func (s *SWD) Read16(addr uint32) (uint16, error) {
	v, err := s.read(addr, 2)
	return uint16(v), err
}

// Read32 implements regs.Bus.
func (s *SWD) Read32(addr uint32) (uint32, error) {
	return s.read(addr, 4)
}

// Write8 implements regs.Bus with a byte-sized MEM-AP write.
func (s *SWD) Write8(addr uint32, v uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	xfers := append(s.memXfers(addr, cswSize8),
		Transfer{AP: true, Reg: apDRW, Value: uint32(v) << (8 * (addr & 3))})
	if _, err := s.transfer(xfers); err != nil {
		return fmt.Errorf("write 0x%08X: %w", addr, err)
	}
	glog.V(2).Infof("probe: write8 0x%08X = 0x%02X", addr, v)
	return nil
}

// DPIDR returns the debug port identification register read at connect.
func (s *SWD) DPIDR() uint32 {
	return s.dpidr
}

// Info returns the probe's identification strings.
func (s *SWD) Info() Info {
	return s.info
}

// SetSpeed changes the SWCLK frequency.
func (s *SWD) SetSpeed(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("invalid frequency: %d Hz", hz)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSpeed(hz)
}

// Close disconnects from the target and releases the probe.
func (s *SWD) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transport == nil {
		return nil
	}
	if resp, err := s.command(s.protocol.EncodeDisconnect()); err == nil {
		if err := s.protocol.DecodeDisconnect(resp); err != nil {
			glog.Warningf("probe: %v", err)
		}
	}
	err := s.transport.Close()
	s.transport = nil
	return err
}
