package probe

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	// Default packet size for CMSIS-DAP v1/v2
	DefaultPacketSize = 64
	DefaultTimeout    = 5 * time.Second
)

// Transport exchanges one command packet for one response packet.
type Transport interface {
	WriteRead(cmd []byte) ([]byte, error)
	Close() error
}

// USBTransport handles USB communication with a CMSIS-DAP probe. Both the
// v2 bulk interface and the v1 HID interface (EDBG, Atmel-ICE) are
// supported; v1 reports travel over the HID interrupt endpoints.
type USBTransport struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface

	epOut *gousb.OutEndpoint
	epIn  *gousb.InEndpoint

	packetSize int
	timeout    time.Duration

	vid uint16
	pid uint16
}

// NewUSBTransport opens the first probe matching vid:pid. A non-empty
// serial restricts the match to that serial number.
func NewUSBTransport(vid, pid uint16, serial string) (*USBTransport, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == vid && uint16(desc.Product) == pid
	})
	if err != nil && len(devs) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("USB error: %w", err)
	}

	var dev *gousb.Device
	for _, d := range devs {
		if dev == nil && serial != "" {
			if s, _ := d.SerialNumber(); s != serial {
				d.Close()
				continue
			}
		}
		if dev == nil {
			dev = d
			continue
		}
		d.Close()
	}
	if dev == nil {
		ctx.Close()
		if serial != "" {
			return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X serial %q)", vid, pid, serial)
		}
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vid, pid)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		glog.V(1).Infof("probe: auto-detach unavailable: %v", err)
	}

	transport := &USBTransport{
		ctx:        ctx,
		dev:        dev,
		packetSize: DefaultPacketSize,
		timeout:    DefaultTimeout,
		vid:        vid,
		pid:        pid,
	}

	if err := transport.claimInterface(); err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}

	return transport, nil
}

// claimInterface finds and claims the CMSIS-DAP interface: the vendor
// class interface of a v2 probe, else the first HID interface.
func (t *USBTransport) claimInterface() error {
	cfgNum, err := t.dev.ActiveConfigNum()
	if err != nil {
		cfgNum = 1
	}
	cfg, err := t.dev.Config(cfgNum)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	t.cfg = cfg

	num := -1
	for _, class := range []gousb.Class{gousb.ClassVendorSpec, gousb.ClassHID} {
		for _, intf := range cfg.Desc.Interfaces {
			if len(intf.AltSettings) > 0 && intf.AltSettings[0].Class == class {
				num = intf.Number
				break
			}
		}
		if num >= 0 {
			break
		}
	}
	if num < 0 {
		num = 0
	}

	intf, err := cfg.Interface(num, 0)
	if err != nil {
		cfg.Close()
		return fmt.Errorf("failed to claim interface %d: %w", num, err)
	}
	t.intf = intf

	if err := t.findEndpoints(); err != nil {
		intf.Close()
		cfg.Close()
		return err
	}

	glog.V(1).Infof("probe: %04X:%04X interface %d, packet size %d", t.vid, t.pid, num, t.packetSize)
	return nil
}

func usableEndpoint(ep gousb.EndpointDesc) bool {
	return ep.TransferType == gousb.TransferTypeBulk || ep.TransferType == gousb.TransferTypeInterrupt
}

// findEndpoints discovers the IN and OUT endpoints
func (t *USBTransport) findEndpoints() error {
	setting := t.intf.Setting

	outAddr, inAddr := -1, -1
	for _, ep := range setting.Endpoints {
		if !usableEndpoint(ep) {
			continue
		}
		switch {
		case ep.Direction == gousb.EndpointDirectionOut && outAddr < 0:
			outAddr = ep.Number
		case ep.Direction == gousb.EndpointDirectionIn && inAddr < 0:
			inAddr = ep.Number
			t.packetSize = ep.MaxPacketSize
		}
	}

	if outAddr < 0 {
		return fmt.Errorf("OUT endpoint not found")
	}
	if inAddr < 0 {
		return fmt.Errorf("IN endpoint not found")
	}

	epOut, err := t.intf.OutEndpoint(outAddr)
	if err != nil {
		return fmt.Errorf("failed to open OUT endpoint: %w", err)
	}
	t.epOut = epOut

	epIn, err := t.intf.InEndpoint(inAddr)
	if err != nil {
		return fmt.Errorf("failed to open IN endpoint: %w", err)
	}
	t.epIn = epIn

	return nil
}

// Write sends a command packet to the probe
func (t *USBTransport) Write(data []byte) (int, error) {
	// CMSIS-DAP packets are fixed size, pad if necessary
	packet := make([]byte, t.packetSize)
	copy(packet, data)

	n, err := t.epOut.Write(packet)
	if err != nil {
		return 0, fmt.Errorf("USB write failed: %w", err)
	}

	return n, nil
}

// Read receives a response packet from the probe
func (t *USBTransport) Read(data []byte) (int, error) {
	n, err := t.epIn.Read(data)
	if err != nil {
		return 0, fmt.Errorf("USB read failed: %w", err)
	}
	return n, nil
}

// WriteRead performs a command/response transaction
func (t *USBTransport) WriteRead(cmd []byte) ([]byte, error) {
	if _, err := t.Write(cmd); err != nil {
		return nil, err
	}

	resp := make([]byte, t.packetSize)
	n, err := t.Read(resp)
	if err != nil {
		return nil, err
	}

	return resp[:n], nil
}

// PacketSize returns the endpoint packet size
func (t *USBTransport) PacketSize() int {
	return t.packetSize
}

// Close releases USB resources
func (t *USBTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.cfg != nil {
		t.cfg.Close()
		t.cfg = nil
	}
	if t.dev != nil {
		t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
	return nil
}
