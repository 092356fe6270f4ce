package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/gousb"
)

// InterfaceKind categorizes register backends.
type InterfaceKind string

const (
	InterfaceKindCMSISDAP InterfaceKind = "cmsis-dap"
	InterfaceKindSim      InterfaceKind = "simulator"
)

// InterfaceInfo describes a detected backend.
type InterfaceInfo struct {
	Kind        InterfaceKind `json:"kind"`
	Description string        `json:"description"`
	VendorID    uint16        `json:"vid,omitempty"`
	ProductID   uint16        `json:"pid,omitempty"`
	Serial      string        `json:"serial,omitempty"`
}

// Label returns a user-friendly description for the interface.
func (i InterfaceInfo) Label() string {
	label := i.Description
	if label == "" {
		label = fmt.Sprintf("%s (%04X:%04X)", string(i.Kind), i.VendorID, i.ProductID)
	}
	if i.Serial != "" {
		label += " [" + i.Serial + "]"
	}
	return label
}

type knownUSBDevice struct {
	VendorID    uint16
	ProductID   uint16
	Description string
}

// Probes known to speak CMSIS-DAP. The Arduino Zero's programming port is
// an on-board EDBG.
var knownProbes = []knownUSBDevice{
	{VendorID: 0x03eb, ProductID: 0x2157, Description: "Arduino Zero EDBG CMSIS-DAP"},
	{VendorID: 0x03eb, ProductID: 0x2111, Description: "Atmel EDBG CMSIS-DAP"},
	{VendorID: 0x03eb, ProductID: 0x2141, Description: "Atmel-ICE CMSIS-DAP"},
	{VendorID: 0x2e8a, ProductID: 0x000c, Description: "Raspberry Pi Debug Probe"},
	{VendorID: 0x0d28, ProductID: 0x0204, Description: "DAPLink CMSIS-DAP"},
	{VendorID: 0x1366, ProductID: 0x0101, Description: "SEGGER J-Link CMSIS-DAP"},
}

func classifyUSBDevice(desc *gousb.DeviceDesc) (InterfaceInfo, bool) {
	for _, known := range knownProbes {
		if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
			return InterfaceInfo{
				Kind:        InterfaceKindCMSISDAP,
				Description: known.Description,
				VendorID:    known.VendorID,
				ProductID:   known.ProductID,
			}, true
		}
	}
	return InterfaceInfo{}, false
}

// LookupProbe returns the VID/PID of the known probe matching name, which
// may be a description substring or a "vid:pid" pair in hex.
func LookupProbe(name string) (vid, pid uint16, err error) {
	var v, p uint16
	if _, err := fmt.Sscanf(name, "%x:%x", &v, &p); err == nil {
		return v, p, nil
	}
	for _, known := range knownProbes {
		if known.Description == name {
			return known.VendorID, known.ProductID, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown probe %q", name)
}

// DiscoverInterfaces enumerates connected CMSIS-DAP probes that match known
// VID/PID pairs. It always returns the simulator entry last so the tool can
// be exercised without hardware connected.
func DiscoverInterfaces(ctx context.Context) ([]InterfaceInfo, error) {
	var results []InterfaceInfo
	usb := gousb.NewContext()
	defer usb.Close()

	devs, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		_, ok := classifyUSBDevice(desc)
		return ok
	})
	for _, dev := range devs {
		info, _ := classifyUSBDevice(dev.Desc)
		info.Serial, _ = dev.SerialNumber()
		results = append(results, info)
		dev.Close()
	}
	if err != nil && !errors.Is(err, gousb.ErrorAccess) {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	results = append(results, InterfaceInfo{
		Kind:        InterfaceKindSim,
		Description: "Simulator (booted Arduino Zero)",
	})

	return results, nil
}

// FirstProbe returns the first connected known probe.
func FirstProbe(ctx context.Context) (InterfaceInfo, error) {
	ifaces, err := DiscoverInterfaces(ctx)
	if err != nil {
		return InterfaceInfo{}, err
	}
	for _, i := range ifaces {
		if i.Kind == InterfaceKindCMSISDAP {
			return i, nil
		}
	}
	return InterfaceInfo{}, fmt.Errorf("no CMSIS-DAP probe connected")
}
