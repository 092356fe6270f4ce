package probe

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// CMSIS-DAP Command IDs
const (
	CmdInfo              = 0x00
	CmdConnect           = 0x02
	CmdDisconnect        = 0x03
	CmdTransferConfigure = 0x04
	CmdTransfer          = 0x05
	CmdSWJClock          = 0x11
	CmdSWJSequence       = 0x12
	CmdSWDConfigure      = 0x13
)

// DAP_Info Info IDs
const (
	InfoVendorID     = 0x01
	InfoProductID    = 0x02
	InfoSerialNum    = 0x03
	InfoFirmwareVer  = 0x04
	InfoCapabilities = 0xF0
	InfoPacketCount  = 0xFE
	InfoPacketSize   = 0xFF
)

// Connection ports
const (
	PortDefault = 0
	PortSWD     = 1
	PortJTAG    = 2
)

// Status codes
const (
	StatusOK    = 0x00
	StatusError = 0xFF
)

// DAP_Transfer request bits
const (
	ReqAPnDP = 0x01
	ReqRnW   = 0x02
)

// SWD acknowledge values reported in DAP_Transfer responses
const (
	AckOK    = 0x01
	AckWait  = 0x02
	AckFault = 0x04
	// AckProtocol is set when the probe saw a parity or framing error.
	AckProtocol = 0x08
	ackMask     = 0x07
)

var (
	// ErrTransferWait is returned when the target kept answering WAIT past the
	// probe's retry budget.
	ErrTransferWait = errors.New("probe: transfer WAIT")
	// ErrTransferFault is returned for a FAULT acknowledge (sticky error set).
	ErrTransferFault = errors.New("probe: transfer FAULT")
	// ErrProtocol covers missing acknowledges and SWD parity errors.
	ErrProtocol = errors.New("probe: SWD protocol error")
)

// Transfer is one DP or AP register access within a DAP_Transfer command.
type Transfer struct {
	AP    bool
	Read  bool
	Reg   uint8 // register address, A[3:2] significant
	Value uint32
}

// Request returns the request byte for the transfer.
func (t Transfer) Request() byte {
	req := t.Reg & 0x0C
	if t.AP {
		req |= ReqAPnDP
	}
	if t.Read {
		req |= ReqRnW
	}
	return req
}

// Protocol handles encoding/decoding of CMSIS-DAP commands
type Protocol struct {
	PacketSize int
}

// NewProtocol creates a new protocol handler
func NewProtocol(packetSize int) *Protocol {
	return &Protocol{
		PacketSize: packetSize,
	}
}

func checkHeader(resp []byte, cmd byte, min int) error {
	if len(resp) < min {
		return fmt.Errorf("response too short")
	}
	if resp[0] != cmd {
		return fmt.Errorf("invalid command ID: 0x%02X", resp[0])
	}
	return nil
}

func decodeStatus(resp []byte, cmd byte, what string) error {
	if err := checkHeader(resp, cmd, 2); err != nil {
		return err
	}
	if resp[1] != StatusOK {
		return fmt.Errorf("%s failed", what)
	}
	return nil
}

// EncodeInfo builds a DAP_Info command
func (p *Protocol) EncodeInfo(infoID byte) []byte {
	return []byte{CmdInfo, infoID}
}

// DecodeInfo parses a DAP_Info response
func (p *Protocol) DecodeInfo(resp []byte) (string, error) {
	if err := checkHeader(resp, CmdInfo, 2); err != nil {
		return "", err
	}

	length := int(resp[1])
	if len(resp) < 2+length {
		return "", fmt.Errorf("incomplete info string")
	}

	// Firmware strings are NUL terminated on most probes.
	s := resp[2 : 2+length]
	for i, c := range s {
		if c == 0 {
			s = s[:i]
			break
		}
	}
	return string(s), nil
}

// EncodeConnect builds a DAP_Connect command
func (p *Protocol) EncodeConnect(port byte) []byte {
	return []byte{CmdConnect, port}
}

// DecodeConnect parses a DAP_Connect response
func (p *Protocol) DecodeConnect(resp []byte) (byte, error) {
	if err := checkHeader(resp, CmdConnect, 2); err != nil {
		return 0, err
	}
	if resp[1] == 0 {
		return 0, fmt.Errorf("connection failed")
	}
	return resp[1], nil
}

// EncodeDisconnect builds a DAP_Disconnect command
func (p *Protocol) EncodeDisconnect() []byte {
	return []byte{CmdDisconnect}
}

// DecodeDisconnect parses a DAP_Disconnect response
func (p *Protocol) DecodeDisconnect(resp []byte) error {
	return decodeStatus(resp, CmdDisconnect, "disconnect")
}

// EncodeSWJClock builds a DAP_SWJ_Clock command
func (p *Protocol) EncodeSWJClock(hz uint32) []byte {
	cmd := make([]byte, 5)
	cmd[0] = CmdSWJClock
	binary.LittleEndian.PutUint32(cmd[1:], hz)
	return cmd
}

// DecodeSWJClock parses a DAP_SWJ_Clock response
func (p *Protocol) DecodeSWJClock(resp []byte) error {
	return decodeStatus(resp, CmdSWJClock, "set clock")
}

// EncodeSWJSequence builds a DAP_SWJ_Sequence command clocking bits out of
// data LSB first. A count of 256 is encoded as 0.
func (p *Protocol) EncodeSWJSequence(bits int, data []byte) ([]byte, error) {
	if bits < 1 || bits > 256 {
		return nil, fmt.Errorf("invalid sequence length %d", bits)
	}
	if len(data) < (bits+7)/8 {
		return nil, fmt.Errorf("sequence data too short: %d bytes for %d bits", len(data), bits)
	}
	cmd := make([]byte, 2, 2+(bits+7)/8)
	cmd[0] = CmdSWJSequence
	cmd[1] = byte(bits) // 256 wraps to 0
	return append(cmd, data[:(bits+7)/8]...), nil
}

// DecodeSWJSequence parses a DAP_SWJ_Sequence response
func (p *Protocol) DecodeSWJSequence(resp []byte) error {
	return decodeStatus(resp, CmdSWJSequence, "SWJ sequence")
}

// EncodeSWDConfigure builds a DAP_SWD_Configure command. turnaround is the
// number of turnaround clocks (1..4); dataPhase forces a data phase on
// WAIT/FAULT.
func (p *Protocol) EncodeSWDConfigure(turnaround int, dataPhase bool) []byte {
	cfg := byte(turnaround-1) & 0x03
	if dataPhase {
		cfg |= 0x04
	}
	return []byte{CmdSWDConfigure, cfg}
}

// DecodeSWDConfigure parses a DAP_SWD_Configure response
func (p *Protocol) DecodeSWDConfigure(resp []byte) error {
	return decodeStatus(resp, CmdSWDConfigure, "SWD configure")
}

// EncodeTransferConfigure builds a DAP_TransferConfigure command
func (p *Protocol) EncodeTransferConfigure(idleCycles uint8, waitRetry, matchRetry uint16) []byte {
	cmd := make([]byte, 6)
	cmd[0] = CmdTransferConfigure
	cmd[1] = idleCycles
	binary.LittleEndian.PutUint16(cmd[2:], waitRetry)
	binary.LittleEndian.PutUint16(cmd[4:], matchRetry)
	return cmd
}

// DecodeTransferConfigure parses a DAP_TransferConfigure response
func (p *Protocol) DecodeTransferConfigure(resp []byte) error {
	return decodeStatus(resp, CmdTransferConfigure, "transfer configure")
}

// EncodeTransfer builds a DAP_Transfer command for DAP index 0.
func (p *Protocol) EncodeTransfer(xfers []Transfer) ([]byte, error) {
	if len(xfers) == 0 || len(xfers) > 255 {
		return nil, fmt.Errorf("invalid transfer count %d", len(xfers))
	}
	cmd := []byte{CmdTransfer, 0, byte(len(xfers))}
	for _, x := range xfers {
		cmd = append(cmd, x.Request())
		if !x.Read {
			cmd = binary.LittleEndian.AppendUint32(cmd, x.Value)
		}
	}
	if p.PacketSize > 0 && len(cmd) > p.PacketSize {
		return nil, fmt.Errorf("transfer command of %d bytes exceeds packet size %d", len(cmd), p.PacketSize)
	}
	return cmd, nil
}

// DecodeTransfer parses a DAP_Transfer response and returns the values of
// the read transfers in order. A short count or a non-OK acknowledge is an
// error wrapping ErrTransferWait, ErrTransferFault or ErrProtocol.
func (p *Protocol) DecodeTransfer(resp []byte, xfers []Transfer) ([]uint32, error) {
	if err := checkHeader(resp, CmdTransfer, 3); err != nil {
		return nil, err
	}
	done := int(resp[1])
	ack := resp[2]

	if ack&AckProtocol != 0 {
		return nil, fmt.Errorf("%w after %d of %d transfers", ErrProtocol, done, len(xfers))
	}
	switch ack & ackMask {
	case AckOK:
	case AckWait:
		return nil, fmt.Errorf("%w after %d of %d transfers", ErrTransferWait, done, len(xfers))
	case AckFault:
		return nil, fmt.Errorf("%w after %d of %d transfers", ErrTransferFault, done, len(xfers))
	default:
		return nil, fmt.Errorf("%w: ack 0x%X", ErrProtocol, ack)
	}
	if done != len(xfers) {
		return nil, fmt.Errorf("%w: %d of %d transfers completed", ErrProtocol, done, len(xfers))
	}

	var out []uint32
	data := resp[3:]
	for _, x := range xfers {
		if !x.Read {
			continue
		}
		if len(data) < 4 {
			return nil, fmt.Errorf("response too short")
		}
		out = append(out, binary.LittleEndian.Uint32(data))
		data = data[4:]
	}
	return out, nil
}
