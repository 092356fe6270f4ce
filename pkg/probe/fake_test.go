package probe

import (
	"encoding/binary"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

// fakeDAP emulates a CMSIS-DAP probe wired to a SAM D21 debug port whose
// MEM-AP reaches mem.
type fakeDAP struct {
	mem   regs.Bus
	dpidr uint32

	connected bool
	switched  bool
	ctrlStat  uint32
	sticky    bool
	csw, tar  uint32

	faultAddr uint32 // MEM-AP address answering FAULT, 0 for none
	noPowerUp bool

	clockHz  uint32
	commands []byte
	closed   bool
}

func newFakeDAP(mem regs.Bus) *fakeDAP {
	return &fakeDAP{mem: mem, dpidr: 0x0BC11477}
}

func (f *fakeDAP) WriteRead(cmd []byte) ([]byte, error) {
	if f.closed {
		return nil, fmt.Errorf("transport closed")
	}
	f.commands = append(f.commands, cmd[0])
	switch cmd[0] {
	case CmdInfo:
		s := map[byte]string{
			InfoVendorID:    "Atmel Corp.",
			InfoProductID:   "EDBG CMSIS-DAP",
			InfoSerialNum:   "ATML2130021800001234",
			InfoFirmwareVer: "03.25.01B6\x00",
		}[cmd[1]]
		return append([]byte{CmdInfo, byte(len(s))}, s...), nil
	case CmdConnect:
		f.connected = cmd[1] == PortSWD
		return []byte{CmdConnect, cmd[1]}, nil
	case CmdDisconnect:
		f.connected = false
		return []byte{CmdDisconnect, StatusOK}, nil
	case CmdSWJClock:
		f.clockHz = binary.LittleEndian.Uint32(cmd[1:])
		return []byte{CmdSWJClock, StatusOK}, nil
	case CmdSWJSequence:
		f.switched = cmd[1] == 136 && cmd[9] == 0x9E && cmd[10] == 0xE7
		return []byte{CmdSWJSequence, StatusOK}, nil
	case CmdTransferConfigure, CmdSWDConfigure:
		return []byte{cmd[0], StatusOK}, nil
	case CmdTransfer:
		return f.transfer(cmd), nil
	}
	return []byte{cmd[0], StatusError}, nil
}

func (f *fakeDAP) transfer(cmd []byte) []byte {
	count := int(cmd[2])
	req := cmd[3:]
	resp := []byte{CmdTransfer, 0, AckOK}
	for i := 0; i < count; i++ {
		r := req[0]
		req = req[1:]
		var wdata uint32
		if r&ReqRnW == 0 {
			wdata = binary.LittleEndian.Uint32(req)
			req = req[4:]
		}
		v, ack := f.access(r, wdata)
		if ack != AckOK {
			resp[2] = ack
			return resp
		}
		if r&ReqRnW != 0 {
			resp = binary.LittleEndian.AppendUint32(resp, v)
		}
		resp[1]++
	}
	return resp
}

func (f *fakeDAP) access(req byte, wdata uint32) (uint32, byte) {
	if !f.connected || !f.switched {
		return 0, 0x07 // no target answering
	}
	reg := req & 0x0C
	read := req&ReqRnW != 0

	if req&ReqAPnDP == 0 {
		switch {
		case read && reg == dpIDR:
			return f.dpidr, AckOK
		case !read && reg == dpABORT:
			if wdata&abortClearAll != 0 {
				f.sticky = false
			}
			return 0, AckOK
		case read && reg == dpCTRLSTAT:
			return f.ctrlStat, AckOK
		case !read && reg == dpCTRLSTAT:
			f.ctrlStat = wdata &^ (ctrlCSYSPWRUPACK | ctrlCDBGPWRUPACK)
			if !f.noPowerUp && wdata&ctrlCSYSPWRUPREQ != 0 {
				f.ctrlStat |= ctrlCSYSPWRUPACK
			}
			if !f.noPowerUp && wdata&ctrlCDBGPWRUPREQ != 0 {
				f.ctrlStat |= ctrlCDBGPWRUPACK
			}
			return 0, AckOK
		case !read && reg == dpSELECT:
			return 0, AckOK
		}
		return 0, AckFault
	}

	if f.sticky {
		return 0, AckFault
	}
	switch reg {
	case apCSW:
		if read {
			return f.csw, AckOK
		}
		f.csw = wdata
		return 0, AckOK
	case apTAR:
		if read {
			return f.tar, AckOK
		}
		f.tar = wdata
		return 0, AckOK
	case apDRW:
		if f.tar == f.faultAddr && f.faultAddr != 0 {
			f.sticky = true
			return 0, AckFault
		}
		width := 1 << (f.csw & 7)
		lane := 8 * (f.tar & 3)
		if read {
			v, err := regs.Read(f.mem, f.tar, width)
			if err != nil {
				f.sticky = true
				return 0, AckFault
			}
			return v << lane, AckOK
		}
		if width != 1 {
			f.sticky = true
			return 0, AckFault
		}
		if err := f.mem.Write8(f.tar, uint8(wdata>>lane)); err != nil {
			f.sticky = true
			return 0, AckFault
		}
		return 0, AckOK
	}
	return 0, AckFault
}

func (f *fakeDAP) Close() error {
	f.closed = true
	return nil
}
