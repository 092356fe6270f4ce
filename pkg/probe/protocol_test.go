package probe

import (
	"bytes"
	"errors"
	"testing"
)

func TestProtocolEncodeInfo(t *testing.T) {
	proto := NewProtocol(64)

	tests := []struct {
		name   string
		infoID byte
		want   []byte
	}{
		{"VendorID", InfoVendorID, []byte{0x00, 0x01}},
		{"SerialNum", InfoSerialNum, []byte{0x00, 0x03}},
		{"PacketSize", InfoPacketSize, []byte{0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proto.EncodeInfo(tt.infoID)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeInfo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProtocolDecodeInfo(t *testing.T) {
	proto := NewProtocol(64)

	tests := []struct {
		name    string
		resp    []byte
		want    string
		wantErr bool
	}{
		{
			name: "vendor string",
			resp: []byte{0x00, 0x05, 'A', 't', 'm', 'e', 'l'},
			want: "Atmel",
		},
		{
			name: "NUL terminated",
			resp: []byte{0x00, 0x04, '1', '.', '0', 0x00},
			want: "1.0",
		},
		{
			name: "empty",
			resp: []byte{0x00, 0x00},
			want: "",
		},
		{
			name:    "too short",
			resp:    []byte{0x00},
			wantErr: true,
		},
		{
			name:    "wrong command",
			resp:    []byte{0x01, 0x00},
			wantErr: true,
		},
		{
			name:    "incomplete",
			resp:    []byte{0x00, 0x08, 'a'},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proto.DecodeInfo(tt.resp)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeInfo() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DecodeInfo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProtocolDecodeConnect(t *testing.T) {
	proto := NewProtocol(64)

	tests := []struct {
		name    string
		resp    []byte
		want    byte
		wantErr bool
	}{
		{"SWD connected", []byte{0x02, 0x01}, PortSWD, false},
		{"JTAG connected", []byte{0x02, 0x02}, PortJTAG, false},
		{"connection failed", []byte{0x02, 0x00}, 0, true},
		{"too short", []byte{0x02}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proto.DecodeConnect(tt.resp)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeConnect() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DecodeConnect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProtocolEncodeCommands(t *testing.T) {
	proto := NewProtocol(64)

	seq, err := proto.EncodeSWJSequence(16, []byte{0x9E, 0xE7})
	if err != nil {
		t.Fatal(err)
	}
	full, err := proto.EncodeSWJSequence(256, make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"Connect SWD", proto.EncodeConnect(PortSWD), []byte{0x02, 0x01}},
		{"Disconnect", proto.EncodeDisconnect(), []byte{0x03}},
		{"SWJClock 1MHz", proto.EncodeSWJClock(1_000_000), []byte{0x11, 0x40, 0x42, 0x0F, 0x00}},
		{"SWJSequence", seq, []byte{0x12, 0x10, 0x9E, 0xE7}},
		{"SWJSequence 256", full[:2], []byte{0x12, 0x00}},
		{"SWDConfigure", proto.EncodeSWDConfigure(1, false), []byte{0x13, 0x00}},
		{"SWDConfigure data phase", proto.EncodeSWDConfigure(2, true), []byte{0x13, 0x05}},
		{"TransferConfigure", proto.EncodeTransferConfigure(0, 100, 0), []byte{0x04, 0x00, 0x64, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.got, tt.want) {
				t.Errorf("got % X, want % X", tt.got, tt.want)
			}
		})
	}
}

func TestProtocolSWJSequenceErrors(t *testing.T) {
	proto := NewProtocol(64)
	if _, err := proto.EncodeSWJSequence(0, nil); err == nil {
		t.Error("zero-length sequence accepted")
	}
	if _, err := proto.EncodeSWJSequence(257, make([]byte, 33)); err == nil {
		t.Error("257-bit sequence accepted")
	}
	if _, err := proto.EncodeSWJSequence(16, []byte{0xFF}); err == nil {
		t.Error("short data accepted")
	}
}

func TestTransferRequest(t *testing.T) {
	tests := []struct {
		name string
		x    Transfer
		want byte
	}{
		{"DP ABORT write", Transfer{Reg: dpABORT}, 0x00},
		{"DP IDR read", Transfer{Read: true, Reg: dpIDR}, 0x02},
		{"DP CTRL/STAT write", Transfer{Reg: dpCTRLSTAT}, 0x04},
		{"DP CTRL/STAT read", Transfer{Read: true, Reg: dpCTRLSTAT}, 0x06},
		{"DP SELECT write", Transfer{Reg: dpSELECT}, 0x08},
		{"AP CSW write", Transfer{AP: true, Reg: apCSW}, 0x01},
		{"AP TAR write", Transfer{AP: true, Reg: apTAR}, 0x05},
		{"AP DRW write", Transfer{AP: true, Reg: apDRW}, 0x0D},
		{"AP DRW read", Transfer{AP: true, Read: true, Reg: apDRW}, 0x0F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Request(); got != tt.want {
				t.Errorf("Request() = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestProtocolEncodeTransfer(t *testing.T) {
	proto := NewProtocol(64)

	got, err := proto.EncodeTransfer([]Transfer{
		{AP: true, Reg: apTAR, Value: 0x41002018},
		{AP: true, Read: true, Reg: apDRW},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x00, 0x02, 0x05, 0x18, 0x20, 0x00, 0x41, 0x0F}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeTransfer() = % X, want % X", got, want)
	}

	if _, err := proto.EncodeTransfer(nil); err == nil {
		t.Error("empty transfer accepted")
	}
	many := make([]Transfer, 20)
	if _, err := proto.EncodeTransfer(many); err == nil {
		t.Error("oversized transfer accepted")
	}
}

func TestProtocolDecodeTransfer(t *testing.T) {
	proto := NewProtocol(64)
	xfers := []Transfer{
		{AP: true, Reg: apTAR, Value: 0x20000000},
		{AP: true, Read: true, Reg: apDRW},
	}

	tests := []struct {
		name    string
		resp    []byte
		want    uint32
		wantErr error
	}{
		{"ok", []byte{0x05, 0x02, AckOK, 0x78, 0x56, 0x34, 0x12}, 0x12345678, nil},
		{"wait", []byte{0x05, 0x01, AckWait}, 0, ErrTransferWait},
		{"fault", []byte{0x05, 0x01, AckFault}, 0, ErrTransferFault},
		{"no ack", []byte{0x05, 0x00, 0x07}, 0, ErrProtocol},
		{"parity", []byte{0x05, 0x01, AckOK | AckProtocol}, 0, ErrProtocol},
		{"short count", []byte{0x05, 0x01, AckOK}, 0, ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proto.DecodeTransfer(tt.resp, xfers)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeTransfer() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeTransfer() error = %v", err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("DecodeTransfer() = %#v, want [0x%08X]", got, tt.want)
			}
		})
	}

	if _, err := proto.DecodeTransfer([]byte{0x05, 0x02, AckOK, 0x01}, xfers); err == nil {
		t.Error("truncated read data accepted")
	}
}
