package samd21

import (
	"testing"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

func TestEnumsTotal(t *testing.T) {
	tests := []struct {
		name  string
		enum  regs.Enum
		field regs.Field
	}{
		{"GCLK sources", GCLKSources, GCLKGenCtrlSrc},
		{"GCLK clocks", GCLKClockNames, GCLKClkCtrlID},
		{"EVSYS generators", EVSYSGenerators, EVSYSChannelEvGen},
		{"EVSYS users", EVSYSUsers, EVSYSUserUser},
		{"EVSYS paths", EVSYSPaths, EVSYSChannelPath},
		{"EVSYS edges", EVSYSEdges, EVSYSChannelEdgSel},
		{"EIC senses", EICSenses, EICConfigSense},
		{"NVM sleepprm", NVMCTRLSleepPrm, NVMCTRLCtrlBSleepPrm},
		{"NVM readmode", NVMCTRLReadModes, NVMCTRLCtrlBReadMode},
		{"bootprot", FuseBootProtSizes, FuseBootProt},
		{"eeprom", FuseEEPROMSizes, FuseEEPROMSize},
		{"PM idle", PMIdleLevels, PMSleepIdle},
		{"RTC modes", RTCModes, RTCCtrlMode},
		{"RTC mask", RTCMaskSels, RTCMaskSel},
		{"SERCOM modes", SERCOMModes, SERCOMCtrlAMode},
		{"USART forms", USARTForms, USARTCtrlAForm},
		{"USART chsize", USARTCharSizes, USARTCtrlBChSize},
		{"USART sampr", USARTSampleRates, USARTCtrlASampR},
		{"SPI forms", SPIForms, SPICtrlAForm},
		{"SPI chsize", SPICharSizes, SPICtrlBChSize},
		{"SPI amode", SPIAddrModes, SPICtrlBAMode},
		{"SPI dopo", SPIDataOut, SPICtrlADOPO},
		{"I2C sdahold", I2CSDAHolds, I2CCtrlASDAHold},
		{"I2C speed", I2CSpeeds, I2CCtrlASpeed},
		{"I2C inactout", I2CInactiveTimeouts, I2CCtrlAInactOut},
		{"XOSC gain", XOSCGains, XOSCGain},
		{"XOSC startup", XOSCStartups, XOSCStartup},
		{"XOSC32K startup", XOSC32KStartups, XOSC32KStartup},
		{"OSC32K startup", OSC32KStartups, OSC32KStartup},
		{"OSC8M frange", OSC8MFRanges, OSC8MFRange},
		{"BOD33 action", BOD33Actions, BOD33Action},
		{"DPLL refclk", DPLLRefClocks, DPLLCtrlBRef},
		{"TC modes", TCModes, TCCtrlAMode},
		{"TC wavegen", TCWaveGens, TCCtrlAWaveGen},
		{"TC prescaler", TCPrescalers, TCCtrlAPrescaler},
		{"TC evact", TCEventActions, TCEvCtrlEvAct},
		{"TCC wavegen", TCCWaveGens, TCCWaveWaveGen},
		{"ADC refs", ADCRefs, ADCRefCtrlRefSel},
		{"ADC gain", ADCGains, ADCInputCtrlGain},
		{"ADC muxpos", ADCMuxPos, ADCInputCtrlMuxPos},
		{"DAC refs", DACRefs, DACCtrlBRefSel},
		{"AC muxneg", ACMuxNeg, ACCompCtrlMuxNeg},
		{"DMAC trigact", DMACTrigActions, DMACChCtrlBAct},
		{"DMAC trigsrc", DMACTriggers, DMACChCtrlBTrig},
		{"USB speed", USBSpeeds, USBCtrlBSpdConf},
		{"I2S datasize", I2SDataSizes, I2SSerCtrlDataSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.enum) == 0 {
				t.Fatal("empty table")
			}
			if uint32(len(tt.enum)) > tt.field.Max()+1 {
				t.Fatalf("table has %d entries, field holds %d values", len(tt.enum), tt.field.Max()+1)
			}
			for v := uint32(0); v <= tt.field.Max(); v++ {
				if tt.enum.Label(v) == "" {
					t.Fatalf("value %d decodes to an empty token", v)
				}
			}
		})
	}
}

func TestBankSlots(t *testing.T) {
	want := map[string]int{
		"GCLK.CLKCTRL":  37,
		"GCLK.GENCTRL":  9,
		"GCLK.GENDIV":   9,
		"EVSYS.CHANNEL": 12,
		"EVSYS.USER":    31,
		"DMAC.CHID":     12,
	}
	banks := Banks()
	if len(banks) != len(want) {
		t.Fatalf("Banks() = %d entries, want %d", len(banks), len(want))
	}
	for _, b := range banks {
		if b.Slots != want[b.Name] {
			t.Errorf("%s: %d slots, want %d", b.Name, b.Slots, want[b.Name])
		}
		if uint32(b.Slots-1) > b.Echo.Max() {
			t.Errorf("%s: echo field cannot hold index %d", b.Name, b.Slots-1)
		}
		got, ok := BankBySelect(b.Select)
		if !ok || got != b {
			t.Errorf("BankBySelect(0x%08X) did not return %s", b.Select, b.Name)
		}
	}
	if len(GCLKClockNames) != GCLKNumClocks {
		t.Errorf("GCLK clock names = %d, want %d", len(GCLKClockNames), GCLKNumClocks)
	}
	if len(EVSYSUsers) != EVSYSNumUsers {
		t.Errorf("EVSYS users = %d, want %d", len(EVSYSUsers), EVSYSNumUsers)
	}
}

func TestPACBits(t *testing.T) {
	for i, names := range PACBits {
		if len(names) > 32 {
			t.Errorf("PAC%d: %d names", i, len(names))
		}
		if names[0] != "" {
			t.Errorf("PAC%d: bit 0 should be unused", i)
		}
	}
}
