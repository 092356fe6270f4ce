package samd21

import "testing"

func TestVariantCapabilities(t *testing.T) {
	tests := []struct {
		variant string
		has     []Peripheral
		lacks   []Peripheral
		wantErr bool
	}{
		{"ATSAMD21E18A", []Peripheral{SERCOM3, TC5, DSU}, []Peripheral{SERCOM4, SERCOM5, TC6, SBMATRIX}, false},
		{"ATSAMD21G18A", []Peripheral{SERCOM4, SERCOM5}, []Peripheral{TC6, TC7, SBMATRIX}, false},
		{"samd21j17a", []Peripheral{SERCOM5, TC6, TC7}, []Peripheral{SBMATRIX}, false},
		{"ATSAMD21X18A", nil, nil, true},
		{"ATSAMD51J19A", nil, nil, true},
		{"", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			s, err := VariantCapabilities(tt.variant)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			for _, p := range tt.has {
				if !s.Has(p) {
					t.Errorf("missing %s", p)
				}
			}
			for _, p := range tt.lacks {
				if s.Has(p) {
					t.Errorf("unexpected %s", p)
				}
			}
		})
	}
}

func TestSetListOrder(t *testing.T) {
	s, err := ParseSet("wdt, eic GCLK,dsu")
	if err != nil {
		t.Fatalf("ParseSet: %v", err)
	}
	if got := s.String(); got != "DSU,EIC,GCLK,WDT" {
		t.Errorf("String = %q, want DSU,EIC,GCLK,WDT", got)
	}
	if _, err := ParseSet("EIC,FOO"); err == nil {
		t.Error("ParseSet accepted an unknown peripheral")
	}

	caps, _ := VariantCapabilities(DefaultVariant)
	both := caps.Intersect(NewSet(EIC, SBMATRIX, TC7))
	if got := both.String(); got != "EIC" {
		t.Errorf("Intersect = %q, want EIC", got)
	}
}

func TestIsOptional(t *testing.T) {
	if !IsOptional(SBMATRIX) {
		t.Error("SBMATRIX should be optional")
	}
	for _, p := range corePeripherals {
		if IsOptional(p) {
			t.Errorf("%s should be reported by default", p)
		}
	}
}

func TestBlockBases(t *testing.T) {
	if SERCOMBase(5) != 0x42001C00 {
		t.Errorf("SERCOM5 = 0x%08X", SERCOMBase(5))
	}
	if TCCBase(2) != 0x42002800 {
		t.Errorf("TCC2 = 0x%08X", TCCBase(2))
	}
	if TCBase(7) != 0x42003C00 {
		t.Errorf("TC7 = 0x%08X", TCBase(7))
	}
}
