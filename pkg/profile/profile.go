// Package profile loads board profiles: the chip variant fitted to a board,
// an optional override of the peripheral set, and the board's pin table.
//
//	(profile "arduino_zero"
//	  (variant "ATSAMD21G18A")
//	  (peripherals DSU EIC GCLK ...)
//	  (pin "D0/RX" PA11 ("EIC:11" "AIN19/X3" "SERCOM0:3" - ...)))
//
// A "-" in a function list marks an entry that exists but is not named.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// ErrNoProfile is returned when the input holds no (profile ...) form.
var ErrNoProfile = errors.New("profile: no (profile ...) form")

// Profile describes one board.
type Profile struct {
	Name    string
	Variant string
	// Peripherals overrides the variant's capability set when non-nil.
	Peripherals samd21.Set
	Pins        []samd21.Pin
}

// Default returns the built-in Arduino Zero profile.
func Default() *Profile {
	return &Profile{
		Name:    "arduino_zero",
		Variant: samd21.DefaultVariant,
		Pins:    samd21.ArduinoZeroPins,
	}
}

// Capabilities returns the peripheral set of the board.
func (p *Profile) Capabilities() (samd21.Set, error) {
	if p.Peripherals != nil {
		return p.Peripherals, nil
	}
	v := p.Variant
	if v == "" {
		v = samd21.DefaultVariant
	}
	return samd21.VariantCapabilities(v)
}

// Load reads a profile file.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseString parses a profile from a string.
func ParseString(s string) (*Profile, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads the first (profile ...) form from r.
func Parse(r io.Reader) (*Profile, error) {
	exprs, err := parseSexp(r)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	for _, e := range exprs {
		if l, ok := e.(*List); ok && l.Head() == "profile" {
			return decode(l)
		}
	}
	return nil, ErrNoProfile
}

func atom(s Sexp) (string, bool) {
	switch v := s.(type) {
	case Symbol:
		return string(v), true
	case Quoted:
		return string(v), true
	}
	return "", false
}

func decode(l *List) (*Profile, error) {
	args := l.Args()
	if len(args) == 0 {
		return nil, fmt.Errorf("profile: line %d: missing profile name", l.Line)
	}
	name, ok := atom(args[0])
	if !ok {
		return nil, fmt.Errorf("profile: line %d: profile name must be an atom", l.Line)
	}

	p := &Profile{Name: name}
	seen := make(map[string]bool)
	for _, item := range args[1:] {
		node, ok := item.(*List)
		if !ok {
			return nil, fmt.Errorf("profile: line %d: unexpected atom %s", l.Line, item)
		}
		switch node.Head() {
		case "variant":
			if len(node.Args()) != 1 {
				return nil, fmt.Errorf("profile: line %d: variant takes one name", node.Line)
			}
			p.Variant, _ = atom(node.Args()[0])
			if _, err := samd21.VariantCapabilities(p.Variant); err != nil {
				return nil, fmt.Errorf("profile: line %d: %w", node.Line, err)
			}
		case "peripherals":
			set := make(samd21.Set)
			for _, a := range node.Args() {
				s, _ := atom(a)
				per, err := samd21.ParsePeripheral(s)
				if err != nil {
					return nil, fmt.Errorf("profile: line %d: %w", node.Line, err)
				}
				set[per] = true
			}
			p.Peripherals = set
		case "pin":
			pin, err := decodePin(node)
			if err != nil {
				return nil, err
			}
			if seen[pin.Name] {
				return nil, fmt.Errorf("profile: line %d: duplicate pin %q", node.Line, pin.Name)
			}
			seen[pin.Name] = true
			p.Pins = append(p.Pins, pin)
		default:
			glog.Warningf("profile %s: line %d: ignoring (%s ...)", name, node.Line, node.Head())
		}
	}
	return p, nil
}

func decodePin(node *List) (samd21.Pin, error) {
	args := node.Args()
	if len(args) < 2 || len(args) > 3 {
		return samd21.Pin{}, fmt.Errorf("profile: line %d: pin takes a name, a port and a function list", node.Line)
	}
	name, _ := atom(args[0])
	port, _ := atom(args[1])
	group, index, err := samd21.ParsePort(port)
	if err != nil {
		return samd21.Pin{}, fmt.Errorf("profile: line %d: %w", node.Line, err)
	}

	pin := samd21.Pin{Name: name, Group: group, Index: index}
	if len(args) == 3 {
		funcs, ok := args[2].(*List)
		if !ok {
			return samd21.Pin{}, fmt.Errorf("profile: line %d: function list must be a list", node.Line)
		}
		if len(funcs.Items) > len(pin.Funcs) {
			return samd21.Pin{}, fmt.Errorf("profile: line %d: %d functions, at most %d", node.Line, len(funcs.Items), len(pin.Funcs))
		}
		for i, f := range funcs.Items {
			s, _ := atom(f)
			if s != "-" {
				pin.Funcs[i] = s
			}
		}
	}
	return pin, nil
}

// Write renders p in profile syntax.
func (p *Profile) Write(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(profile %q\n", p.Name)
	if p.Variant != "" {
		fmt.Fprintf(&sb, "  (variant %q)\n", p.Variant)
	}
	if p.Peripherals != nil {
		sb.WriteString("  (peripherals")
		for _, per := range p.Peripherals.List() {
			sb.WriteString(" " + string(per))
		}
		sb.WriteString(")\n")
	}
	for _, pin := range p.Pins {
		fmt.Fprintf(&sb, "  (pin %q %s (", pin.Name, pin.Port())
		n := len(pin.Funcs)
		for n > 0 && pin.Funcs[n-1] == "" {
			n--
		}
		for i, f := range pin.Funcs[:n] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if f == "" {
				sb.WriteByte('-')
			} else {
				fmt.Fprintf(&sb, "%q", f)
			}
		}
		sb.WriteString("))\n")
	}
	sb.WriteString(")\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
