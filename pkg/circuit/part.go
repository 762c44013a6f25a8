// Package circuit holds the in-memory circuit graph: part instances, their
// logical pins, and the nets connecting them. Graph nodes register
// themselves into an explicit Design as they are constructed.
package circuit

import "fmt"

// Part is one placed component instance in a design
type Part struct {
	Refdes       string
	Value        string
	Package      string
	RefdesPrefix string
	Behavior     Behavior
	Description  string
	DefinedAt    string // source file the part was loaded from
	Pins         []*Pin
}

// Pin is one logical connection point on a part. A logical pin may be
// backed by several physical pin numbers (gang pins).
type Pin struct {
	Part    *Part
	Numbers []string
	Names   []string
}

// NewPart constructs a part and registers it in the design. A part
// registered under an already-used refdes replaces the earlier one.
func NewPart(d *Design, refdes, value string) *Part {
	p := &Part{
		Refdes:       refdes,
		Value:        value,
		RefdesPrefix: DefaultRefdesPrefix,
	}
	d.addPart(p)
	return p
}

// AddPin appends a logical pin backed by the given physical numbers and
// name aliases. Declaration order is preserved.
func (p *Part) AddPin(numbers, names []string) *Pin {
	pin := &Pin{
		Part:    p,
		Numbers: append([]string(nil), numbers...),
		Names:   append([]string(nil), names...),
	}
	p.Pins = append(p.Pins, pin)
	return pin
}

// PinByNumber finds the logical pin owning the given physical pin number.
// Returns nil if no pin matches.
func (p *Part) PinByNumber(number string) *Pin {
	for _, pin := range p.Pins {
		for _, n := range pin.Numbers {
			if n == number {
				return pin
			}
		}
	}
	return nil
}

func (p *Part) String() string {
	return p.Refdes
}

// Name returns the pin's primary name alias
func (pin *Pin) Name() string {
	if len(pin.Names) > 0 {
		return pin.Names[0]
	}
	return ""
}

func (pin *Pin) String() string {
	number := ""
	if len(pin.Numbers) > 0 {
		number = pin.Numbers[0]
	}
	return fmt.Sprintf("%s.%s", pin.Part, number)
}
