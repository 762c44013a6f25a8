package netlist

import (
	"fmt"
	"strings"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/circuit"
)

// Field names the netlist promotes to dedicated template attributes
const (
	fieldReference = "Reference"
	fieldValue     = "Value"
	fieldFootprint = "Footprint"
)

// PinDef describes one logical pin of a part template: the physical pin
// numbers backing it and its name aliases, both already tokenized.
type PinDef struct {
	Numbers []string
	Names   []string
	Type    string
}

// PartTemplate is the reusable description of a catalog part, extracted
// from one libpart entry. Identity is the (Lib, Part) pair.
type PartTemplate struct {
	Lib          string
	Part         string
	Description  string
	RefdesPrefix string
	Value        string
	Package      string
	Pins         []PinDef
	Fields       map[string]string // residual fields, kept for provenance
	Behavior     circuit.Behavior
}

// Matches reports whether the template describes the given library part
func (t *PartTemplate) Matches(lib, part string) bool {
	return t.Lib == lib && t.Part == part
}

// Instantiate builds a concrete part from the template and registers it
// in the design. The pin layout is copied; the package defaults to the
// template's until the component overrides it.
func (t *PartTemplate) Instantiate(d *circuit.Design, refdes, value string) *circuit.Part {
	p := circuit.NewPart(d, refdes, value)
	p.RefdesPrefix = t.RefdesPrefix
	p.Package = t.Package
	p.Behavior = t.Behavior
	p.Description = t.Description
	for _, pin := range t.Pins {
		p.AddPin(pin.Numbers, pin.Names)
	}
	return p
}

// buildCatalog extracts one template per libpart entry, in declaration
// order. Lookups stay linear scans; library sections are small.
func buildCatalog(root Index) ([]*PartTemplate, error) {
	libparts, err := root.Get("libparts")
	if err != nil {
		return nil, err
	}

	var catalog []*PartTemplate
	for _, entry := range libparts.FindAll("libpart") {
		tpl, err := readTemplate(entry)
		if err != nil {
			return nil, fmt.Errorf("reading libpart: %w", err)
		}
		catalog = append(catalog, tpl)
	}
	return catalog, nil
}

// namedField is one (name, value) entry of a libpart's fields list,
// order preserved as declared.
type namedField struct {
	name  string
	value string
}

func readTemplate(entry Index) (*PartTemplate, error) {
	lib, err := requireValue(entry, "lib")
	if err != nil {
		return nil, err
	}
	part, err := requireValue(entry, "part")
	if err != nil {
		return nil, err
	}
	description, err := requireValue(entry, "description")
	if err != nil {
		return nil, err
	}

	fields, err := readFields(entry)
	if err != nil {
		return nil, err
	}

	pins, err := readPins(entry)
	if err != nil {
		return nil, err
	}

	tpl := &PartTemplate{
		Lib:          lib,
		Part:         part,
		Description:  description,
		RefdesPrefix: circuit.DefaultRefdesPrefix,
		Fields:       make(map[string]string),
		Pins:         pins,
	}

	// Pop the well-known fields; everything left is residual and gets
	// folded into the description for traceability.
	var residual []namedField
	for _, f := range fields {
		switch f.name {
		case fieldReference:
			tpl.RefdesPrefix = f.value
		case fieldValue:
			tpl.Value = f.value
		case fieldFootprint:
			tpl.Package = f.value
		default:
			tpl.Fields[f.name] = f.value
			residual = append(residual, f)
		}
	}

	if len(residual) > 0 {
		var sb strings.Builder
		sb.WriteString(tpl.Description)
		sb.WriteString("\n")
		for _, f := range residual {
			sb.WriteString(fmt.Sprintf("\n%s: %s", f.name, f.value))
		}
		tpl.Description = sb.String()
	}

	tpl.Behavior = circuit.BehaviorForPrefix(tpl.RefdesPrefix, len(tpl.Pins))

	return tpl, nil
}

func readFields(entry Index) ([]namedField, error) {
	fieldsIdx, err := entry.Get("fields")
	if err != nil {
		return nil, err
	}

	var fields []namedField
	for _, f := range fieldsIdx.FindAll("field") {
		name, err := requireValue(f, "name")
		if err != nil {
			return nil, err
		}
		fields = append(fields, namedField{name: name, value: f.Text(2)})
	}
	return fields, nil
}

func readPins(entry Index) ([]PinDef, error) {
	pinsIdx, err := entry.Get("pins")
	if err != nil {
		return nil, err
	}

	var pins []PinDef
	for _, p := range pinsIdx.FindAll("pin") {
		num, err := requireValue(p, "num")
		if err != nil {
			return nil, err
		}
		name, err := requireValue(p, "name")
		if err != nil {
			return nil, err
		}
		pinType, err := requireValue(p, "type")
		if err != nil {
			return nil, err
		}

		name = canonicalPinName(name, num)
		pins = append(pins, PinDef{
			Numbers: splitPinTokens(num),
			Names:   splitPinTokens(name),
			Type:    pinType,
		})
	}
	return pins, nil
}

// requireValue resolves the (key value) child and returns its payload
func requireValue(x Index, key string) (string, error) {
	sub, err := x.Get(key)
	if err != nil {
		return "", err
	}
	return sub.Value(), nil
}
