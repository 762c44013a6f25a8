package netlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/circuit"
	"github.com/Infinite-Blue-1042/pcbdl/pkg/sexp"
)

// NoConnectPrefix is the name prefix KiCad gives auto-generated nets.
// A net with this prefix and a single node is a floating pin, not a
// real connection.
const NoConnectPrefix = "Net-"

// Loader imports netlist exports. Each Load call is an independent
// pipeline; the loader itself keeps no state between calls.
type Loader struct {
	// Log receives non-fatal diagnostics (missing footprints, duplicate
	// reference designators).
	Log *log.Logger

	// NoConnectPrefix overrides the auto-generated net name prefix used
	// by the no-connect filter.
	NoConnectPrefix string
}

// NewLoader creates a loader with the default logger and filter prefix
func NewLoader() *Loader {
	return &Loader{
		Log:             log.Default(),
		NoConnectPrefix: NoConnectPrefix,
	}
}

// Result is one completed load: the instantiated parts keyed by refdes,
// the design the parts and nets registered into, and the raw parsed tree
// kept for inspection.
type Result struct {
	Parts   map[string]*circuit.Part
	Design  *circuit.Design
	Catalog []*PartTemplate
	Tree    *sexp.Node
}

// LoadFile reads and imports a netlist file
func (l *Loader) LoadFile(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return l.Load(file, filename)
}

// Load imports a netlist from r. The source identifier is recorded as
// provenance on every part and net built from it. A failure at any stage
// aborts the whole load; no partial graph is returned.
func (l *Loader) Load(r io.Reader, source string) (*Result, error) {
	tree, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse netlist: %w", err)
	}

	if !tree.IsList() || tree.List.Tag() != "export" {
		return nil, fmt.Errorf("not a KiCad netlist: expected 'export' at root")
	}
	root := NewIndex(tree.List)

	catalog, err := buildCatalog(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build part catalog: %w", err)
	}

	design := circuit.NewDesign()

	if err := l.loadParts(root, catalog, design, source); err != nil {
		return nil, err
	}
	if err := l.loadNets(root, design, source); err != nil {
		return nil, err
	}

	return &Result{
		Parts:   design.Parts,
		Design:  design,
		Catalog: catalog,
		Tree:    tree,
	}, nil
}

func (l *Loader) loadParts(root Index, catalog []*PartTemplate, design *circuit.Design, source string) error {
	components, err := root.Get("components")
	if err != nil {
		return err
	}

	for _, comp := range components.FindAll("comp") {
		libsource, err := comp.Get("libsource")
		if err != nil {
			return err
		}
		lib, err := requireValue(libsource, "lib")
		if err != nil {
			return err
		}
		partName, err := requireValue(libsource, "part")
		if err != nil {
			return err
		}

		var tpl *PartTemplate
		for _, candidate := range catalog {
			if candidate.Matches(lib, partName) {
				tpl = candidate
				break
			}
		}
		if tpl == nil {
			return &PartNotFoundError{Lib: lib, Part: partName}
		}

		refdes, err := requireValue(comp, "ref")
		if err != nil {
			return err
		}
		value, err := requireValue(comp, "value")
		if err != nil {
			return err
		}

		if _, seen := design.Parts[refdes]; seen {
			l.Log.Warn("duplicate reference designator, overwriting earlier part", "refdes", refdes)
		}

		part := tpl.Instantiate(design, refdes, value)

		if footprint, err := comp.Get("footprint"); err == nil {
			part.Package = footprint.Value()
		} else {
			l.Log.Warn("component does not have a footprint defined", "refdes", refdes)
		}

		part.DefinedAt = source
	}

	return nil
}

func (l *Loader) loadNets(root Index, design *circuit.Design, source string) error {
	nets, err := root.Get("nets")
	if err != nil {
		return err
	}

	for _, netEntry := range nets.FindAll("net") {
		name, err := requireValue(netEntry, "name")
		if err != nil {
			return err
		}
		nodes := netEntry.FindAll("node")

		// A single-node net with the auto-generated name prefix is an
		// unconnected pin, not a real net.
		if len(nodes) == 1 && strings.HasPrefix(name, l.NoConnectPrefix) {
			continue
		}

		net := circuit.NewNet(design, name)
		net.DefinedAt = source

		for _, node := range nodes {
			refdes, err := requireValue(node, "ref")
			if err != nil {
				return err
			}
			number, err := requireValue(node, "pin")
			if err != nil {
				return err
			}

			part, ok := design.Parts[refdes]
			if !ok {
				return &KeyNotFoundError{Key: refdes}
			}

			pin := part.PinByNumber(number)
			if pin == nil {
				return &PinNotFoundError{Refdes: refdes, Number: number}
			}

			// The netlist lists physical pins, so the same logical pin
			// can show up more than once per net.
			if !net.Contains(pin) {
				net.Connect(pin)
			}
		}
	}

	return nil
}

// Load imports a netlist with the default loader configuration
func Load(r io.Reader, source string) (*Result, error) {
	return NewLoader().Load(r, source)
}

// LoadFile imports a netlist file with the default loader configuration
func LoadFile(filename string) (*Result, error) {
	return NewLoader().LoadFile(filename)
}
