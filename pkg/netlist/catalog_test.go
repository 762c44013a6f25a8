package netlist

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/circuit"
)

func buildTestCatalog(t *testing.T, input string) []*PartTemplate {
	t.Helper()
	catalog, err := buildCatalog(mustParse(t, input))
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return catalog
}

func TestCatalogResistorTemplate(t *testing.T) {
	catalog := buildTestCatalog(t, `(export
		(libparts
			(libpart (lib Device) (part R)
				(description "Resistor")
				(fields
					(field (name Reference) R)
					(field (name Value) R)
					(field (name Footprint) "Resistor_SMD:R_0402")
					(field (name Vendor) Acme))
				(pins
					(pin (num 1) (name ~) (type passive))
					(pin (num 2) (name ~) (type passive))))))`)

	if len(catalog) != 1 {
		t.Fatalf("Expected 1 template, got %d", len(catalog))
	}

	tpl := catalog[0]
	if !tpl.Matches("Device", "R") {
		t.Error("Expected template to match Device:R")
	}
	if tpl.RefdesPrefix != "R" {
		t.Errorf("Expected refdes prefix 'R', got %q", tpl.RefdesPrefix)
	}
	if tpl.Value != "R" {
		t.Errorf("Expected default value 'R', got %q", tpl.Value)
	}
	if tpl.Package != "Resistor_SMD:R_0402" {
		t.Errorf("Expected package from Footprint field, got %q", tpl.Package)
	}
	if tpl.Behavior != circuit.TwoTerminalResistor {
		t.Errorf("Expected resistor specialization, got %v", tpl.Behavior)
	}

	// Well-known fields are popped; the vendor field stays residual and
	// is folded into the description.
	if _, ok := tpl.Fields[fieldReference]; ok {
		t.Error("Expected Reference field to be popped from residual map")
	}
	if tpl.Fields["Vendor"] != "Acme" {
		t.Errorf("Expected residual Vendor field, got %q", tpl.Fields["Vendor"])
	}
	if !strings.Contains(tpl.Description, "Vendor: Acme") {
		t.Errorf("Expected description to retain residual fields, got %q", tpl.Description)
	}
	if !strings.HasPrefix(tpl.Description, "Resistor") {
		t.Errorf("Expected description to start with the libpart description, got %q", tpl.Description)
	}
}

func TestCatalogUnnamedPins(t *testing.T) {
	catalog := buildTestCatalog(t, `(export
		(libparts
			(libpart (lib Device) (part C)
				(description "Capacitor")
				(fields
					(field (name Reference) C))
				(pins
					(pin (num 1) (name ~) (type passive))
					(pin (num 2) (name ~) (type passive))))))`)

	tpl := catalog[0]
	if tpl.Behavior != circuit.TwoTerminalCapacitor {
		t.Errorf("Expected capacitor specialization, got %v", tpl.Behavior)
	}
	if got := tpl.Pins[0].Names; !reflect.DeepEqual(got, []string{"P1"}) {
		t.Errorf("Expected unnamed pin 1 to canonicalize to [P1], got %v", got)
	}
	if got := tpl.Pins[1].Names; !reflect.DeepEqual(got, []string{"P2"}) {
		t.Errorf("Expected unnamed pin 2 to canonicalize to [P2], got %v", got)
	}
}

func TestCatalogGangPinNumbers(t *testing.T) {
	catalog := buildTestCatalog(t, `(export
		(libparts
			(libpart (lib Connector) (part Header)
				(description "Header")
				(fields)
				(pins
					(pin (num "1,3") (name GND) (type passive))
					(pin (num 2) (name SIG) (type passive))))))`)

	tpl := catalog[0]
	if got := tpl.Pins[0].Numbers; !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("Expected gang pin numbers [1 3], got %v", got)
	}
	if tpl.RefdesPrefix != circuit.DefaultRefdesPrefix {
		t.Errorf("Expected default prefix %q without Reference field, got %q",
			circuit.DefaultRefdesPrefix, tpl.RefdesPrefix)
	}
	if tpl.Behavior != circuit.Generic {
		t.Errorf("Expected generic behavior, got %v", tpl.Behavior)
	}
}

func TestCatalogPinNameAliases(t *testing.T) {
	catalog := buildTestCatalog(t, `(export
		(libparts
			(libpart (lib MCU) (part Micro)
				(description "Microcontroller")
				(fields)
				(pins
					(pin (num 1) (name "PA0/ADC0") (type bidirectional))))))`)

	pin := catalog[0].Pins[0]
	if !reflect.DeepEqual(pin.Names, []string{"PA0", "ADC0"}) {
		t.Errorf("Expected alias set [PA0 ADC0], got %v", pin.Names)
	}
	if pin.Type != "bidirectional" {
		t.Errorf("Expected electrical type retained, got %q", pin.Type)
	}
}

func TestCatalogMissingDescriptionFails(t *testing.T) {
	_, err := buildCatalog(mustParse(t, `(export
		(libparts
			(libpart (lib Device) (part R)
				(fields)
				(pins))))`))
	if err == nil {
		t.Fatal("Expected error for libpart without description, got nil")
	}

	var notFound *KeyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected KeyNotFoundError, got %T: %v", err, err)
	}
	if notFound.Key != "description" {
		t.Errorf("Expected missing key 'description', got %q", notFound.Key)
	}
}

func TestCatalogMissingSectionFails(t *testing.T) {
	_, err := buildCatalog(mustParse(t, `(export (components))`))
	if err == nil {
		t.Fatal("Expected error for missing libparts section, got nil")
	}

	var notFound *KeyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected KeyNotFoundError, got %T", err)
	}
}
