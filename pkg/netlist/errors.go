package netlist

import "fmt"

// KeyNotFoundError reports a required tag missing from a tagged list, or
// a net node referencing a refdes that was never instantiated.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

// AmbiguousKeyError reports a unique-key lookup that matched more than
// one child.
type AmbiguousKeyError struct {
	Key   string
	Count int
}

func (e *AmbiguousKeyError) Error() string {
	return fmt.Sprintf("more than one %q (%d), expected only one", e.Key, e.Count)
}

// PartNotFoundError reports a component whose libsource has no matching
// entry in the libparts catalog.
type PartNotFoundError struct {
	Lib  string
	Part string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("can't find part %s:%s in the libparts loaded from the netlist", e.Lib, e.Part)
}

// PinNotFoundError reports a net node referencing a physical pin number
// that no logical pin of the resolved part carries.
type PinNotFoundError struct {
	Refdes string
	Number string
}

func (e *PinNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find pin numbered %q on %s as the netlist indicates", e.Number, e.Refdes)
}
