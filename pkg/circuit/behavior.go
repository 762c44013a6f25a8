package circuit

// DefaultRefdesPrefix is the reference-designator prefix used when a part
// template does not declare one.
const DefaultRefdesPrefix = "U"

// Refdes prefixes of the built-in two-terminal behaviors
const (
	ResistorPrefix  = "R"
	CapacitorPrefix = "C"
)

// Behavior tags a part with one of the built-in behavior specializations.
// The set is closed: parts are either generic or one of the two-terminal
// templates the library ships with.
type Behavior int

const (
	Generic Behavior = iota
	TwoTerminalResistor
	TwoTerminalCapacitor
)

func (b Behavior) String() string {
	switch b {
	case TwoTerminalResistor:
		return "resistor"
	case TwoTerminalCapacitor:
		return "capacitor"
	}
	return "generic"
}

// BehaviorForPrefix resolves the behavior specialization for a part with
// the given refdes prefix and pin count. Only two-pin parts with the "R"
// or "C" prefix specialize; everything else stays generic.
func BehaviorForPrefix(prefix string, pinCount int) Behavior {
	if pinCount != 2 {
		return Generic
	}
	switch prefix {
	case ResistorPrefix:
		return TwoTerminalResistor
	case CapacitorPrefix:
		return TwoTerminalCapacitor
	}
	return Generic
}
