package circuit

// Net is a named set of electrically connected logical pins. Nets
// reference pins by identity; they do not own them.
type Net struct {
	Name      string
	DefinedAt string

	connections []*Pin
}

// NewNet constructs a net and registers it in the design
func NewNet(d *Design, name string) *Net {
	n := &Net{Name: name}
	d.addNet(n)
	return n
}

// Connect attaches pins to the net. Callers are expected to check
// Contains first when the source lists the same logical pin more than
// once (physical pin redundancy).
func (n *Net) Connect(pins ...*Pin) {
	n.connections = append(n.connections, pins...)
}

// Contains reports whether the pin is already attached, by identity
func (n *Net) Contains(pin *Pin) bool {
	for _, p := range n.connections {
		if p == pin {
			return true
		}
	}
	return false
}

// Connections returns the attached pins in connection order
func (n *Net) Connections() []*Pin {
	return n.connections
}

func (n *Net) String() string {
	return n.Name
}
