package circuit

// Design is the build context that parts and nets register into as they
// are constructed. Each load owns its own Design; there is no ambient
// global registry.
type Design struct {
	Parts map[string]*Part
	Nets  []*Net
}

// NewDesign creates an empty design
func NewDesign() *Design {
	return &Design{
		Parts: make(map[string]*Part),
	}
}

func (d *Design) addPart(p *Part) {
	d.Parts[p.Refdes] = p
}

func (d *Design) addNet(n *Net) {
	d.Nets = append(d.Nets, n)
}

// NetByName finds a registered net by name. Returns nil if absent.
func (d *Design) NetByName(name string) *Net {
	for _, n := range d.Nets {
		if n.Name == name {
			return n
		}
	}
	return nil
}
