package circuit

import "testing"

func TestDesignRegistration(t *testing.T) {
	d := NewDesign()

	r1 := NewPart(d, "R1", "10k")
	n := NewNet(d, "GND")

	if d.Parts["R1"] != r1 {
		t.Error("Expected R1 registered in design")
	}
	if len(d.Nets) != 1 || d.Nets[0] != n {
		t.Error("Expected GND registered in design")
	}
	if d.NetByName("GND") != n {
		t.Error("NetByName('GND') did not find the net")
	}
	if d.NetByName("VCC") != nil {
		t.Error("NetByName('VCC') should return nil")
	}
}

func TestDuplicateRefdesOverwrites(t *testing.T) {
	d := NewDesign()

	NewPart(d, "R1", "10k")
	second := NewPart(d, "R1", "22k")

	if d.Parts["R1"] != second {
		t.Error("Expected later part to replace earlier one under same refdes")
	}
	if len(d.Parts) != 1 {
		t.Errorf("Expected 1 part, got %d", len(d.Parts))
	}
}

func TestPinByNumberGang(t *testing.T) {
	d := NewDesign()
	u1 := NewPart(d, "U1", "")
	gnd := u1.AddPin([]string{"3", "7"}, []string{"GND"})
	u1.AddPin([]string{"1"}, []string{"VCC"})

	if u1.PinByNumber("7") != gnd {
		t.Error("Expected physical pin 7 to resolve to the GND logical pin")
	}
	if u1.PinByNumber("3") != gnd {
		t.Error("Expected physical pin 3 to resolve to the GND logical pin")
	}
	if u1.PinByNumber("9") != nil {
		t.Error("Expected unknown pin number to resolve to nil")
	}
}

func TestNetConnectAndContains(t *testing.T) {
	d := NewDesign()
	r1 := NewPart(d, "R1", "10k")
	a := r1.AddPin([]string{"1"}, []string{"A"})
	b := r1.AddPin([]string{"2"}, []string{"B"})

	n := NewNet(d, "N1")
	n.Connect(a)

	if !n.Contains(a) {
		t.Error("Expected net to contain pin A")
	}
	if n.Contains(b) {
		t.Error("Expected net not to contain pin B")
	}
	n.Connect(b)
	if len(n.Connections()) != 2 {
		t.Errorf("Expected 2 connections, got %d", len(n.Connections()))
	}
}

func TestBehaviorForPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		pins   int
		want   Behavior
	}{
		{"R", 2, TwoTerminalResistor},
		{"C", 2, TwoTerminalCapacitor},
		{"R", 3, Generic},
		{"U", 2, Generic},
		{"C", 1, Generic},
	}

	for _, tt := range tests {
		if got := BehaviorForPrefix(tt.prefix, tt.pins); got != tt.want {
			t.Errorf("BehaviorForPrefix(%q, %d) = %v, want %v", tt.prefix, tt.pins, got, tt.want)
		}
	}
}

func TestPinString(t *testing.T) {
	d := NewDesign()
	r1 := NewPart(d, "R1", "10k")
	pin := r1.AddPin([]string{"1"}, []string{"A"})

	if got := pin.String(); got != "R1.1" {
		t.Errorf("Expected pin string 'R1.1', got %q", got)
	}
	if pin.Name() != "A" {
		t.Errorf("Expected pin name 'A', got %q", pin.Name())
	}
}
