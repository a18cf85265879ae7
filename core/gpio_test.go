package core

import "testing"

var allPorts = []PortID{Port1, Port2, Port3}

func TestOutputWriteRead(t *testing.T) {
	Reset()
	for _, port := range allPorts {
		for index := Pin0; index <= Pin7; index++ {
			out := NewOutput(port, index)

			out.Write(High)
			if s := out.State(); s != High {
				t.Errorf("%s: expected high after Write(High), got %s", out, s)
			}

			out.Write(Low)
			if s := out.State(); s != Low {
				t.Errorf("%s: expected low after Write(Low), got %s", out, s)
			}
		}
	}
}

func TestOutputToggleInvolution(t *testing.T) {
	Reset()
	for _, port := range allPorts {
		for index := Pin0; index <= Pin7; index++ {
			out := NewOutput(port, index)
			for _, initial := range []State{Low, High} {
				out.Write(initial)
				out.Toggle()
				if out.State() == initial {
					t.Errorf("%s: toggle did not change state", out)
				}
				out.Toggle()
				if s := out.State(); s != initial {
					t.Errorf("%s: expected %s after two toggles, got %s", out, initial, s)
				}
			}
		}
	}
}

func TestOutputPort1Pin0(t *testing.T) {
	Reset()
	regs := Lookup(Port1)
	regs.Sel.Set(0x01)
	regs.Sel2.Set(0x01)

	out := NewOutput(Port1, Pin0)
	if !regs.Dir.HasBits(0x01) {
		t.Error("P1DIR bit0 should be set")
	}
	if regs.Sel.HasBits(0x01) || regs.Sel2.HasBits(0x01) {
		t.Error("P1SEL/P1SEL2 bit0 should be cleared")
	}

	out.Write(High)
	if regs.Out.Get()&0x01 != 0x01 {
		t.Error("P1OUT bit0 should be set after Write(High)")
	}

	out.Toggle()
	if regs.Out.Get()&0x01 != 0 {
		t.Error("P1OUT bit0 should be cleared after Toggle")
	}
}

func TestOutputLeavesOtherBits(t *testing.T) {
	Reset()
	regs := Lookup(Port1)
	regs.Out.Set(0xF0)

	out := NewOutput(Port1, Pin2)
	out.High()
	out.Toggle()
	out.Set(true)

	if got := regs.Out.Get(); got != 0xF4 {
		t.Errorf("Expected P1OUT=0xF4, got 0x%02X", got)
	}
	if got := regs.Dir.Get(); got != 0x04 {
		t.Errorf("Expected P1DIR=0x04, got 0x%02X", got)
	}
}

func TestOutputClearsCrystalSelect(t *testing.T) {
	Reset()
	regs := Lookup(Port2)
	if regs.Sel.Get() != 0xC0 {
		t.Fatalf("Expected P2SEL reset value 0xC0, got 0x%02X", regs.Sel.Get())
	}

	NewOutput(Port2, Pin6)
	if got := regs.Sel.Get(); got != 0x80 {
		t.Errorf("Expected P2SEL=0x80, got 0x%02X", got)
	}
}

func TestOutputInitialState(t *testing.T) {
	Reset()
	out := NewOutputState(Port3, Pin4, High)
	if s := out.State(); s != High {
		t.Errorf("Expected high, got %s", s)
	}
	if !Lookup(Port3).Dir.HasBits(Pin4.Mask()) {
		t.Error("P3DIR bit4 should be set")
	}
}

func TestInputPort2Pin3(t *testing.T) {
	Reset()
	regs := Lookup(Port2)
	regs.Dir.Set(0xFF)
	regs.Sel2.Set(0xFF)

	in := NewInput(Port2, Pin3)
	mask := Pin3.Mask()

	if regs.Dir.HasBits(mask) {
		t.Error("P2DIR bit3 should be cleared")
	}
	if regs.Sel.HasBits(mask) || regs.Sel2.HasBits(mask) {
		t.Error("P2SEL/P2SEL2 bit3 should be cleared")
	}
	if !regs.Out.HasBits(mask) {
		t.Error("P2OUT bit3 should be set (pull-up)")
	}
	if !regs.Ren.HasBits(mask) {
		t.Error("P2REN bit3 should be set")
	}
	if got := regs.Dir.Get(); got != 0xF7 {
		t.Errorf("Other P2DIR bits changed: 0x%02X", got)
	}

	if s := in.State(); s != High {
		t.Errorf("Pulled-up input should read high, got %s", s)
	}
}

func TestInputAllPinsPulledUp(t *testing.T) {
	Reset()
	for _, port := range allPorts {
		regs := Lookup(port)
		for index := Pin0; index <= Pin7; index++ {
			in := NewInput(port, index)
			mask := index.Mask()
			if regs.Dir.HasBits(mask) || !regs.Ren.HasBits(mask) || !regs.Out.HasBits(mask) {
				t.Errorf("%s: not configured as pulled-up input", in)
			}
		}
	}
}

func TestInputFollowsExternalDrive(t *testing.T) {
	Reset()
	in := NewInput(Port1, Pin5)

	Drive(Port1, Pin5, Low)
	if s := in.State(); s != Low {
		t.Errorf("Expected low while driven low, got %s", s)
	}

	Release(Port1, Pin5)
	if s := in.State(); s != High {
		t.Errorf("Expected pull-up to restore high, got %s", s)
	}
}

func TestInputPullDown(t *testing.T) {
	Reset()
	in := NewInputPull(Port3, Pin1, PullDown)
	regs := Lookup(Port3)

	if !regs.Ren.HasBits(Pin1.Mask()) {
		t.Error("P3REN bit1 should be set")
	}
	if regs.Out.HasBits(Pin1.Mask()) {
		t.Error("P3OUT bit1 should be cleared (pull-down)")
	}
	if s := in.State(); s != Low {
		t.Errorf("Pulled-down input should read low, got %s", s)
	}

	Drive(Port3, Pin1, High)
	if s := in.State(); s != High {
		t.Errorf("Expected high while driven high, got %s", s)
	}
}

func TestRepurposePin(t *testing.T) {
	Reset()
	out := NewOutput(Port1, Pin6)
	out.Low()

	in := NewInput(Port1, Pin6)
	if Lookup(Port1).Dir.HasBits(Pin6.Mask()) {
		t.Error("P1DIR bit6 should be cleared after building an input")
	}
	if s := in.State(); s != High {
		t.Errorf("Expected pulled-up high, got %s", s)
	}
}

func TestPinMask(t *testing.T) {
	for index := Pin0; index <= Pin7; index++ {
		if index.Mask() != 1<<index {
			t.Errorf("Pin%d mask = 0x%02X", index, index.Mask())
		}
	}
	if Pin(9).Mask() != 0x02 {
		t.Errorf("Out-of-range index should wrap, got 0x%02X", Pin(9).Mask())
	}
}

func TestHandleString(t *testing.T) {
	Reset()
	if s := NewOutput(Port1, Pin0).String(); s != "P1.0" {
		t.Errorf("Expected P1.0, got %s", s)
	}
	if s := NewInput(Port2, Pin7).String(); s != "P2.7" {
		t.Errorf("Expected P2.7, got %s", s)
	}
}

func TestSnapshot(t *testing.T) {
	Reset()
	NewOutputState(Port1, Pin0, High)
	NewInterruptInput(IRQPort1, Pin3).Arm(FallingEdge)

	s := Snapshot(Port1)
	if s.Dir != 0x01 || s.Out != 0x09 || s.Ren != 0x08 {
		t.Errorf("Unexpected snapshot: %+v", s)
	}
	// P1.0 rising when it started driving latched bit0; arming cleared bit3
	if s.IE != 0x08 || s.IES != 0x08 || s.IFG != 0x01 {
		t.Errorf("Unexpected interrupt registers: %+v", s)
	}

	want := "P1 IN=09 OUT=09 DIR=01 SEL=00 SEL2=00 REN=08 IE=08 IES=08 IFG=01"
	if got := s.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if got := Snapshot(Port3).String(); got != "P3 IN=00 OUT=00 DIR=00 SEL=00 SEL2=00 REN=00" {
		t.Errorf("Unexpected Port3 snapshot %q", got)
	}
}

func TestOutputStateSingleCriticalSection(t *testing.T) {
	Reset()
	regs := Lookup(Port1)
	outHook, dirHook := regs.Out.settle, regs.Dir.settle
	defer func() {
		regs.Out.settle, regs.Dir.settle = outHook, dirHook
	}()

	var order []string
	regs.Out.settle = func() {
		if irqDepth == 0 {
			t.Error("P1OUT written outside a critical section")
		}
		order = append(order, "out")
		outHook()
	}
	regs.Dir.settle = func() {
		if irqDepth == 0 {
			t.Error("P1DIR written outside a critical section")
		}
		order = append(order, "dir")
		dirHook()
	}

	NewOutputState(Port1, Pin4, High)

	if len(order) != 2 || order[0] != "out" || order[1] != "dir" {
		t.Errorf("Expected latch before direction, got %v", order)
	}
	if irqDepth != 0 {
		t.Errorf("Critical section left open, depth %d", irqDepth)
	}
}

func TestOutputStateNoGlitch(t *testing.T) {
	Reset()
	regs := Lookup(Port1)
	regs.Out.Set(Pin4.Mask()) // stale latch
	regs.IFG.Set(0)

	// PxIES=0: a stale high driven first would latch a rising edge
	out := NewOutputState(Port1, Pin4, Low)
	if regs.IFG.HasBits(Pin4.Mask()) {
		t.Error("Pin drove the stale latch level before the initial level")
	}
	if s := out.State(); s != Low {
		t.Errorf("Expected low, got %s", s)
	}
}
