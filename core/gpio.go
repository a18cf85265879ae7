// Digital GPIO support for MSP430G2xx3 ports
// Builds pin handles over the port control registers
package core

// NewOutput configures a pin as a digital output and returns its handle
func NewOutput(port PortID, index Pin) Output {
	p := newPin(port, index)
	configureOutput(p, false, Low)
	if debugEnabled {
		DebugPrintln("[GPIO] " + p.label() + " output")
	}
	return Output{p: p}
}

// NewOutputState is NewOutput with the output latch loaded before the
// pin starts driving, so the pin never shows the previous level.
func NewOutputState(port PortID, index Pin, initial State) Output {
	p := newPin(port, index)
	configureOutput(p, true, initial)
	if debugEnabled {
		DebugPrintln("[GPIO] " + p.label() + " output " + initial.String())
	}
	return Output{p: p}
}

// NewInput configures a pin as an input with the internal pull-up
func NewInput(port PortID, index Pin) Input {
	return NewInputPull(port, index, PullUp)
}

// NewInputPull configures a pin as an input with the given pull resistor
func NewInputPull(port PortID, index Pin, pull Pull) Input {
	p := newPin(port, index)
	configureInput(p, pull)
	if debugEnabled {
		if pull == PullUp {
			DebugPrintln("[GPIO] " + p.label() + " input pull-up")
		} else {
			DebugPrintln("[GPIO] " + p.label() + " input pull-down")
		}
	}
	return Input{p: p}
}

// NewInterruptInput configures a pulled-up input on an interrupt-capable
// port. The interrupt is not armed until Arm is called.
func NewInterruptInput(port IRQPortID, index Pin) InterruptInput {
	in := NewInput(port.Port(), index)
	return InterruptInput{Input: in, Interrupt: Interrupt{p: in.p}}
}

// NewInterruptInputPull is NewInterruptInput with a chosen pull resistor
func NewInterruptInputPull(port IRQPortID, index Pin, pull Pull) InterruptInput {
	in := NewInputPull(port.Port(), index, pull)
	return InterruptInput{Input: in, Interrupt: Interrupt{p: in.p}}
}

// NewInterruptOutput configures an output on an interrupt-capable port
func NewInterruptOutput(port IRQPortID, index Pin) InterruptOutput {
	out := NewOutput(port.Port(), index)
	return InterruptOutput{Output: out, Interrupt: Interrupt{p: out.p}}
}

// PortSnapshot is a copy of the control registers of one port
type PortSnapshot struct {
	Port PortID
	In   uint8
	Out  uint8
	Dir  uint8
	Sel  uint8
	Sel2 uint8
	Ren  uint8
	IE   uint8
	IES  uint8
	IFG  uint8
}

// Snapshot reads all control registers of a port.
// Interrupt fields stay zero for ports without interrupt registers.
func Snapshot(port PortID) PortSnapshot {
	regs := Lookup(port)
	s := PortSnapshot{
		Port: port,
		In:   regs.In.Get(),
		Out:  regs.Out.Get(),
		Dir:  regs.Dir.Get(),
		Sel:  regs.Sel.Get(),
		Sel2: regs.Sel2.Get(),
		Ren:  regs.Ren.Get(),
	}
	if Capable(port) {
		s.IE = regs.IE.Get()
		s.IES = regs.IES.Get()
		s.IFG = regs.IFG.Get()
	}
	return s
}

func (s PortSnapshot) String() string {
	str := s.Port.String() +
		" IN=" + hex2(s.In) +
		" OUT=" + hex2(s.Out) +
		" DIR=" + hex2(s.Dir) +
		" SEL=" + hex2(s.Sel) +
		" SEL2=" + hex2(s.Sel2) +
		" REN=" + hex2(s.Ren)
	if Capable(s.Port) {
		str += " IE=" + hex2(s.IE) +
			" IES=" + hex2(s.IES) +
			" IFG=" + hex2(s.IFG)
	}
	return str
}
