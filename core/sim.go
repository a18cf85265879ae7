//go:build !tinygo

package core

// Pad model used when the layer runs under regular Go.
// It keeps PxIN consistent with the rest of the port the way the
// pad logic does on silicon, and latches PxIFG on input edges.

// pad tracks what is connected to the pins of one port from outside
type pad struct {
	driven uint8 // bits driven by an external source
	level  uint8 // levels of the driven bits
}

var pads [len(portRegisters)]pad

func init() {
	for i := range portRegisters {
		port := Port1 + PortID(i)
		regs := &portRegisters[i]
		hook := func() { settle(port) }
		regs.Out.settle = hook
		regs.Dir.settle = hook
		regs.Ren.settle = hook
	}
	Reset()
}

// Reset applies power-on register values and disconnects all external
// drivers. P2.6 and P2.7 come up as XIN/XOUT (P2SEL = 0xC0).
func Reset() {
	for i := range registerFile {
		registerFile[i].Reg = 0
	}
	irqSink.Reg = 0
	pads = [len(portRegisters)]pad{}
	Lookup(Port2).Sel.Reg = 0xC0
}

// Drive connects an external source to a pin at the given level.
// It only shows on PxIN while the pin is an input.
func Drive(port PortID, pin Pin, level State) {
	p := padOf(port)
	mask := pin.Mask()
	p.driven |= mask
	if level == High {
		p.level |= mask
	} else {
		p.level &^= mask
	}
	settle(port)
}

// Release disconnects any external source from a pin
func Release(port PortID, pin Pin) {
	p := padOf(port)
	mask := pin.Mask()
	p.driven &^= mask
	p.level &^= mask
	settle(port)
}

func padOf(port PortID) *pad {
	if port < Port1 || port > Port3 {
		port = Port3
	}
	return &pads[port-Port1]
}

// settle recomputes PxIN for a port and latches edges into PxIFG
func settle(port PortID) {
	regs := Lookup(port)
	p := padOf(port)

	dir := regs.Dir.Reg
	out := regs.Out.Reg
	ren := regs.Ren.Reg
	prev := regs.In.Reg

	next := out & dir
	next |= p.level & p.driven &^ dir
	next |= out & ren &^ dir &^ p.driven
	// Unconnected inputs without a pull resistor keep their last level
	next |= prev &^ (dir | p.driven | ren)

	regs.In.Reg = next
	if Capable(port) {
		latchEdges(regs, prev, next)
	}
}

// latchEdges sets PxIFG for transitions matching PxIES.
// The flag latches whether or not PxIE is set.
func latchEdges(regs *Registers, prev, next uint8) {
	fell := prev &^ next
	rose := next &^ prev
	ies := regs.IES.Reg
	regs.IFG.Reg |= (fell & ies) | (rose &^ ies)
}
