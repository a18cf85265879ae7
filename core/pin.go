package core

// Pin is the index of a pin within its port (0-7)
type Pin uint8

const (
	Pin0 Pin = iota
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
)

// Mask returns the single-bit register mask of the pin.
// The index is taken modulo 8, so the mask never has more than one bit.
func (p Pin) Mask() uint8 {
	return 1 << (p & 7)
}

// State is the digital level of a pin
type State uint8

const (
	Low State = iota
	High
)

func (s State) String() string {
	if s == High {
		return "high"
	}
	return "low"
}

// Edge selects the transition that latches the interrupt flag
type Edge uint8

const (
	FallingEdge Edge = iota // high-to-low, PxIES = 1
	RisingEdge              // low-to-high, PxIES = 0
)

func (e Edge) String() string {
	if e == RisingEdge {
		return "rising"
	}
	return "falling"
}

// Pull selects the internal resistor direction of an input
type Pull uint8

const (
	PullUp Pull = iota
	PullDown
)

// pin is the state shared by every handle: the port's registers and
// the bit of this pin. Direction is fixed when the handle is built.
type pin struct {
	regs  *Registers
	mask  uint8
	port  PortID
	index Pin
}

func newPin(port PortID, index Pin) pin {
	return pin{
		regs:  Lookup(port),
		mask:  index.Mask(),
		port:  port,
		index: index & 7,
	}
}

// label formats the pin as "P1.0"
func (p pin) label() string {
	return p.port.String() + "." + itoa(int(p.index))
}

// readState samples PxIN. PxIN follows the pad in both directions, so this
// also reads back outputs.
func readState(p pin) State {
	if p.regs.In.HasBits(p.mask) {
		return High
	}
	return Low
}

// armInterrupt enables the pin interrupt for the given edge and clears
// any pending flag. Only edges after the return latch PxIFG.
func armInterrupt(p pin, edge Edge) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	p.regs.IE.SetBits(p.mask)
	if edge == FallingEdge {
		p.regs.IES.SetBits(p.mask)
	} else {
		p.regs.IES.ClearBits(p.mask)
	}
	p.regs.IFG.ClearBits(p.mask)

	if debugEnabled {
		DebugPrintln("[GPIO] " + p.label() + " irq " + edge.String())
	}
}

func disarmInterrupt(p pin) {
	p.regs.IE.ClearBits(p.mask)
}

func pending(p pin) bool {
	return p.regs.IFG.HasBits(p.mask)
}

func clearPending(p pin) {
	p.regs.IFG.ClearBits(p.mask)
}
