package core

// PortID identifies one of the 8-pin digital I/O ports
type PortID uint8

const (
	Port1 PortID = 1
	Port2 PortID = 2
	Port3 PortID = 3
)

// IRQPortID identifies a port that has interrupt registers (PxIE, PxIES,
// PxIFG). Interrupt-capable handles can only be built from this type.
type IRQPortID uint8

const (
	IRQPort1 = IRQPortID(Port1)
	IRQPort2 = IRQPortID(Port2)
)

// Port returns the plain port identifier
func (p IRQPortID) Port() PortID {
	return PortID(p)
}

// MSP430G2553 peripheral register addresses (byte access)
const (
	P1IN   = 0x20
	P1OUT  = 0x21
	P1DIR  = 0x22
	P1IFG  = 0x23
	P1IES  = 0x24
	P1IE   = 0x25
	P1SEL  = 0x26
	P1REN  = 0x27
	P1SEL2 = 0x41

	P2IN   = 0x28
	P2OUT  = 0x29
	P2DIR  = 0x2A
	P2IFG  = 0x2B
	P2IES  = 0x2C
	P2IE   = 0x2D
	P2SEL  = 0x2E
	P2REN  = 0x2F
	P2SEL2 = 0x42

	P3REN  = 0x10
	P3IN   = 0x18
	P3OUT  = 0x19
	P3DIR  = 0x1A
	P3SEL  = 0x1B
	P3SEL2 = 0x43
)

// Registers holds the control registers of one port.
// The pointers denote fixed hardware locations and are never freed.
type Registers struct {
	In   *Register // read-only, reflects the pad level in any direction
	Out  *Register // output level, or pull direction for inputs with REN set
	Dir  *Register // 1 = output
	Sel  *Register
	Sel2 *Register
	Ren  *Register // pull resistor enable
	IE   *Register
	IES  *Register // 1 = high-to-low edge
	IFG  *Register
}

// irqSink backs the interrupt fields of ports without interrupt hardware.
// Writes land in RAM instead of another port's registers.
var irqSink Register

var portRegisters = [...]Registers{
	{
		In: mmio(P1IN), Out: mmio(P1OUT), Dir: mmio(P1DIR),
		Sel: mmio(P1SEL), Sel2: mmio(P1SEL2), Ren: mmio(P1REN),
		IE: mmio(P1IE), IES: mmio(P1IES), IFG: mmio(P1IFG),
	},
	{
		In: mmio(P2IN), Out: mmio(P2OUT), Dir: mmio(P2DIR),
		Sel: mmio(P2SEL), Sel2: mmio(P2SEL2), Ren: mmio(P2REN),
		IE: mmio(P2IE), IES: mmio(P2IES), IFG: mmio(P2IFG),
	},
	{
		In: mmio(P3IN), Out: mmio(P3OUT), Dir: mmio(P3DIR),
		Sel: mmio(P3SEL), Sel2: mmio(P3SEL2), Ren: mmio(P3REN),
		IE: &irqSink, IES: &irqSink, IFG: &irqSink,
	},
}

// Lookup returns the register set of a port.
// Values outside the closed port set resolve to Port3, whose interrupt
// fields are the RAM sink.
func Lookup(port PortID) *Registers {
	if port < Port1 || port > Port3 {
		port = Port3
	}
	return &portRegisters[port-Port1]
}

// Capable reports whether the port has interrupt registers
func Capable(port PortID) bool {
	return port == Port1 || port == Port2
}

// IRQPortOf converts a port chosen at run time (board files, consoles)
// to its interrupt-capable form.
func IRQPortOf(port PortID) (IRQPortID, bool) {
	if !Capable(port) {
		return 0, false
	}
	return IRQPortID(port), true
}

// String returns the datasheet name of the port ("P1")
func (p PortID) String() string {
	return "P" + itoa(int(p))
}
