package core

// Input is a handle to a pin configured as an input with its internal
// pull resistor enabled. The pin is never left floating.
type Input struct {
	p pin
}

// configureInput clears PxDIR and the select bits, then enables the pull
// resistor. With PxREN set on an input, PxOUT selects the direction:
// 1 = pull-up, 0 = pull-down.
func configureInput(p pin, pull Pull) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	p.regs.Dir.ClearBits(p.mask)
	p.regs.Sel.ClearBits(p.mask)
	p.regs.Sel2.ClearBits(p.mask)
	p.regs.Out.ClearBits(p.mask)
	p.regs.Ren.ClearBits(p.mask)

	p.regs.Ren.SetBits(p.mask)
	if pull == PullUp {
		p.regs.Out.SetBits(p.mask)
	}
}

// State returns the level currently on the pin
func (i Input) State() State {
	return readState(i.p)
}

// Port returns the port of the pin
func (i Input) Port() PortID {
	return i.p.port
}

// Pin returns the index of the pin
func (i Input) Pin() Pin {
	return i.p.index
}

func (i Input) String() string {
	return i.p.label()
}
