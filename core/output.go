package core

// Output is a handle to a pin driven as a plain digital output.
//
// Usage:
//
//	led := core.NewOutput(core.Port1, core.Pin0)
//	led.High()
//	led.Toggle()
type Output struct {
	p pin
}

// configureOutput sets PxDIR and selects plain digital I/O. With load set,
// the output latch gets the initial level before the pin starts driving.
// The whole sequence runs with interrupts disabled.
func configureOutput(p pin, load bool, initial State) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if load {
		if initial == High {
			p.regs.Out.SetBits(p.mask)
		} else {
			p.regs.Out.ClearBits(p.mask)
		}
	}
	p.regs.Dir.SetBits(p.mask)
	p.regs.Sel.ClearBits(p.mask)
	p.regs.Sel2.ClearBits(p.mask)
}

// State returns the level currently on the pin
func (o Output) State() State {
	return readState(o.p)
}

// Set drives the pin high (true) or low (false)
func (o Output) Set(value bool) {
	if value {
		o.p.regs.Out.SetBits(o.p.mask)
	} else {
		o.p.regs.Out.ClearBits(o.p.mask)
	}
}

// Write drives the pin to the given level
func (o Output) Write(level State) {
	o.Set(level == High)
}

// High drives the pin high
func (o Output) High() {
	o.p.regs.Out.SetBits(o.p.mask)
}

// Low drives the pin low
func (o Output) Low() {
	o.p.regs.Out.ClearBits(o.p.mask)
}

// Toggle inverts the output bit
func (o Output) Toggle() {
	out := o.p.regs.Out
	out.Set(out.Get() ^ o.p.mask)
}

// Port returns the port of the pin
func (o Output) Port() PortID {
	return o.p.port
}

// Pin returns the index of the pin
func (o Output) Pin() Pin {
	return o.p.index
}

func (o Output) String() string {
	return o.p.label()
}
