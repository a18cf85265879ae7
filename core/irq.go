package core

// Interrupt controls the edge interrupt of a pin on an interrupt-capable
// port. Dispatch is not handled here: the port ISR must check PxIFG
// (Pending) and clear the bit (ClearPending) itself.
type Interrupt struct {
	p pin
}

// Arm enables the pin interrupt for the given edge and clears any pending
// flag. Transitions after Arm returns latch the flag.
func (i Interrupt) Arm(edge Edge) {
	armInterrupt(i.p, edge)
}

// Disarm disables the pin interrupt. PxIFG still latches edges.
func (i Interrupt) Disarm() {
	disarmInterrupt(i.p)
}

// Pending reports whether the pin's interrupt flag is set
func (i Interrupt) Pending() bool {
	return pending(i.p)
}

// ClearPending clears the pin's interrupt flag
func (i Interrupt) ClearPending() {
	clearPending(i.p)
}

// InterruptInput is a pulled input on a port with interrupt registers
type InterruptInput struct {
	Input
	Interrupt
}

// InterruptOutput is an output on a port with interrupt registers
type InterruptOutput struct {
	Output
	Interrupt
}

// InterruptFor returns the interrupt control of a pin without touching its
// direction, select or pull bits. Used when the pin was configured by
// another handle.
func InterruptFor(port IRQPortID, index Pin) Interrupt {
	return Interrupt{p: newPin(port.Port(), index)}
}
