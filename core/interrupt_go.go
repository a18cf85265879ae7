//go:build !tinygo

package core

// irqState is the critical-section depth before disableInterrupts
type irqState uintptr

// irqDepth counts open critical sections. Regular Go has no interrupts to
// mask, but tests use the depth to check that register sequences run inside
// a section.
var irqDepth int

// disableInterrupts enters a critical section (no masking on regular Go)
func disableInterrupts() irqState {
	state := irqState(irqDepth)
	irqDepth++
	return state
}

// restoreInterrupts leaves the critical section entered by disableInterrupts
func restoreInterrupts(state irqState) {
	irqDepth = int(state)
}
