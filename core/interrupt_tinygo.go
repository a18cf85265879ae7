//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts clears GIE and returns the previous state.
// Register sequences that configure a pin run inside this section so an
// ISR never sees a half-configured port.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
