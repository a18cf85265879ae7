package config

import "msphal/core"

// Pin modes accepted in board files
const (
	ModeOutput        = "output"
	ModeInput         = "input"
	ModeInputPullDown = "input_pulldown"
)

// PinConfig represents configuration for a single named pin
type PinConfig struct {
	Pin     string // Port pin label, e.g. "P1.0"
	Mode    string // output, input or input_pulldown
	Initial string // Initial output level: low or high
	Edge    string // Interrupt edge to arm: falling, rising or empty
}

// Board represents a complete board description
type Board struct {
	Name string
	Pins map[string]PinConfig
}

// Line is a configured pin together with its handles.
// Exactly one of Output and Input is set; IRQ is set on ports with
// interrupt registers.
type Line struct {
	Name   string
	Port   core.PortID
	Index  core.Pin
	Output *core.Output
	Input  *core.Input
	IRQ    *core.Interrupt
}

// State returns the level on the line
func (l *Line) State() core.State {
	if l.Output != nil {
		return l.Output.State()
	}
	return l.Input.State()
}

// Label returns the port pin label ("P1.0")
func (l *Line) Label() string {
	return Label(l.Port, l.Index)
}
