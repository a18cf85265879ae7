//go:build tinygo && msp430

package main

import (
	"msphal/core"
)

// LaunchPad pins
const (
	led1Pin   = core.Pin0 // P1.0, red
	led2Pin   = core.Pin6 // P1.6, green
	buttonPin = core.Pin3 // P1.3, S2 to ground
)

// blinkDelay is a busy-wait count; the part runs from the DCO at reset
const blinkDelay = 50000

func main() {
	led1 := core.NewOutput(core.Port1, led1Pin)
	led2 := core.NewOutputState(core.Port1, led2Pin, core.Low)

	// S2 pulls P1.3 low when pressed
	button := core.NewInterruptInput(core.IRQPort1, buttonPin)
	button.Arm(core.FallingEdge)

	for {
		led1.Toggle()

		for i := 0; i < blinkDelay; i++ {
			// The flag stays latched until cleared, so presses between
			// polls are not lost
			if button.Pending() {
				button.ClearPending()
				led2.Toggle()
			}
		}
	}
}
