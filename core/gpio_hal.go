package core

import "errors"

var (
	ErrInvalidPin = errors.New("invalid GPIO pin")
	ErrNotOutput  = errors.New("GPIO pin is not configured as output")
)

// GPIOPin identifies a pin by a flat number: port*8 + index (P1.0 = 8)
type GPIOPin uint32

// PinOf returns the flat number of a port pin
func PinOf(port PortID, index Pin) GPIOPin {
	return GPIOPin(uint32(port)*8 + uint32(index&7))
}

// Split returns the port and index of a flat pin number
func (g GPIOPin) Split() (PortID, Pin, bool) {
	if g < GPIOPin(Port1)*8 || g >= GPIOPin(Port3+1)*8 {
		return 0, 0, false
	}
	return PortID(g / 8), Pin(g % 8), true
}

// GPIODriver is the abstract GPIO interface for code that addresses pins
// by number (board files, consoles) instead of typed handles.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// ConfigureInputPullDown configures a pin as a digital input with pull-down resistor
	ConfigureInputPullDown(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// ReadPin reads the current pin state (alias for GetPin for convenience)
	ReadPin(pin GPIOPin) bool
}

// PortDriver implements GPIODriver on top of the port handles
type PortDriver struct {
	// Output handles of pins configured as outputs
	outputs map[GPIOPin]Output
	// Pins configured as inputs
	inputs map[GPIOPin]bool
}

// NewPortDriver creates a GPIO driver for the MSP430 ports
func NewPortDriver() *PortDriver {
	return &PortDriver{
		outputs: make(map[GPIOPin]Output),
		inputs:  make(map[GPIOPin]bool),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *PortDriver) ConfigureOutput(pin GPIOPin) error {
	port, index, ok := pin.Split()
	if !ok {
		return ErrInvalidPin
	}
	d.outputs[pin] = NewOutput(port, index)
	delete(d.inputs, pin)
	return nil
}

func (d *PortDriver) ConfigureInputPullUp(pin GPIOPin) error {
	return d.configureInput(pin, PullUp)
}

func (d *PortDriver) ConfigureInputPullDown(pin GPIOPin) error {
	return d.configureInput(pin, PullDown)
}

func (d *PortDriver) configureInput(pin GPIOPin, pull Pull) error {
	port, index, ok := pin.Split()
	if !ok {
		return ErrInvalidPin
	}
	NewInputPull(port, index, pull)
	delete(d.outputs, pin)
	d.inputs[pin] = true
	return nil
}

// SetPin sets the pin to high (true) or low (false).
// A pin that was never configured is made an output first.
func (d *PortDriver) SetPin(pin GPIOPin, value bool) error {
	out, exists := d.outputs[pin]
	if !exists {
		port, index, ok := pin.Split()
		if !ok {
			return ErrInvalidPin
		}
		if d.inputs[pin] {
			return ErrNotOutput
		}
		// Load the latch first so the pin does not glitch
		out = NewOutputState(port, index, stateOf(value))
		d.outputs[pin] = out
		return nil
	}
	out.Set(value)
	return nil
}

// GetPin reads the current pin state. PxIN is valid in any direction, so
// unconfigured pins can be read too.
func (d *PortDriver) GetPin(pin GPIOPin) (bool, error) {
	port, index, ok := pin.Split()
	if !ok {
		return false, ErrInvalidPin
	}
	return readState(newPin(port, index)) == High, nil
}

func (d *PortDriver) ReadPin(pin GPIOPin) bool {
	value, _ := d.GetPin(pin)
	return value
}

func stateOf(value bool) State {
	if value {
		return High
	}
	return Low
}

// Global singleton used by code that addresses pins by number.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
