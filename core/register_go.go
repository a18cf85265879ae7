//go:build !tinygo

package core

// Register is an 8-bit peripheral register (regular Go implementation).
// It has the method set of volatile.Register8 and lives in a simulated
// register file; writes settle the pad model.
type Register struct {
	Reg uint8

	settle func()
}

// registerFile covers the peripheral space up to P3SEL2
var registerFile [P3SEL2 + 1]Register

// mmio maps a peripheral address to its register
func mmio(addr uintptr) *Register {
	return &registerFile[addr]
}

// Get returns the register value
func (r *Register) Get() uint8 {
	return r.Reg
}

// Set writes the register value
func (r *Register) Set(value uint8) {
	r.Reg = value
	if r.settle != nil {
		r.settle()
	}
}

// SetBits sets the bits of value in the register
func (r *Register) SetBits(value uint8) {
	r.Set(r.Reg | value)
}

// ClearBits clears the bits of value in the register
func (r *Register) ClearBits(value uint8) {
	r.Set(r.Reg &^ value)
}

// HasBits reports whether any bit of value is set
func (r *Register) HasBits(value uint8) bool {
	return r.Reg&value > 0
}
