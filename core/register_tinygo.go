//go:build tinygo

package core

import (
	"runtime/volatile"
	"unsafe"
)

// Register is a memory-mapped 8-bit peripheral register
type Register = volatile.Register8

// mmio maps a peripheral address to its register
func mmio(addr uintptr) *Register {
	return (*Register)(unsafe.Pointer(addr))
}
