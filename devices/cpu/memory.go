package cpu

import "github.com/hexaflex/c8/devices"

// Memory defines the system's memory bank. Every access is bounds checked:
// reads outside the bank yield zero and writes outside it are dropped.
type Memory []byte

var _ devices.Memory = Memory(nil)

// Len returns the size of the memory bank in bytes.
func (m Memory) Len() int {
	return len(m)
}

// U8 returns the byte at the given address, or 0 if it is out of range.
func (m Memory) U8(addr int) byte {
	if addr < 0 || addr >= len(m) {
		return 0
	}
	return m[addr]
}

// SetU8 sets the byte at the given address.
// Returns false if the address is out of range.
func (m Memory) SetU8(addr int, value byte) bool {
	if addr < 0 || addr >= len(m) {
		return false
	}
	m[addr] = value
	return true
}

// Read reads len(p) bytes from memory into p, starting at the given address.
// Returns false, without copying anything, if the range does not fit.
func (m Memory) Read(address int, p []byte) bool {
	if !m.fits(address, len(p)) {
		return false
	}
	copy(p, m[address:])
	return true
}

// Write writes len(p) bytes from p into memory, starting at the given address.
// Returns false, without copying anything, if the range does not fit.
func (m Memory) Write(address int, p []byte) bool {
	if !m.fits(address, len(p)) {
		return false
	}
	copy(m[address:], p)
	return true
}

// fits returns true if the n bytes starting at address lie within the bank.
func (m Memory) fits(address, n int) bool {
	return address >= 0 && n >= 0 && address <= len(m)-n
}

// clear zeroes the whole bank.
func (m Memory) clear() {
	for i := range m {
		m[i] = 0
	}
}
