package devices

// Memory defines the view of the system's address space handed to devices.
// All accessors are bounds checked: reads outside the address space
// yield zero and writes outside it are rejected.
type Memory interface {
	// Len returns the size of the address space in bytes.
	Len() int

	// U8 returns the byte at the given address.
	U8(addr int) byte

	// SetU8 sets the byte at the given address.
	// Returns false if the address is out of range.
	SetU8(addr int, value byte) bool

	// Read reads len(p) bytes from memory into p, starting at the given address.
	// Returns false, without copying anything, if the range does not fit.
	Read(address int, p []byte) bool

	// Write writes len(p) bytes from p into memory, starting at the given address.
	// Returns false, without copying anything, if the range does not fit.
	Write(address int, p []byte) bool
}
