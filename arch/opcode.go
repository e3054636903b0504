// Package arch defines the CHIP-8 instruction set along with
// some related helper functions.
package arch

// Kind identifies a decoded instruction.
type Kind int

// Known instruction kinds.
const (
	Unknown Kind = iota // Undefined bit pattern. Executes as a no-op.

	Sys  // 0NNN
	Cls  // 00E0
	Ret  // 00EE
	Jp   // 1NNN
	Call // 2NNN

	SeByte  // 3XNN
	SneByte // 4XNN
	SeReg   // 5XY0
	LdByte  // 6XNN
	AddByte // 7XNN

	LdReg  // 8XY0
	Or     // 8XY1
	And    // 8XY2
	Xor    // 8XY3
	AddReg // 8XY4
	Sub    // 8XY5
	Shr    // 8XY6
	Subn   // 8XY7
	Shl    // 8XYE

	SneReg // 9XY0
	LdI    // ANNN
	JpV0   // BNNN
	Rnd    // CXNN
	Drw    // DXYN

	Skp  // EX9E
	Sknp // EXA1

	LdVxDT    // FX07
	LdVxK     // FX0A
	LdDTVx    // FX15
	LdSTVx    // FX18
	AddI      // FX1E
	LdF       // FX29
	Bcd       // FX33
	StoreRegs // FX55
	LoadRegs  // FX65

	kindCount
)

// Name returns the mnemonic for the given instruction kind.
// Returns false if the kind is not recognized.
func Name(k Kind) (string, bool) {
	switch k {
	case Sys:
		return "SYS", true
	case Cls:
		return "CLS", true
	case Ret:
		return "RET", true
	case Jp, JpV0:
		return "JP", true
	case Call:
		return "CALL", true

	case SeByte, SeReg:
		return "SE", true
	case SneByte, SneReg:
		return "SNE", true
	case LdByte, LdReg, LdI, LdVxDT, LdVxK, LdDTVx, LdSTVx, LdF, Bcd, StoreRegs, LoadRegs:
		return "LD", true
	case AddByte, AddReg, AddI:
		return "ADD", true

	case Or:
		return "OR", true
	case And:
		return "AND", true
	case Xor:
		return "XOR", true
	case Sub:
		return "SUB", true
	case Shr:
		return "SHR", true
	case Subn:
		return "SUBN", true
	case Shl:
		return "SHL", true

	case Rnd:
		return "RND", true
	case Drw:
		return "DRW", true
	case Skp:
		return "SKP", true
	case Sknp:
		return "SKNP", true
	}

	return "", false
}

func (k Kind) String() string {
	if name, ok := Name(k); ok {
		return name
	}
	return "???"
}
