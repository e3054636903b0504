package arch

import "fmt"

// InstructionSize is the size of every CHIP-8 instruction in bytes.
const InstructionSize = 2

// Instruction defines decoded instruction data.
type Instruction struct {
	Kind   Kind   // Decoded instruction kind.
	Opcode uint16 // Raw instruction word.
	X      int    // Register index from bits 8-11.
	Y      int    // Register index from bits 4-7.
	N      byte   // 4-bit immediate from bits 0-3.
	NN     byte   // 8-bit immediate from bits 0-7.
	NNN    uint16 // 12-bit address from bits 0-11.
}

// Decode decodes the instruction word made up of msb and lsb.
// Bit patterns that name no instruction decode to Unknown.
func Decode(msb, lsb byte) Instruction {
	w := uint16(msb)<<8 | uint16(lsb)
	i := Instruction{
		Opcode: w,
		X:      int(msb & 0xf),
		Y:      int(lsb>>4) & 0xf,
		N:      lsb & 0xf,
		NN:     lsb,
		NNN:    w & 0xfff,
	}
	i.Kind = decodeKind(msb, lsb)
	return i
}

// decodeKind classifies an opcode by its family nibble, sub-dispatching
// the families which share a nibble.
func decodeKind(msb, lsb byte) Kind {
	switch msb >> 4 {
	case 0x0:
		switch uint16(msb)<<8 | uint16(lsb) {
		case 0x00e0:
			return Cls
		case 0x00ee:
			return Ret
		}
		return Sys
	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeByte
	case 0x4:
		return SneByte
	case 0x5:
		if lsb&0xf == 0 {
			return SeReg
		}
	case 0x6:
		return LdByte
	case 0x7:
		return AddByte
	case 0x8:
		switch lsb & 0xf {
		case 0x0:
			return LdReg
		case 0x1:
			return Or
		case 0x2:
			return And
		case 0x3:
			return Xor
		case 0x4:
			return AddReg
		case 0x5:
			return Sub
		case 0x6:
			return Shr
		case 0x7:
			return Subn
		case 0xe:
			return Shl
		}
	case 0x9:
		if lsb&0xf == 0 {
			return SneReg
		}
	case 0xa:
		return LdI
	case 0xb:
		return JpV0
	case 0xc:
		return Rnd
	case 0xd:
		return Drw
	case 0xe:
		switch lsb {
		case 0x9e:
			return Skp
		case 0xa1:
			return Sknp
		}
	case 0xf:
		switch lsb {
		case 0x07:
			return LdVxDT
		case 0x0a:
			return LdVxK
		case 0x15:
			return LdDTVx
		case 0x18:
			return LdSTVx
		case 0x1e:
			return AddI
		case 0x29:
			return LdF
		case 0x33:
			return Bcd
		case 0x55:
			return StoreRegs
		case 0x65:
			return LoadRegs
		}
	}
	return Unknown
}

// String returns the instruction in assembly notation.
func (i Instruction) String() string {
	name, ok := Name(i.Kind)
	if !ok {
		return fmt.Sprintf("DW $%04X", i.Opcode)
	}

	switch OperandForm(i.Kind) {
	case FormAddr:
		return fmt.Sprintf("%s $%03X", name, i.NNN)
	case FormV0Addr:
		return fmt.Sprintf("%s V0, $%03X", name, i.NNN)
	case FormRegByte:
		return fmt.Sprintf("%s V%X, $%02X", name, i.X, i.NN)
	case FormRegReg:
		return fmt.Sprintf("%s V%X, V%X", name, i.X, i.Y)
	case FormReg:
		return fmt.Sprintf("%s V%X", name, i.X)
	case FormSprite:
		return fmt.Sprintf("%s V%X, V%X, $%X", name, i.X, i.Y, i.N)
	case FormIAddr:
		return fmt.Sprintf("%s I, $%03X", name, i.NNN)
	case FormSpecial:
		return name + " " + specialOperands(i)
	}
	return name
}

func specialOperands(i Instruction) string {
	switch i.Kind {
	case LdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case LdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case LdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case LdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case AddI:
		return fmt.Sprintf("I, V%X", i.X)
	case LdF:
		return fmt.Sprintf("F, V%X", i.X)
	case Bcd:
		return fmt.Sprintf("B, V%X", i.X)
	case StoreRegs:
		return fmt.Sprintf("[I], V%X", i.X)
	case LoadRegs:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}
