package arch

// Form defines how an instruction's operands are laid out in its opcode word.
type Form byte

// Known operand forms.
const (
	FormNone    Form = iota // CLS
	FormAddr                // JP $NNN
	FormV0Addr              // JP V0, $NNN
	FormRegByte             // SE VX, $NN
	FormRegReg              // OR VX, VY
	FormReg                 // SKP VX
	FormSprite              // DRW VX, VY, $N
	FormIAddr               // LD I, $NNN
	FormSpecial             // FX forms with a named special operand (DT, ST, K, F, B, [I])
)

// OperandForm returns the operand layout for the given kind.
func OperandForm(k Kind) Form {
	switch k {
	case Sys, Jp, Call:
		return FormAddr
	case JpV0:
		return FormV0Addr
	case SeByte, SneByte, LdByte, AddByte, Rnd:
		return FormRegByte
	case SeReg, SneReg, LdReg, Or, And, Xor, AddReg, Sub, Shr, Subn, Shl:
		return FormRegReg
	case Skp, Sknp:
		return FormReg
	case Drw:
		return FormSprite
	case LdI:
		return FormIAddr
	case LdVxDT, LdVxK, LdDTVx, LdSTVx, AddI, LdF, Bcd, StoreRegs, LoadRegs:
		return FormSpecial
	}
	return FormNone
}
