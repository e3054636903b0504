package cpu

import "github.com/hexaflex/c8/arch"

// exec applies the given instruction to the machine state. The program
// counter already points past the instruction.
//
// Operands are always read before the destination is written and VF is
// written last, so the flag reflects the operand values from before the
// instruction even when X or Y is 0xF.
func (c *CPU) exec(instr *arch.Instruction) {
	v := &c.v
	x, y := instr.X, instr.Y
	vx, vy := v[x], v[y]

	switch instr.Kind {
	case arch.Unknown, arch.Sys:
		/* nop */

	case arch.Cls:
		c.display.Clear()
	case arch.Ret:
		c.pc = c.pop()
	case arch.Jp:
		c.pc = instr.NNN
	case arch.JpV0:
		c.pc = instr.NNN + uint16(v[0])
	case arch.Call:
		c.push(c.pc)
		c.pc = instr.NNN

	case arch.SeByte:
		c.skipIf(vx == instr.NN)
	case arch.SneByte:
		c.skipIf(vx != instr.NN)
	case arch.SeReg:
		c.skipIf(vx == vy)
	case arch.SneReg:
		c.skipIf(vx != vy)
	case arch.Skp:
		c.skipIf(c.keypad.Pressed(int(vx)))
	case arch.Sknp:
		c.skipIf(!c.keypad.Pressed(int(vx)))

	case arch.LdByte:
		v[x] = instr.NN
	case arch.AddByte:
		v[x] = vx + instr.NN
	case arch.LdReg:
		v[x] = vy

	case arch.Or:
		v[x] = vx | vy
		v[arch.FlagRegister] = 0
	case arch.And:
		v[x] = vx & vy
		v[arch.FlagRegister] = 0
	case arch.Xor:
		v[x] = vx ^ vy
		v[arch.FlagRegister] = 0
	case arch.AddReg:
		sum := vx + vy
		v[x] = sum
		v[arch.FlagRegister] = flag(sum < vx)
	case arch.Sub:
		v[x] = vx - vy
		v[arch.FlagRegister] = flag(vx >= vy)
	case arch.Subn:
		v[x] = vy - vx
		v[arch.FlagRegister] = flag(vy >= vx)
	case arch.Shr:
		v[x] = vy >> 1
		v[arch.FlagRegister] = vy & 1
	case arch.Shl:
		v[x] = vy << 1
		v[arch.FlagRegister] = vy >> 7

	case arch.LdI:
		c.i = instr.NNN
	case arch.AddI:
		c.i += uint16(vx)
	case arch.LdF:
		c.i = uint16(c.config.FontAddress) + uint16(vx)*GlyphSize

	case arch.Rnd:
		v[x] = byte(c.rng.Intn(256)) & instr.NN
	case arch.Drw:
		collision := c.display.Draw(c.memory, int(c.i), int(vx), int(vy), int(instr.N))
		v[arch.FlagRegister] = flag(collision)

	case arch.LdVxDT:
		v[x] = c.timer.Delay()
	case arch.LdDTVx:
		c.timer.SetDelay(vx)
	case arch.LdSTVx:
		c.timer.SetSound(vx)
	case arch.LdVxK:
		c.pc -= arch.InstructionSize
		c.waiting = true
		c.waitReg = x
		c.awaitKey()

	case arch.Bcd:
		addr := int(c.i)
		c.memory.SetU8(addr, vx/100)
		c.memory.SetU8(addr+1, vx/10%10)
		c.memory.SetU8(addr+2, vx%10)
	case arch.StoreRegs:
		for n := 0; n <= x; n++ {
			c.memory.SetU8(int(c.i)+n, v[n])
		}
		c.i += uint16(x + 1)
	case arch.LoadRegs:
		for n := 0; n <= x; n++ {
			v[n] = c.memory.U8(int(c.i) + n)
		}
		c.i += uint16(x + 1)
	}
}

// skipIf skips the next instruction if cond holds.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += arch.InstructionSize
	}
}

// flag converts a condition into a VF value.
func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
