// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// opcode is one dispatch-table entry: the addressing mode to resolve and
// the handler to run. exec returns the number of CPU cycles the
// instruction actually took, base cost plus any page-cross or branch
// penalty; CPU.Step publishes this cycle count to the clock, which converts
// it to colour clocks.
type opcode struct {
	mode Mode
	exec func(c *CPU, mode Mode) int
}

// opcodeTable is the full 256-entry (sparse) dispatch table for the
// documented 6502 instruction set. Unlisted opcodes are undocumented and
// unsupported, per spec.md's non-goals.
var opcodeTable = map[uint8]opcode{
	// ADC
	0x69: {Immediate, adc}, 0x65: {ZeroPage, adc}, 0x75: {ZeroPageX, adc},
	0x6d: {Absolute, adc}, 0x7d: {AbsoluteX, adcPage}, 0x79: {AbsoluteY, adcPage},
	0x61: {IndirectX, adc}, 0x71: {IndirectY, adcPage},

	// SBC
	0xe9: {Immediate, sbc}, 0xe5: {ZeroPage, sbc}, 0xf5: {ZeroPageX, sbc},
	0xed: {Absolute, sbc}, 0xfd: {AbsoluteX, sbcPage}, 0xf9: {AbsoluteY, sbcPage},
	0xe1: {IndirectX, sbc}, 0xf1: {IndirectY, sbcPage},

	// AND
	0x29: {Immediate, and}, 0x25: {ZeroPage, and}, 0x35: {ZeroPageX, and},
	0x2d: {Absolute, and}, 0x3d: {AbsoluteX, andPage}, 0x39: {AbsoluteY, andPage},
	0x21: {IndirectX, and}, 0x31: {IndirectY, andPage},

	// ORA
	0x09: {Immediate, ora}, 0x05: {ZeroPage, ora}, 0x15: {ZeroPageX, ora},
	0x0d: {Absolute, ora}, 0x1d: {AbsoluteX, oraPage}, 0x19: {AbsoluteY, oraPage},
	0x01: {IndirectX, ora}, 0x11: {IndirectY, oraPage},

	// EOR
	0x49: {Immediate, eor}, 0x45: {ZeroPage, eor}, 0x55: {ZeroPageX, eor},
	0x4d: {Absolute, eor}, 0x5d: {AbsoluteX, eorPage}, 0x59: {AbsoluteY, eorPage},
	0x41: {IndirectX, eor}, 0x51: {IndirectY, eorPage},

	// CMP
	0xc9: {Immediate, cmp}, 0xc5: {ZeroPage, cmp}, 0xd5: {ZeroPageX, cmp},
	0xcd: {Absolute, cmp}, 0xdd: {AbsoluteX, cmpPage}, 0xd9: {AbsoluteY, cmpPage},
	0xc1: {IndirectX, cmp}, 0xd1: {IndirectY, cmpPage},

	// CPX / CPY
	0xe0: {Immediate, cpx}, 0xe4: {ZeroPage, cpx}, 0xec: {Absolute, cpx},
	0xc0: {Immediate, cpy}, 0xc4: {ZeroPage, cpy}, 0xcc: {Absolute, cpy},

	// LDA
	0xa9: {Immediate, lda}, 0xa5: {ZeroPage, lda}, 0xb5: {ZeroPageX, lda},
	0xad: {Absolute, lda}, 0xbd: {AbsoluteX, ldaPage}, 0xb9: {AbsoluteY, ldaPage},
	0xa1: {IndirectX, lda}, 0xb1: {IndirectY, ldaPage},

	// LDX
	0xa2: {Immediate, ldx}, 0xa6: {ZeroPage, ldx}, 0xb6: {ZeroPageY, ldx},
	0xae: {Absolute, ldx}, 0xbe: {AbsoluteY, ldxPage},

	// LDY
	0xa0: {Immediate, ldy}, 0xa4: {ZeroPage, ldy}, 0xb4: {ZeroPageX, ldy},
	0xac: {Absolute, ldy}, 0xbc: {AbsoluteX, ldyPage},

	// STA
	0x85: {ZeroPage, sta}, 0x95: {ZeroPageX, sta}, 0x8d: {Absolute, sta},
	0x9d: {AbsoluteX, sta}, 0x99: {AbsoluteY, sta}, 0x81: {IndirectX, sta},
	0x91: {IndirectY, sta},

	// STX / STY
	0x86: {ZeroPage, stx}, 0x96: {ZeroPageY, stx}, 0x8e: {Absolute, stx},
	0x84: {ZeroPage, sty}, 0x94: {ZeroPageX, sty}, 0x8c: {Absolute, sty},

	// BIT
	0x24: {ZeroPage, bit}, 0x2c: {Absolute, bit},

	// ASL
	0x0a: {Accumulator, aslAcc}, 0x06: {ZeroPage, asl}, 0x16: {ZeroPageX, asl},
	0x0e: {Absolute, asl}, 0x1e: {AbsoluteX, asl},

	// LSR
	0x4a: {Accumulator, lsrAcc}, 0x46: {ZeroPage, lsr}, 0x56: {ZeroPageX, lsr},
	0x4e: {Absolute, lsr}, 0x5e: {AbsoluteX, lsr},

	// ROL
	0x2a: {Accumulator, rolAcc}, 0x26: {ZeroPage, rol}, 0x36: {ZeroPageX, rol},
	0x2e: {Absolute, rol}, 0x3e: {AbsoluteX, rol},

	// ROR
	0x6a: {Accumulator, rorAcc}, 0x66: {ZeroPage, ror}, 0x76: {ZeroPageX, ror},
	0x6e: {Absolute, ror}, 0x7e: {AbsoluteX, ror},

	// INC / DEC
	0xe6: {ZeroPage, inc}, 0xf6: {ZeroPageX, inc}, 0xee: {Absolute, inc}, 0xfe: {AbsoluteX, inc},
	0xc6: {ZeroPage, dec}, 0xd6: {ZeroPageX, dec}, 0xce: {Absolute, dec}, 0xde: {AbsoluteX, dec},

	// register increment/decrement and transfers
	0xe8: {Implied, inx}, 0xc8: {Implied, iny},
	0xca: {Implied, dex}, 0x88: {Implied, dey},
	0xaa: {Implied, tax}, 0x8a: {Implied, txa},
	0xa8: {Implied, tay}, 0x98: {Implied, tya},
	0xba: {Implied, tsx}, 0x9a: {Implied, txs},

	// stack
	0x48: {Implied, pha}, 0x68: {Implied, pla},
	0x08: {Implied, php}, 0x28: {Implied, plp},

	// flags
	0x18: {Implied, clc}, 0x38: {Implied, sec},
	0x58: {Implied, cli}, 0x78: {Implied, sei},
	0xb8: {Implied, clv}, 0xd8: {Implied, cld}, 0xf8: {Implied, sed},

	// jumps / calls / returns
	0x4c: {Absolute, jmp}, 0x6c: {Indirect, jmp},
	0x20: {Absolute, jsr}, 0x60: {Implied, rts},
	0x40: {Implied, rti}, 0x00: {Implied, brk},

	// branches
	0x10: {Relative, bpl}, 0x30: {Relative, bmi},
	0x50: {Relative, bvc}, 0x70: {Relative, bvs},
	0x90: {Relative, bcc}, 0xb0: {Relative, bcs},
	0xd0: {Relative, bne}, 0xf0: {Relative, beq},

	0xea: {Implied, nop},
}

// --- arithmetic / logic ----------------------------------------------------

func adc(c *CPU, mode Mode) int     { return adcCycles(c, mode, false) }
func adcPage(c *CPU, mode Mode) int { return adcCycles(c, mode, true) }

func adcCycles(c *CPU, mode Mode, checkPage bool) int {
	addr, pageCrossed := c.resolve(mode)
	m := c.read(addr)
	if c.Status.D {
		c.A = c.adcDecimal(c.A, m)
	} else {
		c.A = c.adcBinary(c.A, m)
	}
	return baseCycles(mode) + penalty(checkPage, pageCrossed)
}

func sbc(c *CPU, mode Mode) int     { return sbcCycles(c, mode, false) }
func sbcPage(c *CPU, mode Mode) int { return sbcCycles(c, mode, true) }

func sbcCycles(c *CPU, mode Mode, checkPage bool) int {
	addr, pageCrossed := c.resolve(mode)
	m := c.read(addr)
	if c.Status.D {
		c.A = c.sbcDecimal(c.A, m)
	} else {
		c.A = c.adcBinary(c.A, ^m)
	}
	return baseCycles(mode) + penalty(checkPage, pageCrossed)
}

func and(c *CPU, mode Mode) int     { return logic(c, mode, false, func(a, m uint8) uint8 { return a & m }) }
func andPage(c *CPU, mode Mode) int { return logic(c, mode, true, func(a, m uint8) uint8 { return a & m }) }
func ora(c *CPU, mode Mode) int     { return logic(c, mode, false, func(a, m uint8) uint8 { return a | m }) }
func oraPage(c *CPU, mode Mode) int { return logic(c, mode, true, func(a, m uint8) uint8 { return a | m }) }
func eor(c *CPU, mode Mode) int     { return logic(c, mode, false, func(a, m uint8) uint8 { return a ^ m }) }
func eorPage(c *CPU, mode Mode) int { return logic(c, mode, true, func(a, m uint8) uint8 { return a ^ m }) }

func logic(c *CPU, mode Mode, checkPage bool, op func(a, m uint8) uint8) int {
	addr, pageCrossed := c.resolve(mode)
	m := c.read(addr)
	c.A = op(c.A, m)
	c.Status.setZN(c.A)
	return baseCycles(mode) + penalty(checkPage, pageCrossed)
}

func compare(c *CPU, reg uint8, m uint8) {
	result := reg - m
	c.Status.C = reg >= m
	c.Status.setZN(result)
}

func cmp(c *CPU, mode Mode) int     { return cmpCycles(c, mode, false) }
func cmpPage(c *CPU, mode Mode) int { return cmpCycles(c, mode, true) }

func cmpCycles(c *CPU, mode Mode, checkPage bool) int {
	addr, pageCrossed := c.resolve(mode)
	compare(c, c.A, c.read(addr))
	return baseCycles(mode) + penalty(checkPage, pageCrossed)
}

func cpx(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	compare(c, c.X, c.read(addr))
	return baseCycles(mode)
}

func cpy(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	compare(c, c.Y, c.read(addr))
	return baseCycles(mode)
}

func bit(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr)
	c.Status.Z = c.A&m == 0
	c.Status.V = m&0x40 != 0
	c.Status.N = m&0x80 != 0
	return baseCycles(mode)
}

// --- loads / stores ---------------------------------------------------------

func load(c *CPU, mode Mode, checkPage bool, reg *uint8) int {
	addr, pageCrossed := c.resolve(mode)
	*reg = c.read(addr)
	c.Status.setZN(*reg)
	return baseCycles(mode) + penalty(checkPage, pageCrossed)
}

func lda(c *CPU, mode Mode) int     { return load(c, mode, false, &c.A) }
func ldaPage(c *CPU, mode Mode) int { return load(c, mode, true, &c.A) }
func ldx(c *CPU, mode Mode) int     { return load(c, mode, false, &c.X) }
func ldxPage(c *CPU, mode Mode) int { return load(c, mode, true, &c.X) }
func ldy(c *CPU, mode Mode) int     { return load(c, mode, false, &c.Y) }
func ldyPage(c *CPU, mode Mode) int { return load(c, mode, true, &c.Y) }

func store(c *CPU, mode Mode, reg uint8) int {
	addr, _ := c.resolve(mode)
	c.write(addr, reg)
	return storeCycles(mode)
}

func sta(c *CPU, mode Mode) int { return store(c, mode, c.A) }
func stx(c *CPU, mode Mode) int { return store(c, mode, c.X) }
func sty(c *CPU, mode Mode) int { return store(c, mode, c.Y) }

// --- shifts / rotates (memory forms; ABS,X takes the worst-case cycle
// count unconditionally and never checks for a page cross) -----------------

func aslAcc(c *CPU, mode Mode) int {
	c.Status.C = c.A&0x80 != 0
	c.A <<= 1
	c.Status.setZN(c.A)
	return 2
}

func asl(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr)
	c.Status.C = m&0x80 != 0
	m <<= 1
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

func lsrAcc(c *CPU, mode Mode) int {
	c.Status.C = c.A&0x01 != 0
	c.A >>= 1
	c.Status.setZN(c.A)
	return 2
}

func lsr(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr)
	c.Status.C = m&0x01 != 0
	m >>= 1
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

func rolAcc(c *CPU, mode Mode) int {
	carryIn := uint8(0)
	if c.Status.C {
		carryIn = 1
	}
	c.Status.C = c.A&0x80 != 0
	c.A = c.A<<1 | carryIn
	c.Status.setZN(c.A)
	return 2
}

func rol(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr)
	carryIn := uint8(0)
	if c.Status.C {
		carryIn = 1
	}
	c.Status.C = m&0x80 != 0
	m = m<<1 | carryIn
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

func rorAcc(c *CPU, mode Mode) int {
	carryIn := uint8(0)
	if c.Status.C {
		carryIn = 0x80
	}
	c.Status.C = c.A&0x01 != 0
	c.A = c.A>>1 | carryIn
	c.Status.setZN(c.A)
	return 2
}

func ror(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr)
	carryIn := uint8(0)
	if c.Status.C {
		carryIn = 0x80
	}
	c.Status.C = m&0x01 != 0
	m = m>>1 | carryIn
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

func inc(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr) + 1
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

func dec(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	m := c.read(addr) - 1
	c.Status.setZN(m)
	c.write(addr, m)
	return rmwCycles(mode)
}

// --- register transfers / increments ---------------------------------------

func inx(c *CPU, mode Mode) int { c.X++; c.Status.setZN(c.X); return 2 }
func iny(c *CPU, mode Mode) int { c.Y++; c.Status.setZN(c.Y); return 2 }
func dex(c *CPU, mode Mode) int { c.X--; c.Status.setZN(c.X); return 2 }
func dey(c *CPU, mode Mode) int { c.Y--; c.Status.setZN(c.Y); return 2 }

func tax(c *CPU, mode Mode) int { c.X = c.A; c.Status.setZN(c.X); return 2 }
func txa(c *CPU, mode Mode) int { c.A = c.X; c.Status.setZN(c.A); return 2 }
func tay(c *CPU, mode Mode) int { c.Y = c.A; c.Status.setZN(c.Y); return 2 }
func tya(c *CPU, mode Mode) int { c.A = c.Y; c.Status.setZN(c.A); return 2 }
func tsx(c *CPU, mode Mode) int { c.X = c.S; c.Status.setZN(c.X); return 2 }
func txs(c *CPU, mode Mode) int { c.S = c.X; return 2 }

// --- stack -------------------------------------------------------------------

func pha(c *CPU, mode Mode) int { c.push(c.A); return 3 }

func pla(c *CPU, mode Mode) int {
	c.A = c.pop()
	c.Status.setZN(c.A)
	return 4
}

func php(c *CPU, mode Mode) int { c.push(c.Status.Pack(true)); return 3 }

func plp(c *CPU, mode Mode) int {
	c.Status.Unpack(c.pop())
	return 4
}

// --- flags ---------------------------------------------------------------

func clc(c *CPU, mode Mode) int { c.Status.C = false; return 2 }
func sec(c *CPU, mode Mode) int { c.Status.C = true; return 2 }
func cli(c *CPU, mode Mode) int { c.Status.I = false; return 2 }
func sei(c *CPU, mode Mode) int { c.Status.I = true; return 2 }
func clv(c *CPU, mode Mode) int { c.Status.V = false; return 2 }
func cld(c *CPU, mode Mode) int { c.Status.D = false; return 2 }
func sed(c *CPU, mode Mode) int { c.Status.D = true; return 2 }
func nop(c *CPU, mode Mode) int { return 2 }

// --- jumps / calls / returns ------------------------------------------------

func jmp(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	c.PC = addr
	if mode == Indirect {
		return 5
	}
	return 3
}

func jsr(c *CPU, mode Mode) int {
	addr, _ := c.resolve(mode)
	ret := c.PC - 1 // address of the last byte of the JSR instruction
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.PC = addr
	return 6
}

func rts(c *CPU, mode Mode) int {
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.PC++
	return 6
}

func brk(c *CPU, mode Mode) int {
	ret := c.PC + 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(c.Status.Pack(true))
	c.Status.I = true
	lo := c.read(0xfffe)
	hi := c.read(0xffff)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 7
}

func rti(c *CPU, mode Mode) int {
	c.Status.Unpack(c.pop())
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 6
}

// --- branches ----------------------------------------------------------------

// branch resolves the relative target unconditionally (so PC always ends
// up past the operand byte even when not taken), then applies it only if
// taken, returning the 2/3/4-cycle cost spec.md's branch timing specifies.
func branch(c *CPU, taken bool) int {
	instrEnd := c.PC + 1
	target, _ := c.resolve(Relative)
	if !taken {
		return 2
	}
	c.PC = target
	if instrEnd&0xff00 != target&0xff00 {
		return 4
	}
	return 3
}

func bpl(c *CPU, mode Mode) int { return branch(c, !c.Status.N) }
func bmi(c *CPU, mode Mode) int { return branch(c, c.Status.N) }
func bvc(c *CPU, mode Mode) int { return branch(c, !c.Status.V) }
func bvs(c *CPU, mode Mode) int { return branch(c, c.Status.V) }
func bcc(c *CPU, mode Mode) int { return branch(c, !c.Status.C) }
func bcs(c *CPU, mode Mode) int { return branch(c, c.Status.C) }
func bne(c *CPU, mode Mode) int { return branch(c, !c.Status.Z) }
func beq(c *CPU, mode Mode) int { return branch(c, c.Status.Z) }

// --- cycle tables ------------------------------------------------------------

// baseCycles is the not-page-crossed cost of a read instruction in this
// mode; penalty adds one more when the instruction checks for a page cross
// and one occurred.
func baseCycles(mode Mode) int {
	switch mode {
	case Immediate:
		return 2
	case ZeroPage:
		return 3
	case ZeroPageX, ZeroPageY:
		return 4
	case Absolute:
		return 4
	case AbsoluteX, AbsoluteY:
		return 4
	case IndirectX:
		return 6
	case IndirectY:
		return 5
	}
	return 2
}

func penalty(checkPage, crossed bool) int {
	if checkPage && crossed {
		return 1
	}
	return 0
}

// storeCycles is fixed per mode: stores always take the indexed-write's
// worst-case cost, never checking for a page cross.
func storeCycles(mode Mode) int {
	switch mode {
	case ZeroPage:
		return 3
	case ZeroPageX, ZeroPageY:
		return 4
	case Absolute:
		return 4
	case AbsoluteX, AbsoluteY:
		return 5
	case IndirectX:
		return 6
	case IndirectY:
		return 6
	}
	return 3
}

// rmwCycles is fixed per mode for read-modify-write instructions (ASL, LSR,
// ROL, ROR, INC, DEC): ABS,X takes the worst-case 7 cycles unconditionally,
// per spec.md's explicit carve-out from the page-cross penalty rule.
func rmwCycles(mode Mode) int {
	switch mode {
	case ZeroPage:
		return 5
	case ZeroPageX:
		return 6
	case Absolute:
		return 6
	case AbsoluteX:
		return 7
	}
	return 5
}
