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

// Mode is one of the 6502's 13 addressing modes.
type Mode int

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// resolve consumes this instruction's operand bytes from the stream at PC
// (advancing PC as it goes) and returns the effective address, plus
// whether an indexed read crossed a page boundary in doing so. Implied and
// Accumulator instructions never call this.
func (c *CPU) resolve(mode Mode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++

	case ZeroPage:
		addr = uint16(c.fetch())

	case ZeroPageX:
		addr = uint16(uint8(c.fetch() + c.X))

	case ZeroPageY:
		addr = uint16(uint8(c.fetch() + c.Y))

	case Absolute:
		lo := c.fetch()
		hi := c.fetch()
		addr = uint16(hi)<<8 | uint16(lo)

	case AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.X)
		pageCrossed = base&0xff00 != addr&0xff00

	case AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		pageCrossed = base&0xff00 != addr&0xff00

	case Indirect:
		lo := c.fetch()
		hi := c.fetch()
		ptr := uint16(hi)<<8 | uint16(lo)
		// the page-boundary bug: if the pointer's low byte is $FF, the
		// high byte of the target is fetched from $xx00 of the *same*
		// page, not the start of the next one.
		loByte := c.read(ptr)
		hiAddr := (ptr & 0xff00) | uint16(uint8(ptr)+1)
		hiByte := c.read(hiAddr)
		addr = uint16(hiByte)<<8 | uint16(loByte)

	case IndirectX:
		zp := uint8(c.fetch() + c.X)
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		addr = uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		zp := c.fetch()
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		pageCrossed = base&0xff00 != addr&0xff00

	case Relative:
		offset := int8(c.fetch())
		addr = uint16(int32(c.PC) + int32(offset))
	}

	return addr, pageCrossed
}
