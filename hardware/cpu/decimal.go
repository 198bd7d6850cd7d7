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

// adcBinary is the binary (non-decimal) ADC path: straightforward 8-bit
// addition with carry in and out, and the standard signed-overflow test.
func (c *CPU) adcBinary(a, m uint8) uint8 {
	carryIn := uint16(0)
	if c.Status.C {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)

	c.Status.V = (a^m)&0x80 == 0 && (a^result)&0x80 != 0
	c.Status.C = sum > 0xff
	c.Status.setZN(result)
	return result
}

// adcDecimal implements BCD ADC exactly as the NMOS 6502 does, including
// its documented quirk that the Z flag reflects the *binary* sum rather
// than the decimal-corrected one.
func (c *CPU) adcDecimal(a, m uint8) uint8 {
	carryIn := uint8(0)
	if c.Status.C {
		carryIn = 1
	}

	binSum := uint16(a) + uint16(m) + uint16(carryIn)
	c.Status.Z = uint8(binSum) == 0

	lo := int(a&0x0f) + int(m&0x0f) + int(carryIn)
	hi := int(a&0xf0) + int(m&0xf0)

	if lo > 9 {
		lo += 6
		hi += 0x10
	}

	c.Status.N = hi&0x80 != 0
	c.Status.V = (int(a)^int(m))&0x80 == 0 && (int(a)^hi)&0x80 != 0

	if hi > 0x90 {
		hi += 0x60
	}
	c.Status.C = hi > 0xff

	return uint8(lo&0x0f) | uint8(hi&0xf0)
}

// sbcDecimal implements BCD SBC: the binary subtraction determines V, C, N
// and Z (all from the ordinary two's-complement result), while A itself is
// built from the nibble-wise decimal-adjusted subtraction.
func (c *CPU) sbcDecimal(a, m uint8) uint8 {
	borrowIn := 0
	if !c.Status.C {
		borrowIn = 1
	}

	binResult := int(a) - int(m) - borrowIn
	result := uint8(binResult)
	c.Status.V = (int(a)^int(m))&0x80 != 0 && (int(a)^binResult)&0x80 != 0
	c.Status.C = binResult >= 0
	c.Status.setZN(result)

	lo := int(a&0x0f) - int(m&0x0f) - borrowIn
	hi := int(a&0xf0) - int(m&0xf0)
	if lo&0x10 != 0 {
		lo -= 6
		hi -= 1
	}
	if hi&0x100 != 0 {
		hi -= 0x60
	}

	return uint8(lo&0x0f) | uint8(hi&0xf0)
}
