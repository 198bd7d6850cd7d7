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

// Package memorymap decodes a CPU address into the chip it actually selects.
// The 6507 in the VCS only brings out 13 address lines, so the whole 64k
// address space the CPU can in principle form aliases down to 8k, and within
// that 8k only the top bit (cartridge vs. everything else) and two bits of
// the "everything else" half (TIA vs. RAM vs. RIOT) are decoded in hardware
// -- the rest repeats every 128 bytes.
package memorymap

import "fmt"

// Region identifies which chip a decoded address belongs to.
type Region int

const (
	RegionTIA Region = iota
	RegionRAM
	RegionRIOT
	RegionCartridge
)

func (r Region) String() string {
	switch r {
	case RegionTIA:
		return "TIA"
	case RegionRAM:
		return "RAM"
	case RegionRIOT:
		return "RIOT"
	case RegionCartridge:
		return "Cartridge"
	default:
		return "unknown"
	}
}

// Normalise decodes addr down to the region it selects and the address
// within that region's own namespace: a 6-bit TIA register index, a 7-bit
// RAM offset, a RIOT register address in the $280-$2FF window, or (for
// cartridge space) the 12-bit address the cartridge mapper itself decodes.
func Normalise(addr uint16) (Region, uint16) {
	addr &= 0x1fff

	if addr&0x1000 != 0 {
		return RegionCartridge, addr & 0x0fff
	}
	if addr&0x80 == 0 {
		return RegionTIA, addr & 0x3f
	}
	if addr&0x200 == 0 {
		return RegionRAM, addr & 0x7f
	}
	return RegionRIOT, 0x280 | (addr & 0x7f)
}

// Summary renders the full decode table in the same form as a datasheet's
// memory map diagram, one 128-byte window per line.
func Summary() string {
	s := ""
	for block := uint16(0); block < 0x10; block++ {
		lo := block << 8
		hi := lo | 0x7f
		region, _ := Normalise(lo)
		s += fmt.Sprintf("%04x -> %04x\t%s\n", lo, hi, region)

		lo = (block << 8) | 0x80
		hi = lo | 0x7f
		region, _ = Normalise(lo)
		s += fmt.Sprintf("%04x -> %04x\t%s\n", lo, hi, region)
	}
	s += "1000 -> 1fff\tCartridge\n"
	return s
}
