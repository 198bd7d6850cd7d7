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

package cartridge

import (
	"fmt"

	"github.com/calloway-labs/vcs2600/curated"
)

// mapper implementations hold the raw bytes of a loaded ROM image and track
// which bank is currently mapped into cartridge address space ($1000-$1FFF
// as seen by the CPU, normalised to 0x0000-0x0FFF here). Read and Write both
// watch for the scheme's hotspot addresses and swap banks as a side effect,
// exactly as the real hardware does -- a bank switch on the VCS isn't a
// separate operation, it's triggered by the CPU merely addressing the
// hotspot.
type mapper interface {
	fmt.Stringer

	formatID() string
	read(addr uint16) (uint8, error)
	write(addr uint16, data uint8) error
	numBanks() int
	curBank() int
	setBank(bank int) error

	// poke alters the currently selected bank directly, bypassing hotspot
	// detection. Used by debugging tools.
	poke(addr uint16, data uint8) error

	ramInfo() []RAMInfo
}

// RAMInfo describes one window of cartridge RAM (the superchip, or the FA
// scheme's fixed on-cart RAM) for tooling that wants to display it
// separately from ROM.
type RAMInfo struct {
	Label       string
	ReadOrigin  uint16
	ReadMemtop  uint16
	WriteOrigin uint16
	WriteMemtop uint16
}

// atari is the base shared by every bank-switching scheme in this package --
// all of them are Atari-designed, as opposed to the third-party schemes
// (CBS RAM+, Tigervision, Pitfall II's DPC, ...) that real carts in the wild
// also used but this emulator doesn't support.
type atari struct {
	description string
	format      string

	bankSize int
	banks    [][]uint8
	bank     int

	// superchip is the optional 128-byte RAM chip some carts bolt on,
	// mapped into the first 256 bytes of bank address space: bytes 0-127
	// are the write port, 128-255 are the read port (there being no R/W
	// line running to the cartridge edge connector).
	superchip []uint8

	ram []RAMInfo
}

func (cart *atari) String() string {
	if len(cart.banks) == 1 {
		return cart.description
	}
	return fmt.Sprintf("%s [%s] bank %d", cart.description, cart.format, cart.bank)
}

func (cart *atari) formatID() string { return cart.format }

func (cart *atari) numBanks() int { return len(cart.banks) }

func (cart *atari) curBank() int { return cart.bank }

func (cart *atari) setBank(bank int) error {
	if bank < 0 || bank >= len(cart.banks) {
		return curated.Errorf(curated.CartridgeError, fmt.Errorf("%s: invalid bank %d", cart.format, bank))
	}
	cart.bank = bank
	return nil
}

func (cart *atari) ramInfo() []RAMInfo { return cart.ram }

// readSuperchip serves a read from the superchip's read port, if present and
// addr falls within it.
func (cart *atari) readSuperchip(addr uint16) (uint8, bool) {
	if cart.superchip != nil && addr >= 128 && addr < 256 {
		return cart.superchip[addr-128], true
	}
	return 0, false
}

// writeSuperchip serves a write to the superchip's write port, if present
// and addr falls within it.
func (cart *atari) writeSuperchip(addr uint16, data uint8) bool {
	if cart.superchip != nil && addr < 128 {
		cart.superchip[addr] = data
		return true
	}
	return false
}

func (cart *atari) poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr] = data
	return nil
}

// addSuperchip allocates the superchip RAM if every bank's first 256 bytes
// are uniformly the same byte value -- the same heuristic used to detect
// superchip-equipped dumps that don't carry an explicit flag, since there's
// no other signal in the ROM image itself.
func (cart *atari) addSuperchip() bool {
	sentinel := cart.banks[0][0]
	for _, bank := range cart.banks {
		for i := 0; i < 256; i++ {
			if bank[i] != sentinel {
				return false
			}
		}
	}

	cart.superchip = make([]uint8, 128)
	cart.description = fmt.Sprintf("%s (+ superchip RAM)", cart.description)
	cart.ram = append(cart.ram, RAMInfo{
		Label:       "superchip",
		ReadOrigin:  0x1080,
		ReadMemtop:  0x10ff,
		WriteOrigin: 0x1000,
		WriteMemtop: 0x107f,
	})

	return true
}
