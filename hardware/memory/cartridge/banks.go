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

func splitBanks(data []byte, bankSize, numBanks int) ([][]uint8, error) {
	if len(data) != bankSize*numBanks {
		return nil, curated.Errorf(curated.CartridgeError,
			fmt.Errorf("wrong number of bytes for a %d-bank, %d-byte cartridge: got %d", numBanks, bankSize, len(data)))
	}

	banks := make([][]uint8, numBanks)
	for i := range banks {
		banks[i] = make([]uint8, bankSize)
		copy(banks[i], data[i*bankSize:(i+1)*bankSize])
	}
	return banks, nil
}

// --- 2k / 4k: no bank-switching hotspots at all ---------------------------

type atariFixed struct{ atari }

func newAtari2k(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 2048, 1)
	if err != nil {
		return nil, err
	}
	return &atariFixed{atari{description: "atari 2k", format: "2k", bankSize: 2048, banks: banks}}, nil
}

func newAtari4k(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 1)
	if err != nil {
		return nil, err
	}
	return &atariFixed{atari{description: "atari 4k", format: "4k", bankSize: 4096, banks: banks}}, nil
}

// newAtari4kBestEffort builds a single fixed 4K bank out of data regardless
// of its actual length, padding a short image with zeroes and truncating a
// long one, for the "unsupported bank-switching scheme" fallback where
// correctness has already been given up on in favour of not crashing.
func newAtari4kBestEffort(data []byte) (mapper, error) {
	padded := make([]uint8, 4096)
	copy(padded, data)
	return &atariFixed{atari{description: "atari 4k (best effort)", format: "4k", bankSize: 4096, banks: [][]uint8{padded}}}, nil
}

func (cart *atariFixed) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	return cart.banks[0][int(addr)%cart.bankSize], nil
}

func (cart *atariFixed) write(addr uint16, data uint8) error {
	cart.writeSuperchip(addr, data)
	return nil
}

// --- F8 (8k, 2 banks, hotspots $FF8/$FF9) ---------------------------------

type atariF8 struct{ atari }

func newAtariF8(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 2)
	if err != nil {
		return nil, err
	}
	return &atariF8{atari{description: "atari F8 (8k)", format: "F8", bankSize: 4096, banks: banks}}, nil
}

func (cart *atariF8) hotspot(addr uint16) {
	switch addr {
	case 0xff8:
		cart.bank = 0
	case 0xff9:
		cart.bank = 1
	}
}

func (cart *atariF8) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	data := cart.banks[cart.bank][addr]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariF8) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	cart.hotspot(addr)
	return nil
}

// --- E0 (8k, three independently-switched 1k slots + fixed last 1k) ------

// atariE0 maps cartridge space as four 1k slots. The first three are
// individually switched between any of the ROM's eight 1k segments by
// addressing $FE0-$FE7 (slot 0), $FE8-$FEF (slot 1) or $FF0-$FF7 (slot 2);
// the fourth slot is permanently wired to the ROM's last 1k segment.
type atariE0 struct {
	atari
	slot [4]int
}

func newAtariE0(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 1024, 8)
	if err != nil {
		return nil, err
	}
	cart := &atariE0{atari: atari{description: "atari E0 (8k)", format: "E0", bankSize: 1024, banks: banks}}
	cart.slot = [4]int{0, 0, 0, 7}
	return cart, nil
}

func (cart *atariE0) hotspot(addr uint16) {
	switch {
	case addr >= 0xfe0 && addr <= 0xfe7:
		cart.slot[0] = int(addr - 0xfe0)
	case addr >= 0xfe8 && addr <= 0xfef:
		cart.slot[1] = int(addr - 0xfe8)
	case addr >= 0xff0 && addr <= 0xff7:
		cart.slot[2] = int(addr - 0xff0)
	}
}

func (cart *atariE0) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	slot := cart.slot[addr/1024]
	data := cart.banks[slot][addr%1024]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariE0) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	cart.hotspot(addr)
	return nil
}

// curBank for E0 has no single meaning -- report slot 0's segment, which is
// the one most tools mean when they ask "which bank".
func (cart *atariE0) curBank() int { return cart.slot[0] }

func (cart *atariE0) setBank(bank int) error {
	if bank < 0 || bank >= len(cart.banks) {
		return curated.Errorf(curated.CartridgeError, fmt.Errorf("%s: invalid bank %d", cart.format, bank))
	}
	cart.slot[0] = bank
	return nil
}

// --- FA (12k, 3 banks of 4k + 256 bytes of on-cart RAM) -------------------

type atariFA struct {
	atari
	ram256 []uint8
}

func newAtariFA(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 3)
	if err != nil {
		return nil, err
	}
	cart := &atariFA{atari: atari{description: "atari FA (12k)", format: "FA", bankSize: 4096, banks: banks}}
	cart.ram256 = make([]uint8, 256)
	cart.ram = []RAMInfo{{Label: "FA RAM", ReadOrigin: 0x1100, ReadMemtop: 0x11ff, WriteOrigin: 0x1000, WriteMemtop: 0x10ff}}
	return cart, nil
}

func (cart *atariFA) hotspot(addr uint16) {
	switch addr {
	case 0xff8:
		cart.bank = 0
	case 0xff9:
		cart.bank = 1
	case 0xffa:
		cart.bank = 2
	}
}

func (cart *atariFA) read(addr uint16) (uint8, error) {
	if addr >= 0x100 && addr <= 0x1ff {
		return cart.ram256[addr&0xff], nil
	}
	data := cart.banks[cart.bank][addr]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariFA) write(addr uint16, data uint8) error {
	if addr <= 0xff {
		cart.ram256[addr] = data
		return nil
	}
	cart.hotspot(addr)
	return nil
}

// --- F6 (16k, 4 banks + optional superchip) -------------------------------

type atariF6 struct{ atari }

func newAtariF6(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 4)
	if err != nil {
		return nil, err
	}
	return &atariF6{atari{description: "atari F6 (16k)", format: "F6", bankSize: 4096, banks: banks}}, nil
}

func (cart *atariF6) hotspot(addr uint16) {
	switch addr {
	case 0xff6:
		cart.bank = 0
	case 0xff7:
		cart.bank = 1
	case 0xff8:
		cart.bank = 2
	case 0xff9:
		cart.bank = 3
	}
}

func (cart *atariF6) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	data := cart.banks[cart.bank][addr]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariF6) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	cart.hotspot(addr)
	return nil
}

// --- F4 (32k, 8 banks + optional superchip) -------------------------------

type atariF4 struct{ atari }

func newAtariF4(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 8)
	if err != nil {
		return nil, err
	}
	return &atariF4{atari{description: "atari F4 (32k)", format: "F4", bankSize: 4096, banks: banks}}, nil
}

func (cart *atariF4) hotspot(addr uint16) {
	if addr >= 0xff4 && addr <= 0xffb {
		cart.bank = int(addr - 0xff4)
	}
}

func (cart *atariF4) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	data := cart.banks[cart.bank][addr]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariF4) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	cart.hotspot(addr)
	return nil
}

// --- EF (64k, 16 banks + optional superchip) ------------------------------

type atariEF struct{ atari }

func newAtariEF(data []byte) (mapper, error) {
	banks, err := splitBanks(data, 4096, 16)
	if err != nil {
		return nil, err
	}
	return &atariEF{atari{description: "atari EF (64k)", format: "EF", bankSize: 4096, banks: banks}}, nil
}

// hotspot covers $FE0-$FEF for both read and write. The original source this
// core was modeled on checked this range correctly on the read side but had
// an inverted, always-false condition on the write side (0xFE0 >= address <=
// 0xFEF); that's a transcription bug, not intended behavior, so both paths
// here use the same inclusive range.
func (cart *atariEF) hotspot(addr uint16) {
	if addr >= 0xfe0 && addr <= 0xfef {
		cart.bank = int(addr - 0xfe0)
	}
}

func (cart *atariEF) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	data := cart.banks[cart.bank][addr]
	cart.hotspot(addr)
	return data, nil
}

func (cart *atariEF) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	cart.hotspot(addr)
	return nil
}
