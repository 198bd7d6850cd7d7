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
	"strings"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/calloway-labs/vcs2600/logger"
)

var log = logger.NewLogger(200)

// Cartridge wraps the currently loaded ROM image and its bank-switching
// mapper. The CPU only ever sees the 0x1000-sized window the mapper
// currently has selected; Cartridge itself doesn't know or care which
// scheme is in effect.
type Cartridge struct {
	Filename string

	m mapper
}

// Scheme names recognised by NewFromBytes's scheme parameter and reported by
// Cartridge.Scheme(). An empty scheme means "guess from file size".
const (
	Scheme2k = "2k"
	Scheme4k = "4k"
	SchemeF8 = "f8"
	SchemeE0 = "e0"
	SchemeFA = "fa"
	SchemeF6 = "f6"
	SchemeF4 = "f4"
	SchemeEF = "ef"
)

// guessScheme picks a bank-switching scheme from the ROM image size alone,
// the same fallback original ROM collections rely on when a dump carries no
// out-of-band hint.
func guessScheme(size int) (string, error) {
	switch size {
	case 2048:
		return Scheme2k, nil
	case 4096:
		return Scheme4k, nil
	case 8192:
		return SchemeF8, nil
	case 12288:
		return SchemeFA, nil
	case 16384:
		return SchemeF6, nil
	case 32768:
		return SchemeF4, nil
	case 65536:
		return SchemeEF, nil
	default:
		return "", curated.Errorf(curated.CartridgeError, fmt.Errorf("unsupported rom size %d bytes", size))
	}
}

// newMapper constructs the mapper for scheme. The E0 scheme is the only one
// whose image size (8192 bytes, split into eight 1k segments) can't be told
// apart from F8's identical-sized 4k-bank image by size alone, so a caller
// that only has a size to go on should prefer SchemeF8 and let the user
// override it -- this mirrors the ambiguity the original settings file's
// per-ROM bank-switching override exists to resolve.
func newMapper(scheme string, data []byte, superchipHint bool) (mapper, error) {
	var m mapper
	var err error

	switch scheme {
	case Scheme2k:
		m, err = newAtari2k(data)
	case Scheme4k:
		m, err = newAtari4k(data)
	case SchemeF8:
		m, err = newAtariF8(data)
	case SchemeE0:
		m, err = newAtariE0(data)
	case SchemeFA:
		m, err = newAtariFA(data)
	case SchemeF6:
		m, err = newAtariF6(data)
	case SchemeF4:
		m, err = newAtariF4(data)
	case SchemeEF:
		m, err = newAtariEF(data)
	default:
		// per spec.md's error-handling design: an unsupported scheme
		// doesn't fail the load outright, it logs and falls back to the
		// 4K default at best effort.
		log.Logf(logger.Allow, "cartridge", "unsupported bank-switching scheme %q, defaulting to 4K", scheme)
		m, err = newAtari4kBestEffort(data)
	}
	if err != nil {
		return nil, err
	}

	if sc, ok := m.(interface{ addSuperchip() bool }); ok {
		if superchipHint {
			sc.addSuperchip()
		}
	}

	return m, nil
}

// NewFromBytes builds a Cartridge from an in-memory ROM image. scheme may be
// empty to guess from size; superchip requests that superchip RAM be added
// if the scheme supports it and the image looks compatible.
func NewFromBytes(filename string, data []byte, scheme string, superchip bool) (*Cartridge, error) {
	if scheme == "" {
		guessed, err := guessScheme(len(data))
		if err != nil {
			return nil, err
		}
		scheme = guessed
	}

	m, err := newMapper(scheme, data, superchip)
	if err != nil {
		return nil, err
	}

	return &Cartridge{Filename: filename, m: m}, nil
}

// Scheme returns the bank-switching scheme identifier currently in effect.
func (cart *Cartridge) Scheme() string { return strings.ToLower(cart.m.formatID()) }

// String describes the cartridge and, for multi-bank schemes, which bank is
// currently selected.
func (cart *Cartridge) String() string { return cart.m.String() }

// Read services a CPU read from cartridge address space. addr is in the
// range 0x000-0xFFF, already normalised out of the $1000-$1FFF window the
// VCS maps cartridges into.
func (cart *Cartridge) Read(addr uint16) (uint8, error) { return cart.m.read(addr) }

// Write services a CPU write into cartridge address space, which on real
// hardware either hits a hotspot (triggering a bank switch) or RAM, and is
// otherwise simply ignored by the cartridge -- there's no way to signal a
// bus error from a passive ROM chip.
func (cart *Cartridge) Write(addr uint16, data uint8) error { return cart.m.write(addr, data) }

// Poke writes directly into the currently selected bank, bypassing hotspot
// detection, for tooling that wants to patch ROM contents in place.
func (cart *Cartridge) Poke(addr uint16, data uint8) error { return cart.m.poke(addr, data) }

// NumBanks returns how many banks the loaded scheme divides the image into.
func (cart *Cartridge) NumBanks() int { return cart.m.numBanks() }

// CurBank returns the index of the currently selected bank.
func (cart *Cartridge) CurBank() int { return cart.m.curBank() }

// SetBank forces the current bank, for tooling (a debugger's bank-lock
// feature) rather than anything the emulated CPU can trigger directly.
func (cart *Cartridge) SetBank(bank int) error { return cart.m.setBank(bank) }

// RAMInfo describes any cartridge RAM windows (superchip, FA's fixed RAM)
// the loaded scheme exposes.
func (cart *Cartridge) RAMInfo() []RAMInfo { return cart.m.ramInfo() }
