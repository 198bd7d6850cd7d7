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

// Package memory implements VCSMemory, the address decoder that sits between
// the CPU and every other chip in the machine. The CPU only ever calls
// Read/Write with a 16-bit address; VCSMemory normalises it through the
// memorymap package and routes it to RAM, the RIOT, the TIA, or the
// cartridge, none of which know about each other.
package memory

import (
	"fmt"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/calloway-labs/vcs2600/hardware/memory/addresses"
	"github.com/calloway-labs/vcs2600/hardware/memory/bus"
	"github.com/calloway-labs/vcs2600/hardware/memory/cartridge"
	"github.com/calloway-labs/vcs2600/hardware/memory/memorymap"
	"github.com/calloway-labs/vcs2600/hardware/riot"
)

// tiaArea buffers CPU writes to TIA registers for the TIA to poll and
// consume whenever it next catches up, and holds the values the TIA has
// pushed back in response to register reads (collision flags, paddle
// input). Unlike the RIOT, the TIA can't resolve a register access
// synchronously: what CXM0P or INPT0 read depends on sprite positions the
// TIA hasn't necessarily rendered up to yet, so writes are buffered rather
// than applied immediately.
type tiaArea struct {
	written    bool
	lastWrite  bus.ChipData
	lastRead   string
	readValues [0x40]uint8
}

func (t *tiaArea) ChipRead() (bool, bus.ChipData) {
	if !t.written {
		return false, bus.ChipData{}
	}
	t.written = false
	return true, t.lastWrite
}

func (t *tiaArea) ChipWrite(address uint16, data uint8) {
	name := addresses.WriteSymbols[address&0x3f]
	t.lastWrite = bus.ChipData{Name: name, Value: data}
	t.written = true
}

func (t *tiaArea) LastReadRegister() string { return t.lastRead }

// ioPorts holds the two RIOT I/O port values as last reported by whatever
// is plugged into them -- normally the controller package and the console
// switches, set through InputDeviceWrite.
type ioPorts struct{ a, b uint8 }

func (p *ioPorts) InputA() uint8 { return p.a }
func (p *ioPorts) InputB() uint8 { return p.b }

// VCSMemory is the CPU's view of the whole machine.
type VCSMemory struct {
	RAM  [128]uint8
	RIOT *riot.Chip
	Cart *cartridge.Cartridge

	tia   tiaArea
	ports ioPorts
}

// NewVCSMemory returns a VCSMemory with a fresh RIOT and the given
// cartridge plugged in. cart may be nil, in which case cartridge-space
// reads/writes fail -- useful for ROM-less unit tests of the other chips.
func NewVCSMemory(cart *cartridge.Cartridge) *VCSMemory {
	return &VCSMemory{RIOT: riot.NewChip(), Cart: cart}
}

// Read services a CPU read.
func (mem *VCSMemory) Read(address uint16) (uint8, error) {
	region, offset := memorymap.Normalise(address)
	switch region {
	case memorymap.RegionTIA:
		mem.tia.lastRead = addresses.ReadSymbols[offset]
		return mem.tia.readValues[offset], nil
	case memorymap.RegionRAM:
		return mem.RAM[offset], nil
	case memorymap.RegionRIOT:
		symbol, ok := addresses.ReadSymbols[offset]
		if !ok {
			return 0, curated.Errorf(curated.BusError, fmt.Errorf("no readable register at $%04x", address))
		}
		return mem.RIOT.ReadRegister(symbol, &mem.ports)
	case memorymap.RegionCartridge:
		if mem.Cart == nil {
			return 0, curated.Errorf(curated.BusError, fmt.Errorf("no cartridge attached"))
		}
		return mem.Cart.Read(offset)
	default:
		return 0, curated.Errorf(curated.BusError, fmt.Errorf("unreachable address $%04x", address))
	}
}

// Write services a CPU write.
func (mem *VCSMemory) Write(address uint16, data uint8) error {
	region, offset := memorymap.Normalise(address)
	switch region {
	case memorymap.RegionTIA:
		mem.tia.ChipWrite(offset, data)
		return nil
	case memorymap.RegionRAM:
		mem.RAM[offset] = data
		return nil
	case memorymap.RegionRIOT:
		symbol, ok := addresses.WriteSymbols[offset]
		if !ok {
			return curated.Errorf(curated.BusError, fmt.Errorf("no writable register at $%04x", address))
		}
		return mem.RIOT.WriteRegister(symbol, data)
	case memorymap.RegionCartridge:
		if mem.Cart == nil {
			return curated.Errorf(curated.BusError, fmt.Errorf("no cartridge attached"))
		}
		return mem.Cart.Write(offset, data)
	default:
		return curated.Errorf(curated.BusError, fmt.Errorf("unreachable address $%04x", address))
	}
}

// ChipRead implements bus.ChipBus for the TIA's side of the memory system.
func (mem *VCSMemory) ChipRead() (bool, bus.ChipData) { return mem.tia.ChipRead() }

// ChipWrite implements bus.ChipBus, for a debugger poking a TIA register
// directly.
func (mem *VCSMemory) ChipWrite(address uint16, data uint8) { mem.tia.ChipWrite(address, data) }

// LastReadRegister implements bus.ChipBus.
func (mem *VCSMemory) LastReadRegister() string { return mem.tia.lastRead }

// SetTIAReadValue is how the TIA publishes the value a subsequent CPU read
// of one of its registers (a collision latch, a paddle's INPTx) should see.
func (mem *VCSMemory) SetTIAReadValue(symbol string, value uint8) {
	if addr, ok := addresses.ReadAddress[symbol]; ok {
		mem.tia.readValues[addr] = value
	}
}

// InputDeviceWrite implements bus.InputDeviceBus: the controller and console
// switches use this to report their current state directly into the RIOT's
// input ports, bypassing the CPU write path those ports otherwise ignore.
func (mem *VCSMemory) InputDeviceWrite(address uint16, data uint8, mask uint8) {
	region, offset := memorymap.Normalise(address)
	if region != memorymap.RegionRIOT {
		return
	}
	switch addresses.ReadSymbols[offset] {
	case "SWCHA":
		mem.ports.a = (mem.ports.a &^ mask) | (data & mask)
	case "SWCHB":
		mem.ports.b = (mem.ports.b &^ mask) | (data & mask)
	}
}

// Peek implements bus.DebuggerBus: reads a location's value. A TIA peek
// returns the published value without recording the access; RIOT and
// cartridge peeks go through the same path as a CPU read, so a timer read
// still catches up and clears its status bit, and a cartridge hotspot
// still switches banks.
func (mem *VCSMemory) Peek(address uint16) (uint8, error) {
	region, offset := memorymap.Normalise(address)
	switch region {
	case memorymap.RegionTIA:
		return mem.tia.readValues[offset], nil
	case memorymap.RegionRAM:
		return mem.RAM[offset], nil
	case memorymap.RegionRIOT:
		symbol, ok := addresses.ReadSymbols[offset]
		if !ok {
			return 0, curated.Errorf(curated.BusError, fmt.Errorf("no readable register at $%04x", address))
		}
		// the same call a CPU read makes, INTIM/TIMINT side effects included.
		return mem.RIOT.ReadRegister(symbol, &mem.ports)
	case memorymap.RegionCartridge:
		if mem.Cart == nil {
			return 0, curated.Errorf(curated.BusError, fmt.Errorf("no cartridge attached"))
		}
		return mem.Cart.Read(offset)
	default:
		return 0, curated.Errorf(curated.BusError, fmt.Errorf("unreachable address $%04x", address))
	}
}

// Poke implements bus.DebuggerBus.
func (mem *VCSMemory) Poke(address uint16, value uint8) error {
	region, offset := memorymap.Normalise(address)
	switch region {
	case memorymap.RegionTIA:
		mem.tia.readValues[offset] = value
		return nil
	case memorymap.RegionRAM:
		mem.RAM[offset] = value
		return nil
	case memorymap.RegionRIOT:
		symbol, ok := addresses.WriteSymbols[offset]
		if !ok {
			return curated.Errorf(curated.BusError, fmt.Errorf("no writable register at $%04x", address))
		}
		return mem.RIOT.WriteRegister(symbol, value)
	case memorymap.RegionCartridge:
		if mem.Cart == nil {
			return curated.Errorf(curated.BusError, fmt.Errorf("no cartridge attached"))
		}
		return mem.Cart.Poke(offset, value)
	default:
		return curated.Errorf(curated.BusError, fmt.Errorf("unreachable address $%04x", address))
	}
}
