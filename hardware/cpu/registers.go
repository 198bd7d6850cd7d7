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

// Package cpu implements the 6507 -- the 6502 variant found in the Atari
// 2600, wired with only 13 address lines and no documented-undocumented
// opcode support. Every instruction's colour-clock cost (base_cycles*3,
// plus any page-cross or branch penalty) is published to a Clock so the
// TIA and RIOT stay cycle-accurate against it.
package cpu

import (
	"fmt"

	"github.com/calloway-labs/vcs2600/curated"
)

// Bus is the CPU's view of the machine: every byte it ever reads or writes
// goes through here, whether that lands in RAM, a TIA register, a RIOT
// register, or cartridge space.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Clock receives the CPU-cycle cost of each instruction as it retires.
type Clock interface {
	Advance(cpuCycles int)
}

// Status is the 6502 processor status register, held as individual flags
// rather than a packed byte: B is never stored here, since real hardware
// only materialises it in the byte pushed by BRK/PHP, not in a live
// register bit.
type Status struct {
	C, Z, I, D, V, N bool
}

// Pack renders the flags as the status byte pushed by PHP/BRK, with B and
// the always-set bit 5 folded in.
func (s Status) Pack(b bool) uint8 {
	var v uint8
	if s.C {
		v |= 0x01
	}
	if s.Z {
		v |= 0x02
	}
	if s.I {
		v |= 0x04
	}
	if s.D {
		v |= 0x08
	}
	if b {
		v |= 0x10
	}
	v |= 0x20
	if s.V {
		v |= 0x40
	}
	if s.N {
		v |= 0x80
	}
	return v
}

// Unpack loads the flags from a status byte pulled by PLP/RTI. B and bit 5
// are discarded -- they have no corresponding live flag.
func (s *Status) Unpack(v uint8) {
	s.C = v&0x01 != 0
	s.Z = v&0x02 != 0
	s.I = v&0x04 != 0
	s.D = v&0x08 != 0
	s.V = v&0x40 != 0
	s.N = v&0x80 != 0
}

func (s *Status) setZN(v uint8) {
	s.Z = v == 0
	s.N = v&0x80 != 0
}

// CPU is the 6507 itself: the four 8-bit registers, the stack pointer, the
// program counter, and the flags, plus whatever ROM/RAM/chip bus it is
// currently plumbed into.
type CPU struct {
	A, X, Y, S uint8
	PC         uint16
	Status     Status

	bus   Bus
	clock Clock

	lastErr error
}

// stackBase is the fixed page the 6502's stack lives in; S is simply an
// offset within it.
const stackBase = 0x0100

// NewCPU returns a CPU wired to bus for memory access and clock for
// publishing each instruction's colour-clock cost. Registers are zeroed;
// call Reset to load PC from the reset vector.
func NewCPU(bus Bus, clock Clock) *CPU {
	return &CPU{bus: bus, clock: clock}
}

// Reset loads PC from the reset vector at $FFFC/$FFFD and puts the
// processor in its documented power-on flag state (interrupts disabled).
func (c *CPU) Reset() error {
	lo, err := c.bus.Read(0xfffc)
	if err != nil {
		return err
	}
	hi, err := c.bus.Read(0xfffd)
	if err != nil {
		return err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.S = 0xfd
	c.Status.I = true
	return nil
}

func (c *CPU) read(addr uint16) uint8 {
	v, err := c.bus.Read(addr)
	if err != nil && c.lastErr == nil {
		c.lastErr = err
	}
	return v
}

func (c *CPU) write(addr uint16, v uint8) {
	if err := c.bus.Write(addr, v); err != nil && c.lastErr == nil {
		c.lastErr = err
	}
}

func (c *CPU) push(v uint8) {
	c.write(stackBase+uint16(c.S), v)
	c.S--
}

func (c *CPU) pop() uint8 {
	c.S++
	return c.read(stackBase + uint16(c.S))
}

func (c *CPU) fetch() uint8 {
	v := c.read(c.PC)
	c.PC++
	return v
}

// Step executes exactly one instruction: fetch, decode, execute, and
// publish the instruction's colour-clock cost to the clock. An opcode byte
// with no entry in the dispatch table is reported as a curated CPUError;
// per spec.md's error-handling design, callers running in debug mode may
// choose to log it and advance PC by one rather than treat it as fatal.
func (c *CPU) Step() error {
	c.lastErr = nil

	opcode := c.fetch()
	op, ok := opcodeTable[opcode]
	if !ok {
		return curated.Errorf(curated.CPUError, fmt.Errorf("unknown opcode $%02x at $%04x", opcode, c.PC-1))
	}

	cycles := op.exec(c, op.mode)
	if c.lastErr != nil {
		return c.lastErr
	}

	c.clock.Advance(cycles)
	return nil
}
