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

// Package system owns the CPU, the VCSMemory address decoder (and through
// it the RIOT and the cartridge), and the TIA as a single aggregate, the
// way spec.md's design notes call for rather than threading references
// between the chips themselves. Stepping the System drives the CPU one
// instruction at a time and catches the TIA up after every one, exactly
// mirroring the real machine where the TIA free-runs on the same clock the
// CPU consumes.
package system

import (
	"github.com/calloway-labs/vcs2600/hardware/controller"
	"github.com/calloway-labs/vcs2600/hardware/cpu"
	"github.com/calloway-labs/vcs2600/hardware/memory"
	"github.com/calloway-labs/vcs2600/hardware/memory/cartridge"
	"github.com/calloway-labs/vcs2600/hardware/tia"
)

// tiaBus adapts VCSMemory's bus.ChipData-returning ChipRead to the narrow,
// locally-typed tia.Bus interface, so the tia package itself never needs to
// import the bus package.
type tiaBus struct{ mem *memory.VCSMemory }

func (b tiaBus) ChipRead() (bool, tia.ChipData) {
	ok, d := b.mem.ChipRead()
	return ok, tia.ChipData{Name: d.Name, Value: d.Value}
}

func (b tiaBus) SetTIAReadValue(symbol string, value uint8) {
	b.mem.SetTIAReadValue(symbol, value)
}

// System is the whole console: one CPU, one memory map, one TIA, sharing
// the RIOT's colour-clock counter as their common sense of time.
type System struct {
	Mem *memory.VCSMemory
	CPU *cpu.CPU
	TIA *tia.TIA

	Switches  *controller.Switches
	Player0   *controller.Joystick
	Player1   *controller.Joystick

	tiaBus tiaBus
}

// New wires up a complete System around cart. pixels receives the
// composited picture, audio (which may be nil) the two voice descriptors,
// once per frame.
func New(cart *cartridge.Cartridge, pixels tia.PixelSink, audio tia.AudioSink) *System {
	mem := memory.NewVCSMemory(cart)

	s := &System{
		Mem:      mem,
		CPU:      cpu.NewCPU(mem, mem.RIOT.Clock),
		TIA:      tia.NewTIA(mem.RIOT.Clock, pixels, audio),
		Switches: controller.NewSwitches(mem),
		Player0:  controller.NewJoystick(mem, controller.Port0),
		Player1:  controller.NewJoystick(mem, controller.Port1),
		tiaBus:   tiaBus{mem: mem},
	}
	return s
}

// Reset loads the CPU's reset vector and clears any pending frame-complete
// signal left over from a previous run.
func (s *System) Reset() error {
	s.Mem.RIOT.Clock.FrameDone = false
	return s.CPU.Reset()
}

// Step executes exactly one CPU instruction and lets the TIA catch up to
// whatever that instruction's side effects demand. It returns once the
// instruction (and any register write it made) has fully retired.
func (s *System) Step() error {
	if err := s.CPU.Step(); err != nil {
		return err
	}
	return s.TIA.Step(s.tiaBus)
}

// RunFrame steps the CPU until the TIA reports a completed frame (a VSYNC
// rising edge), then clears the flag and returns. This is the loop a host
// front-end calls once per 1/60th of a second: drive RunFrame, present
// whatever PixelSink/AudioSink received during it, then poll input and call
// RunFrame again.
func (s *System) RunFrame() error {
	clock := s.Mem.RIOT.Clock
	for !clock.FrameDone {
		if err := s.Step(); err != nil {
			return err
		}
	}
	clock.FrameDone = false
	return nil
}
