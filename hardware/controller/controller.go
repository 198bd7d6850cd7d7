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

// Package controller models the console's input side: the two RIOT I/O
// ports (joystick directions/fire and console switches) and the six TIA
// input lines (paddle pots and keypad matrix columns). The core is
// polymorphic over three capability sets -- digital joystick, paddle pot,
// keypad matrix -- but only the joystick is fully implemented; Paddle and
// Keypad are present as documented-incomplete stubs, mirroring the
// asymmetric completeness of the original settings/controller model this
// core was adapted from.
package controller

import (
	"github.com/calloway-labs/vcs2600/curated"
)

// Bus is the subset of VCSMemory a controller writes its state into.
type Bus interface {
	InputDeviceWrite(address uint16, data uint8, mask uint8)
	SetTIAReadValue(symbol string, value uint8)
}

// Port distinguishes which player's lines a Joystick drives: player 0's
// directions and fire share SWCHA's low nibble and INPT4, player 1's the
// high nibble and INPT5.
type Port int

const (
	Port0 Port = iota
	Port1
)

// Controller is the capability set every input device implements. Digital,
// Pot and Keypad each report curated.ErrNotImplemented (wrapped in
// curated.InputError) if the underlying device doesn't support that
// capability -- Joystick implements Digital and Fire; Paddle and Keypad
// are stubs that report the error from every method.
type Controller interface {
	Digital(direction Direction, pressed bool) error
	Fire(pressed bool) error
	Pot(value uint8) error
	Key(row, col int, pressed bool) error
}

// Direction is one of the four joystick directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Switches is the RIOT port B console-switch panel: reset, select,
// colour/B&W, and the two difficulty toggles. It powers on as 0x3f, per the
// original's Controller power-on state: both difficulty switches in
// Beginner/B position, colour mode selected, reset and select released.
type Switches struct {
	bus   Bus
	value uint8
}

// NewSwitches returns Switches in their documented power-on state.
func NewSwitches(bus Bus) *Switches {
	s := &Switches{bus: bus, value: 0x3f}
	s.publish()
	return s
}

// bit positions within SWCHB.
const (
	bitGameReset     = 0x01
	bitGameSelect    = 0x02
	bitColourBW      = 0x08
	bitDifficulty0   = 0x40
	bitDifficulty1   = 0x80
)

func (s *Switches) set(bit uint8, active bool) {
	// reset/select read as 0 when pressed (active low); the rest read as 1
	// when set (colour mode, advanced difficulty).
	low := bit == bitGameReset || bit == bitGameSelect
	if active != low {
		s.value |= bit
	} else {
		s.value &^= bit
	}
	s.publish()
}

func (s *Switches) publish() { s.bus.InputDeviceWrite(0x0282, s.value, 0xff) }

func (s *Switches) SetGameReset(pressed bool)      { s.set(bitGameReset, pressed) }
func (s *Switches) SetGameSelect(pressed bool)      { s.set(bitGameSelect, pressed) }
func (s *Switches) SetColourMode(colour bool)        { s.set(bitColourBW, colour) }
func (s *Switches) SetDifficulty0(advanced bool)      { s.set(bitDifficulty0, advanced) }
func (s *Switches) SetDifficulty1(advanced bool)      { s.set(bitDifficulty1, advanced) }

// Joystick is the one fully-implemented controller: four digital
// directions on SWCHA and one fire button on the corresponding INPTx line.
// INPT4/INPT5 power on at 0x80 (fire line released, matching an
// unpressed button's idle-high state).
type Joystick struct {
	bus  Bus
	port Port

	directions uint8
}

// NewJoystick returns a Joystick wired to port, with its SWCHA nibble and
// fire-button INPTx line in their power-on (all-released) state.
func NewJoystick(bus Bus, port Port) *Joystick {
	j := &Joystick{bus: bus, port: port, directions: 0x0f}
	j.publishDirections()
	j.Fire(false)
	return j
}

// direction bit offsets within SWCHA's low nibble; player 1's nibble is
// the same four bits shifted up by 4.
const (
	bitUp    = 0x01
	bitDown  = 0x02
	bitLeft  = 0x04
	bitRight = 0x08
)

func directionBit(d Direction) uint8 {
	switch d {
	case Up:
		return bitUp
	case Down:
		return bitDown
	case Left:
		return bitLeft
	case Right:
		return bitRight
	}
	return 0
}

func (j *Joystick) publishDirections() {
	nibble := j.directions
	mask := uint8(0x0f)
	if j.port == Port1 {
		nibble <<= 4
		mask <<= 4
	}
	j.bus.InputDeviceWrite(0x0280, nibble, mask)
}

// Digital presses or releases one of the four joystick directions. A
// direction line reads 0 when pressed, 1 when released.
func (j *Joystick) Digital(direction Direction, pressed bool) error {
	bit := directionBit(direction)
	if pressed {
		j.directions &^= bit
	} else {
		j.directions |= bit
	}
	j.publishDirections()
	return nil
}

// Fire presses or releases the fire button, on INPT4 (player 0) or INPT5
// (player 1). The line reads 0x80 released, 0x00 pressed.
func (j *Joystick) Fire(pressed bool) error {
	symbol := "INPT4"
	if j.port == Port1 {
		symbol = "INPT5"
	}
	if pressed {
		j.bus.SetTIAReadValue(symbol, 0x00)
	} else {
		j.bus.SetTIAReadValue(symbol, 0x80)
	}
	return nil
}

// Pot is not implemented by Joystick.
func (j *Joystick) Pot(value uint8) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

// Key is not implemented by Joystick.
func (j *Joystick) Key(row, col int, pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

// Paddle is a documented-incomplete stub: the capability set requires it to
// exist, but paddle pot timing (a variable RC-charge delay read back
// through INPT0-3) is deferred, per spec.md's controller non-goals.
type Paddle struct {
	bus  Bus
	line string
}

// NewPaddle returns a Paddle wired to one of the four INPT0-3 pot lines.
func NewPaddle(bus Bus, line string) *Paddle { return &Paddle{bus: bus, line: line} }

func (p *Paddle) Digital(direction Direction, pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

func (p *Paddle) Fire(pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

// Pot reports the paddle's wiper position, 0-255. Not implemented: a real
// paddle's INPTx line is a capacitor-charge delay proportional to this
// value, which this core does not model.
func (p *Paddle) Pot(value uint8) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

func (p *Paddle) Key(row, col int, pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

// Keypad is a documented-incomplete stub for the 12-key keypad controller,
// deferred for the same reason as Paddle.
type Keypad struct {
	bus Bus
}

// NewKeypad returns a Keypad stub.
func NewKeypad(bus Bus) *Keypad { return &Keypad{bus: bus} }

func (k *Keypad) Digital(direction Direction, pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

func (k *Keypad) Fire(pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

func (k *Keypad) Pot(value uint8) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}

// Key presses or releases one of the keypad's 3x4 matrix positions. Not
// implemented: matrix scanning requires driving SWCHA from the column side
// and reading INPTx per row, which this core does not model.
func (k *Keypad) Key(row, col int, pressed bool) error {
	return curated.Errorf(curated.InputError, curated.Errorf(curated.ErrNotImplemented))
}
