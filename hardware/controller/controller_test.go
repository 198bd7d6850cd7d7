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

package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calloway-labs/vcs2600/curated"
)

// fakeBus records every write a controller or switch panel publishes,
// keyed the way VCSMemory would receive it.
type fakeBus struct {
	swcha, swchaMask uint8
	read             map[string]uint8
}

func newFakeBus() *fakeBus { return &fakeBus{read: map[string]uint8{}} }

func (b *fakeBus) InputDeviceWrite(address uint16, data uint8, mask uint8) {
	b.swcha = (b.swcha &^ mask) | (data & mask)
	b.swchaMask |= mask
}

func (b *fakeBus) SetTIAReadValue(symbol string, value uint8) { b.read[symbol] = value }

func TestSwitchesPowerOnState(t *testing.T) {
	bus := newFakeBus()
	NewSwitches(bus)
	require.Equal(t, uint8(0x3f), bus.swcha)
}

func TestSwitchesGameResetIsActiveLow(t *testing.T) {
	bus := newFakeBus()
	s := NewSwitches(bus)
	s.SetGameReset(true)
	require.Zero(t, bus.swcha&bitGameReset, "pressed reset should clear its bit")
	s.SetGameReset(false)
	require.NotZero(t, bus.swcha&bitGameReset, "released reset should set its bit")
}

func TestSwitchesDifficultyIsActiveHigh(t *testing.T) {
	bus := newFakeBus()
	s := NewSwitches(bus)
	s.SetDifficulty0(true)
	require.NotZero(t, bus.swcha&bitDifficulty0, "advanced difficulty sets the bit")
	s.SetDifficulty0(false)
	require.Zero(t, bus.swcha&bitDifficulty0)
}

func TestJoystickPowerOnState(t *testing.T) {
	bus := newFakeBus()
	NewJoystick(bus, Port0)
	require.Equal(t, uint8(0x0f), bus.swcha&0x0f, "all four directions released")
	require.Equal(t, uint8(0x80), bus.read["INPT4"], "fire released reads high")
}

func TestJoystickPort1UsesHighNibble(t *testing.T) {
	bus := newFakeBus()
	j := NewJoystick(bus, Port1)
	require.NoError(t, j.Digital(Up, true))
	highUpBit := uint8(bitUp) << 4
	require.Zero(t, bus.swcha&highUpBit, "player 1's up bit lives in the high nibble")
}

func TestJoystickDigitalPressAndRelease(t *testing.T) {
	bus := newFakeBus()
	j := NewJoystick(bus, Port0)
	require.NoError(t, j.Digital(Left, true))
	require.Zero(t, bus.swcha&bitLeft, "pressed direction reads 0")
	require.NoError(t, j.Digital(Left, false))
	require.NotZero(t, bus.swcha&bitLeft, "released direction reads 1")
}

func TestJoystickFireLine(t *testing.T) {
	bus := newFakeBus()
	j := NewJoystick(bus, Port0)
	require.NoError(t, j.Fire(true))
	require.Equal(t, uint8(0x00), bus.read["INPT4"])
	require.NoError(t, j.Fire(false))
	require.Equal(t, uint8(0x80), bus.read["INPT4"])
}

func TestJoystickPotAndKeyAreNotImplemented(t *testing.T) {
	bus := newFakeBus()
	j := NewJoystick(bus, Port0)
	err := j.Pot(128)
	require.Error(t, err)
	require.True(t, curated.Is(err, curated.InputError))

	err = j.Key(0, 0, true)
	require.Error(t, err)
	require.True(t, curated.Is(err, curated.InputError))
}

func TestPaddleIsAllStub(t *testing.T) {
	bus := newFakeBus()
	p := NewPaddle(bus, "INPT0")
	require.Error(t, p.Digital(Up, true))
	require.Error(t, p.Fire(true))
	require.Error(t, p.Pot(64))
	require.Error(t, p.Key(0, 0, true))
}

func TestKeypadIsAllStub(t *testing.T) {
	bus := newFakeBus()
	k := NewKeypad(bus)
	require.Error(t, k.Digital(Up, true))
	require.Error(t, k.Fire(true))
	require.Error(t, k.Pot(0))
	require.Error(t, k.Key(1, 2, true))
}
