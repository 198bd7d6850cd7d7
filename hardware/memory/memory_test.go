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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calloway-labs/vcs2600/hardware/memory"
	"github.com/calloway-labs/vcs2600/hardware/memory/cartridge"
)

func TestRAMReadWrite(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	require.NoError(t, mem.Write(0x0082, 0x42))
	v, err := mem.Read(0x0082)
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), v)
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	require.NoError(t, mem.Write(0x0082, 0x99))
	// $0482 mirrors the same 128-byte RAM window
	v, err := mem.Read(0x0482)
	require.NoError(t, err)
	require.Equal(t, uint8(0x99), v)
}

func TestTIAWriteIsBufferedForPolling(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	ok, _ := mem.ChipRead()
	require.False(t, ok)

	require.NoError(t, mem.Write(0x06, 0x0e)) // COLUP0
	ok, data := mem.ChipRead()
	require.True(t, ok)
	require.Equal(t, "COLUP0", data.Name)
	require.Equal(t, uint8(0x0e), data.Value)

	// a single write is only reported once
	ok, _ = mem.ChipRead()
	require.False(t, ok)
}

func TestTIAReadReflectsPublishedValue(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	mem.SetTIAReadValue("INPT0", 0x80)
	v, err := mem.Read(0x08)
	require.NoError(t, err)
	require.Equal(t, uint8(0x80), v)
}

func TestRIOTRegisterDispatch(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	require.NoError(t, mem.Write(0x0294, 10)) // TIM1T
	v, err := mem.Read(0x0284) // INTIM
	require.NoError(t, err)
	require.Equal(t, uint8(10), v)
}

func TestInputDeviceWriteSetsSWCHA(t *testing.T) {
	mem := memory.NewVCSMemory(nil)

	mem.InputDeviceWrite(0x0280, 0xff, 0xf0)
	v, err := mem.Read(0x0280)
	require.NoError(t, err)
	require.Equal(t, uint8(0xf0), v)
}

func TestCartridgeDelegation(t *testing.T) {
	data := make([]byte, 4096)
	data[0] = 0x7e
	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.Scheme4k, false)
	require.NoError(t, err)

	mem := memory.NewVCSMemory(cart)
	v, err := mem.Read(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint8(0x7e), v)
}

func TestNoCartridgeAttached(t *testing.T) {
	mem := memory.NewVCSMemory(nil)
	_, err := mem.Read(0x1000)
	require.Error(t, err)
}
