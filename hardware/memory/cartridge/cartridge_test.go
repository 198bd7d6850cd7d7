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

package cartridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calloway-labs/vcs2600/hardware/memory/cartridge"
)

func fill(size int, fn func(i int) byte) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = fn(i)
	}
	return data
}

func TestGuessSchemeFromSize(t *testing.T) {
	cases := []struct {
		size   int
		scheme string
	}{
		{2048, cartridge.Scheme2k},
		{4096, cartridge.Scheme4k},
		{8192, cartridge.SchemeF8},
		{12288, cartridge.SchemeFA},
		{16384, cartridge.SchemeF6},
		{32768, cartridge.SchemeF4},
		{65536, cartridge.SchemeEF},
	}

	for _, c := range cases {
		data := fill(c.size, func(i int) byte { return byte(i) })
		cart, err := cartridge.NewFromBytes("test.bin", data, "", false)
		require.NoError(t, err)
		require.Equal(t, c.scheme, cart.Scheme())
	}
}

func TestUnsupportedSize(t *testing.T) {
	_, err := cartridge.NewFromBytes("test.bin", make([]byte, 123), "", false)
	require.Error(t, err)
}

func TestUnsupportedSchemeFallsBackTo4K(t *testing.T) {
	data := fill(8192, func(i int) byte { return byte(i) })
	cart, err := cartridge.NewFromBytes("test.bin", data, "zz9", false)
	require.NoError(t, err)
	require.Equal(t, cartridge.Scheme4k, cart.Scheme())
	require.Equal(t, 1, cart.NumBanks())

	v, err := cart.Read(0x000)
	require.NoError(t, err)
	require.Equal(t, data[0], v)
}

func TestF8BankSwitch(t *testing.T) {
	data := make([]byte, 8192)
	data[0] = 0xaa       // bank 0, offset 0
	data[4096] = 0xbb    // bank 1, offset 0

	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.SchemeF8, false)
	require.NoError(t, err)
	require.Equal(t, 0, cart.CurBank())

	v, err := cart.Read(0x000)
	require.NoError(t, err)
	require.Equal(t, uint8(0xaa), v)

	// addressing the hotspot switches the bank as a side effect of the read
	_, err = cart.Read(0xff9)
	require.NoError(t, err)
	require.Equal(t, 1, cart.CurBank())

	v, err = cart.Read(0x000)
	require.NoError(t, err)
	require.Equal(t, uint8(0xbb), v)

	_, err = cart.Read(0xff8)
	require.NoError(t, err)
	require.Equal(t, 0, cart.CurBank())
}

func TestE0SlotSwitch(t *testing.T) {
	data := make([]byte, 8192)
	for seg := 0; seg < 8; seg++ {
		data[seg*1024] = byte(seg)
	}

	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.SchemeE0, false)
	require.NoError(t, err)

	// slot 0 starts out mapped to segment 0
	v, err := cart.Read(0x000)
	require.NoError(t, err)
	require.Equal(t, uint8(0), v)

	// addressing $FE3 maps segment 3 into slot 0
	_, err = cart.Read(0xfe3)
	require.NoError(t, err)

	v, err = cart.Read(0x000)
	require.NoError(t, err)
	require.Equal(t, uint8(3), v)
}

func TestEFHotspotInclusiveBothWays(t *testing.T) {
	data := make([]byte, 65536)
	for seg := 0; seg < 16; seg++ {
		data[seg*4096] = byte(seg)
	}

	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.SchemeEF, false)
	require.NoError(t, err)

	// writing to the last hotspot address ($FEF) must switch banks, not
	// just reading -- this is the condition that was fixed from an
	// always-false comparison.
	require.NoError(t, cart.Write(0xfef, 0x00))
	require.Equal(t, 15, cart.CurBank())

	require.NoError(t, cart.Write(0xfe0, 0x00))
	require.Equal(t, 0, cart.CurBank())
}

func TestSuperchipDetection(t *testing.T) {
	data := fill(4096, func(i int) byte {
		if i < 256 {
			return 0
		}
		return byte(i)
	})

	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.Scheme4k, true)
	require.NoError(t, err)
	require.Len(t, cart.RAMInfo(), 1)

	require.NoError(t, cart.Write(0x0010, 0x42))
	v, err := cart.Read(0x0090) // read port is offset +128 from write port
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), v)
}

func TestSuperchipNotAddedWhenROMUsesThatSpace(t *testing.T) {
	data := fill(4096, func(i int) byte { return byte(i) })

	cart, err := cartridge.NewFromBytes("test.bin", data, cartridge.Scheme4k, true)
	require.NoError(t, err)
	require.Empty(t, cart.RAMInfo())
}
