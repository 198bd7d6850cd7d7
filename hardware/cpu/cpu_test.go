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

package cpu

import (
	"testing"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

// flatBus is a 64K byte array standing in for VCSMemory in these
// instruction-level tests; it has no chip behaviour, just storage.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) (uint8, error)  { return b.mem[addr], nil }
func (b *flatBus) Write(addr uint16, v uint8) error { b.mem[addr] = v; return nil }

// fakeClock records the total colour-clock cost published across a test.
type fakeClock struct{ total int }

func (c *fakeClock) Advance(cpuCycles int) { c.total += cpuCycles * 3 }

func newTestCPU() (*CPU, *flatBus, *fakeClock) {
	bus := &flatBus{}
	clock := &fakeClock{}
	c := NewCPU(bus, clock)
	return c, bus, clock
}

func (b *flatBus) load(addr uint16, program ...uint8) {
	for i, v := range program {
		b.mem[int(addr)+i] = v
	}
}

func TestResetVector(t *testing.T) {
	c, bus, _ := newTestCPU()
	bus.mem[0xfffc] = 0x00
	bus.mem[0xfffd] = 0xf0
	require.NoError(t, c.Reset())
	require.Equal(t, uint16(0xf000), c.PC)
	require.Equal(t, uint8(0xfd), c.S)
	require.True(t, c.Status.I, "I flag should be set after reset")
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, bus, clock := newTestCPU()
	c.PC = 0xf000
	bus.load(0xf000, 0xa9, 0x00) // LDA #$00
	require.NoError(t, c.Step())
	require.Zero(t, c.A)
	require.True(t, c.Status.Z)
	require.False(t, c.Status.N)
	require.Equal(t, 6, clock.total, "2 cycles * 3 colour clocks")
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	c, bus, clock := newTestCPU()
	c.PC = 0xf000
	c.X = 0xff
	bus.mem[0x0201+0xff] = 0x42
	bus.load(0xf000, 0xbd, 0x01, 0x02) // LDA $0201,X -- crosses from page 2 to page 3
	require.NoError(t, c.Step())
	require.Equal(t, uint8(0x42), c.A)
	require.Equal(t, 15, clock.total, "base 4 + 1 page-cross = 5 cycles = 15 colour clocks")
}

func TestBranchTakenSamePage(t *testing.T) {
	c, bus, clock := newTestCPU()
	c.PC = 0xf000
	c.Status.Z = true
	bus.load(0xf000, 0xf0, 0x10) // BEQ +16, same page
	require.NoError(t, c.Step())
	require.Equal(t, uint16(0xf012), c.PC)
	require.Equal(t, 9, clock.total, "3 cycles = 9 colour clocks")
}

func TestBranchTakenDifferentPage(t *testing.T) {
	c, bus, clock := newTestCPU()
	c.PC = 0xf0fa
	c.Status.N = true
	bus.load(0xf0fa, 0x30, 0x10) // BMI +16, crosses into the next page
	require.NoError(t, c.Step())
	require.Equal(t, uint16(0xf10c), c.PC)
	require.Equal(t, 12, clock.total, "4 cycles = 12 colour clocks")
}

func TestBranchNotTaken(t *testing.T) {
	c, bus, clock := newTestCPU()
	c.PC = 0xf000
	c.Status.Z = false
	bus.load(0xf000, 0xf0, 0x10) // BEQ, condition false
	require.NoError(t, c.Step())
	require.Equal(t, uint16(0xf002), c.PC)
	require.Equal(t, 6, clock.total)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	c.A = 0x5a
	c.S = 0xfd
	bus.load(0xf000, 0x48, 0xa9, 0x00, 0x68) // PHA; LDA #0; PLA
	for i := 0; i < 3; i++ {
		require.NoErrorf(t, c.Step(), "step %d", i)
	}
	require.Equal(t, uint8(0x5a), c.A, "A after PLA")
	require.Equal(t, uint8(0xfd), c.S, "S after round trip")
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	before := Status{C: true, V: true, N: true}
	c.Status = before
	bus.load(0xf000, 0x08, 0x18, 0x28) // PHP; CLC; PLP
	for i := 0; i < 3; i++ {
		require.NoErrorf(t, c.Step(), "step %d", i)
	}
	if diff := deep.Equal(before, c.Status); diff != nil {
		t.Fatalf("status not fully restored: %v\n%s", diff, spew.Sdump(c))
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	c.S = 0xfd
	bus.load(0xf000, 0x20, 0x00, 0xf1) // JSR $f100
	bus.load(0xf100, 0x60)             // RTS
	require.NoError(t, c.Step(), "JSR")
	require.Equal(t, uint16(0xf100), c.PC)
	require.NoError(t, c.Step(), "RTS")
	require.Equal(t, uint16(0xf003), c.PC)
	require.Equal(t, uint8(0xfd), c.S, "S after round trip")
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	bus.load(0xf000, 0x6c, 0xff, 0x02) // JMP ($02ff)
	bus.mem[0x02ff] = 0x34
	bus.mem[0x0200] = 0x12 // hardware bug: high byte wraps within the page
	bus.mem[0x0300] = 0xff // would be the "correct" location; must be ignored
	require.NoError(t, c.Step())
	require.Equalf(t, uint16(0x1234), c.PC, "page-wrap bug\n%s", spew.Sdump(c))
}

func TestADCDecimalMode(t *testing.T) {
	c, _, _ := newTestCPU()
	c.Status.D = true
	c.Status.C = false
	c.A = 0x15
	result := c.adcDecimal(c.A, 0x27)
	require.Equalf(t, uint8(0x42), result, "0x15 + 0x27 BCD\n%s", spew.Sdump(c.Status))
	require.False(t, c.Status.C)
	require.False(t, c.Status.N)
	require.False(t, c.Status.V)
}

func TestADCDecimalZFlagReflectsBinarySum(t *testing.T) {
	// 0x99 + 0x01 BCD should produce a decimal-adjusted $00 with carry out,
	// but the documented NMOS quirk is that Z comes from the raw binary sum
	// (0x9a), which is not zero.
	c, _, _ := newTestCPU()
	c.Status.D = true
	c.Status.C = false
	c.A = 0x99
	result := c.adcDecimal(c.A, 0x01)
	require.Equal(t, uint8(0x00), result)
	require.True(t, c.Status.C)
	require.False(t, c.Status.Z, "NMOS quirk: Z reflects the binary sum $9a, not the decimal result")
}

func TestCompareSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	c.A = 0x10
	bus.load(0xf000, 0xc9, 0x10) // CMP #$10
	require.NoError(t, c.Step())
	require.True(t, c.Status.C)
	require.True(t, c.Status.Z)
}

func TestUnknownOpcodeIsCuratedError(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.PC = 0xf000
	bus.mem[0xf000] = 0xff // not a documented opcode
	err := c.Step()
	require.Error(t, err, "undocumented opcode should fail")
	require.True(t, curated.Is(err, curated.CPUError))
}
