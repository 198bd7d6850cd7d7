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

package tia

import (
	"testing"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually-advanced colour-clock axis for register-write
// tests; Now never moves on its own, only when a test calls advance.
type fakeClock struct {
	now    uint64
	wsyncs int
	frames int
}

func (c *fakeClock) Now() uint64      { return c.now }
func (c *fakeClock) WSync()           { c.wsyncs++ }
func (c *fakeClock) FrameComplete()   { c.frames++ }
func (c *fakeClock) advance(n uint64) { c.now += n }

// fakeBus feeds one buffered register write at a time, the way VCSMemory's
// ChipRead drains its own write buffer, and records every value the TIA
// publishes back for the CPU to read.
type fakeBus struct {
	pending []ChipData
	read    map[string]uint8
}

func newFakeBus() *fakeBus { return &fakeBus{read: map[string]uint8{}} }

func (b *fakeBus) queue(name string, value uint8) { b.pending = append(b.pending, ChipData{Name: name, Value: value}) }

func (b *fakeBus) ChipRead() (bool, ChipData) {
	if len(b.pending) == 0 {
		return false, ChipData{}
	}
	d := b.pending[0]
	b.pending = b.pending[1:]
	return true, d
}

func (b *fakeBus) SetTIAReadValue(symbol string, value uint8) { b.read[symbol] = value }

// recordingSink captures every delivered pixel and frame boundary.
type recordingSink struct {
	pixels [][3]int // line, col, colour
	frames int
}

func (r *recordingSink) SetPixel(line, col int, colour uint8) {
	r.pixels = append(r.pixels, [3]int{line, col, int(colour)})
}
func (r *recordingSink) NewFrame() error { r.frames++; return nil }

func newTestTIA() (*TIA, *fakeClock, *fakeBus, *recordingSink) {
	clock := &fakeClock{}
	bus := newFakeBus()
	sink := &recordingSink{}
	return NewTIA(clock, sink, nil), clock, bus, sink
}

func TestVSYNCRisingEdgeDeliversFrame(t *testing.T) {
	tia, _, bus, sink := newTestTIA()
	bus.queue("VSYNC", 0x02)
	require.NoError(t, tia.Step(bus))
	require.Equal(t, 1, sink.frames)
}

func TestVSYNCFallingEdgeDoesNotDeliverFrame(t *testing.T) {
	tia, _, bus, sink := newTestTIA()
	bus.queue("VSYNC", 0x02)
	require.NoError(t, tia.Step(bus))
	bus.queue("VSYNC", 0x00)
	require.NoError(t, tia.Step(bus))
	require.Equal(t, 1, sink.frames, "only the rising edge strobes a new frame")
}

func TestWSYNCDelegatesToClock(t *testing.T) {
	tia, clock, bus, _ := newTestTIA()
	bus.queue("WSYNC", 0x00)
	require.NoError(t, tia.Step(bus))
	require.Equal(t, 1, clock.wsyncs)
}

func TestBackgroundColourFillsCanvasOnFrameDelivery(t *testing.T) {
	tia, clock, bus, sink := newTestTIA()
	bus.queue("COLUBK", 0x1e)
	require.NoError(t, tia.Step(bus))

	clock.advance(ScanlineWidth) // render one scanline's worth before VSYNC
	bus.queue("VSYNC", 0x02)
	require.NoError(t, tia.Step(bus))

	require.NotEmpty(t, sink.pixels)
	for _, p := range sink.pixels[:VisibleWidth] {
		require.Equal(t, 0x1e, p[2], "every visible column on line 0 should carry COLUBK")
	}
}

func TestCXCLRResetsCollisionLatches(t *testing.T) {
	tia, clock, bus, _ := newTestTIA()

	// Park player0 and missile0 on the same column (the first visible one)
	// and let a scanline of beam time render so a collision actually latches.
	bus.queue("GRP0", 0xff)
	require.NoError(t, tia.Step(bus))
	clock.advance(HBlankWidth + 63) // RESP0 at colour clock 131 places player0 at 68
	bus.queue("RESP0", 0x00)
	require.NoError(t, tia.Step(bus))
	bus.queue("ENAM0", 0x02)
	require.NoError(t, tia.Step(bus))
	clock.advance(1) // RESM0 at colour clock 132 places missile0 at 68
	bus.queue("RESM0", 0x00)
	require.NoError(t, tia.Step(bus))

	clock.advance(ScanlineWidth)
	bus.queue("COLUBK", 0x00) // any write forces a catch-up through the overlapping column
	require.NoError(t, tia.Step(bus))

	require.NotZero(t, bus.read["CXM0P"], "player0/missile0 should have collided")

	bus.queue("CXCLR", 0x00)
	require.NoError(t, tia.Step(bus))
	require.Zero(t, bus.read["CXM0P"], "CXCLR must clear every latch")
}

func TestUnknownRegisterIsCuratedError(t *testing.T) {
	tia, _, bus, _ := newTestTIA()
	bus.queue("NOSUCHREG", 0x00)
	err := tia.Step(bus)
	require.Error(t, err)
	require.True(t, curated.Is(err, curated.BusError))
}

func TestVBlankForcesBlankedCanvas(t *testing.T) {
	tia, clock, bus, sink := newTestTIA()
	bus.queue("COLUBK", 0x1e)
	require.NoError(t, tia.Step(bus))
	bus.queue("VBLANK", 0x02)
	require.NoError(t, tia.Step(bus))

	clock.advance(ScanlineWidth)
	bus.queue("VSYNC", 0x02)
	require.NoError(t, tia.Step(bus))

	require.NotEmpty(t, sink.pixels)
	for _, p := range sink.pixels[:VisibleWidth] {
		require.Zero(t, p[2], "columns composited during VBLANK must render blanked, not COLUBK")
	}
}

// composeFixture overlaps P0, P1 and the playfield at the same column so
// compose's priority ordering can be checked directly, without routing
// through the catch-up machinery's own column-by-column timing.
func composeFixture() *TIA {
	tia := NewTIA(&fakeClock{}, &recordingSink{}, nil)
	tia.p0.graphic = 0xff
	tia.p0.drawTime = HBlankWidth
	tia.p1.graphic = 0xff
	tia.p1.drawTime = HBlankWidth
	tia.pf.pf0 = 0xf0 // lights visible columns 0-15
	tia.pf.decode()
	tia.colup0 = 0x10
	tia.colup1 = 0x20
	tia.colupf = 0x30
	return tia
}

func TestNonPriorityOrderPaintsP0OverP1(t *testing.T) {
	tia := composeFixture()
	colour, _ := tia.compose(0)
	require.Equal(t, uint8(0x10), colour, "P0 must paint on top of an overlapping P1")
}

func TestPriorityOrderPaintsPlayfieldOverSprites(t *testing.T) {
	tia := composeFixture()
	tia.pf.priority = true
	colour, _ := tia.compose(0)
	require.Equal(t, uint8(0x30), colour, "the priority playfield must paint over overlapping sprites")
}

func TestHMValueDecodesSignedNibble(t *testing.T) {
	require.Equal(t, 7, hmValue(0x70))
	require.Equal(t, -8, hmValue(0x80))
	require.Equal(t, 0, hmValue(0x00))
}

func TestPlayfieldDecodeLeftHalf(t *testing.T) {
	pf := &playfield{pf0: 0xf0, pf1: 0x00, pf2: 0x00}
	pf.decode()
	for i := 0; i < 16; i++ {
		require.True(t, pf.left[i], "PF0 bits 4-7 all set should light the first 16 columns")
	}
	for i := 16; i < len(pf.left); i++ {
		require.False(t, pf.left[i])
	}
}
