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

// catchUp commits canvas pixels from the TIA's last checkpoint up to
// target, using the register state as it stood *before* the write that
// asked for this catch-up -- the write itself is applied by the caller only
// after catchUp returns, so no canvas pixel before target ever reflects it.
// Every scanline fully or partially spanned is recomposited from scratch
// with the (unchanged, since nothing happened in that span) current
// register state; this is equivalent to -- and considerably simpler than --
// caching a single line template and replicating it, since between two
// register writes nothing about the compositor's inputs actually changes.
func (t *TIA) catchUp(target uint64) {
	if target <= t.lastUpdate {
		return
	}

	for t.lastUpdate < target {
		rel := t.lastUpdate - t.frameOrigin
		line := int(rel / ScanlineWidth)
		fromCol := int(rel % ScanlineWidth)

		lineEnd := t.frameOrigin + uint64(line+1)*ScanlineWidth
		end := target
		if lineEnd < end {
			end = lineEnd
		}
		toCol := int(end - t.frameOrigin - uint64(line)*ScanlineWidth)

		t.renderSpan(line, fromCol, toCol)

		t.lastUpdate = end
	}
}

// renderSpan composites columns [fromCol,toCol) of scanline line, testing
// collisions as it goes. Columns within HBLANK (the first 68 of every
// scanline) carry no visible object and are skipped.
func (t *TIA) renderSpan(line, fromCol, toCol int) {
	if line < 0 || line >= maxLines {
		return
	}

	for col := fromCol; col < toCol; col++ {
		if col < HBlankWidth {
			continue
		}
		visCol := col - HBlankWidth

		if t.vblank {
			t.canvas[line][visCol] = 0
			continue
		}

		colour, hit := t.compose(visCol)
		t.canvas[line][visCol] = colour
		t.collisions.record(hit)
	}
}

// objectHit records, for a single column, which of the six drawable
// objects (P0, P1, M0, M1, BL, PF) painted a pixel there. Collisions are
// derived from this per-column set rather than per-pixel colour
// comparisons, matching the "prefer bitsets" design note.
type objectHit struct {
	p0, p1, m0, m1, bl, pf bool
}

// compose resolves the final colour of one visible column, applying the
// priority ordering and score-mode override the CTRLPF register selects.
func (t *TIA) compose(visCol int) (uint8, objectHit) {
	var hit objectHit
	hit.p0 = t.p0.paints(visCol)
	hit.p1 = t.p1.paints(visCol)
	hit.m0 = t.m0.paints(visCol)
	hit.m1 = t.m1.paints(visCol)
	hit.bl = t.bl.paints(visCol)
	hit.pf = t.pf.paints(visCol)

	pfColour := t.colupf
	if t.pf.scoreMode && !t.pf.priority {
		if visCol < VisibleWidth/2 {
			pfColour = t.colup0
		} else {
			pfColour = t.colup1
		}
	}

	colour := t.colubk
	paint := func(paints bool, c uint8) {
		if paints {
			colour = c
		}
	}

	if t.pf.priority {
		paint(hit.p1 || hit.m1, t.colup1)
		paint(hit.p0 || hit.m0, t.colup0)
		paint(hit.bl || hit.pf, pfColour)
	} else {
		paint(hit.pf || hit.bl, pfColour)
		paint(hit.p1 || hit.m1, t.colup1)
		paint(hit.p0 || hit.m0, t.colup0)
	}

	return colour, hit
}

// deliverFrame completes the current canvas, hands it and the two audio
// voice descriptors to the sinks, and resets for the next frame. Called on
// VSYNC's leading edge once the write that caused it has been caught up to.
func (t *TIA) deliverFrame() error {
	for line := 0; line < maxLines; line++ {
		for col := 0; col < VisibleWidth; col++ {
			t.pixels.SetPixel(line, col, t.canvas[line][col])
		}
		t.canvas[line] = [VisibleWidth]uint8{}
	}

	if t.audioSink != nil {
		t.audioSink.EmitFrame(
			Voice{Control: t.voice0.control, Frequency: t.voice0.frequency, Volume: t.voice0.volume},
			Voice{Control: t.voice1.control, Frequency: t.voice1.frequency, Volume: t.voice1.volume},
		)
	}

	t.frameOrigin = t.lastUpdate
	t.clock.FrameComplete()
	return t.pixels.NewFrame()
}
