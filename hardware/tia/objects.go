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

// playfield holds the three packed PF registers and the 160-column bitmap
// decoded from them. The bitmap is rebuilt (decode) every time one of the
// three registers is written, rather than on every pixel, since it only
// ever changes on a write.
type playfield struct {
	pf0, pf1, pf2 uint8
	reflect       bool
	scoreMode     bool
	priority      bool

	left [VisibleWidth / 2]bool
}

// decode rebuilds the left 80-column half of the bitmap from the three PF
// registers: PF0 bits 4-7 little-endian, PF1 MSB-first, PF2 LSB-first, each
// bit expanded to 4 pixels.
func (pf *playfield) decode() {
	var bits [20]bool
	for i := 0; i < 4; i++ {
		bits[i] = pf.pf0&(1<<(4+i)) != 0
	}
	for i := 0; i < 8; i++ {
		bits[4+i] = pf.pf1&(1<<(7-i)) != 0
	}
	for i := 0; i < 8; i++ {
		bits[12+i] = pf.pf2&(1<<i) != 0
	}

	for i, b := range bits {
		pf.left[i*4+0] = b
		pf.left[i*4+1] = b
		pf.left[i*4+2] = b
		pf.left[i*4+3] = b
	}
}

// paints reports whether the playfield is lit at visible column col.
func (pf *playfield) paints(col int) bool {
	if col < len(pf.left) {
		return pf.left[col]
	}
	right := col - len(pf.left)
	if pf.reflect {
		return pf.left[len(pf.left)-1-right]
	}
	return pf.left[right]
}

// nusizCopy describes one NUSIZ-selected replication pattern: the pixel
// offsets (from drawTime) at which a copy begins, and the per-bit width
// scale (1 for a normal copy, 2 or 4 for the double/quad-width single-copy
// variants).
type nusizCopy struct {
	offsets []int
	scale   int
}

var nusizTable = map[uint8]nusizCopy{
	0: {offsets: []int{0}, scale: 1},
	1: {offsets: []int{0, 16}, scale: 1},
	2: {offsets: []int{0, 32}, scale: 1},
	3: {offsets: []int{0, 16, 32}, scale: 1},
	4: {offsets: []int{0, 64}, scale: 1},
	5: {offsets: []int{0}, scale: 2},
	6: {offsets: []int{0, 32, 64}, scale: 1},
	7: {offsets: []int{0}, scale: 4},
}

// player is one of P0/P1: an 8-bit graphics pattern replicated and/or
// scaled according to NUSIZ, placed starting at drawTime (a full-scanline
// colour-clock position, set by RESP0/RESP1 and shifted by HMOVE).
type player struct {
	graphic  uint8
	reflect  bool
	nusiz    uint8
	drawTime int
	hm       int
}

// paints reports whether any copy of the player's graphic is lit at visible
// column col (a column in the 0-159 post-HBlank space).
func (p *player) paints(col int) bool {
	if p.graphic == 0 {
		return false
	}
	full := col + HBlankWidth
	shape := nusizTable[p.nusiz&0x07]

	for _, offset := range shape.offsets {
		start := p.drawTime + offset
		width := 8 * shape.scale
		if full < start || full >= start+width {
			continue
		}
		idx := (full - start) / shape.scale
		bit := 7 - idx
		if p.reflect {
			bit = idx
		}
		if p.graphic&(1<<uint(bit)) != 0 {
			return true
		}
	}
	return false
}

// missileWidth maps NUSIZ bits 4-5 (missiles) or CTRLPF bits 4-5 (ball) to
// a pixel width.
func missileWidth(sel uint8) int {
	return 1 << (sel & 0x03)
}

// missile is one of M0/M1. Setting resmp (RESMP*) copies the corresponding
// player's drawTime to the missile and makes RESM* writes ignored; later
// player moves are not followed while it stays set. Clearing resmp latches the
// missile's own position at the player's drawTime as of that moment, per
// the documented (non "+223 mod 228") behaviour this core implements.
type missile struct {
	enabled  bool
	nusiz    uint8
	drawTime int
	hm       int
	resmp    bool
}

func (m *missile) paints(col int) bool {
	if !m.enabled {
		return false
	}
	full := col + HBlankWidth
	width := missileWidth(m.nusiz >> 4)
	return full >= m.drawTime && full < m.drawTime+width
}

// ball is BL, the single 1-8 pixel wide object with no replication.
type ball struct {
	enabled  bool
	widthSel uint8
	drawTime int
	hm       int
}

func (b *ball) paints(col int) bool {
	if !b.enabled {
		return false
	}
	full := col + HBlankWidth
	width := missileWidth(b.widthSel)
	return full >= b.drawTime && full < b.drawTime+width
}
