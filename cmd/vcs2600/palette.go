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

package main

import "github.com/calloway-labs/vcs2600/gui/sdl"

// ntscPalette derives an approximate NTSC palette from a colour index's two
// components -- hue (bits 4-7) and luminance (bits 1-3) -- the way real TIA
// silicon splits COLUxx. The exact phosphor values are display-surface
// concern, not a core one (spec.md excludes palette constants from its
// scope), so this is just a plausible default for the bundled SDL front
// end; any other PixelSink is free to supply its own Palette.
func ntscPalette() sdl.Palette {
	var p sdl.Palette

	hueAngle := [16]float64{
		0, 0, 41, 75, 101, 131, 161, 189,
		220, 246, 270, 300, 330, 0, 0, 0,
	}

	for colour := 0; colour < 128; colour++ {
		hue := (colour >> 4) & 0x0f
		lum := (colour >> 1) & 0x07
		luminance := 0.08 + float64(lum)*0.12

		var r, g, b float64
		if hue == 0 {
			// greyscale column
			r, g, b = luminance, luminance, luminance
		} else {
			r, g, b = hslToRGB(hueAngle[hue], 0.6, luminance)
		}

		p[colour] = [3]uint8{clamp8(r), clamp8(g), clamp8(b)}
	}

	return p
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v * 255)
}

// hslToRGB is the standard HSL->RGB conversion, hue in degrees.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(mod2(hp)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := l - c/2
	return r1 + m, g1 + m, b1 + m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}
