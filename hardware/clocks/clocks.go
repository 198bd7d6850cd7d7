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

// Package clocks defines the constant values that relate the 6507's cycle
// rate to the TIA's colour-clock rate, and the colour-clock geometry of a
// single television line.
//
// Approximate real-world frequencies (MHz), taken from
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds,
// are kept for documentation purposes; the emulation core itself only cares
// about the integer ratios below.
package clocks

const (
	NTSC  = 1.193182
	PAL   = 1.182298
	PAL_M = 1.191870
	SECAM = 1.187500
)

const (
	NTSC_TIA  = NTSC * 3
	PAL_TIA   = PAL * 3
	PAL_M_TIA = PAL_M * 3
	SECAM_TIA = SECAM * 3
)

// PerCPUCycle is the number of colour clocks the TIA advances for every CPU
// cycle the 6507 spends. The CPU, TIA and RIOT timer all share this one
// fixed ratio regardless of television standard.
const PerCPUCycle = 3

// ScanlineWidth is the number of colour clocks in one television scanline
// (68 clocks of horizontal blanking followed by 160 clocks of visible
// picture).
const ScanlineWidth = 228

// VisibleWidth is the number of colour clocks of visible picture within a
// scanline, following HBlank.
const VisibleWidth = 160

// HBlankWidth is the number of colour clocks of horizontal blanking at the
// start of a scanline, before the visible picture begins.
const HBlankWidth = ScanlineWidth - VisibleWidth
