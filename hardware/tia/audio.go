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

// SampleRate is the TIA's base audio clock, from which the host sink
// derives an actual waveform per the control-code table in the design
// notes; the core itself never samples a waveform.
const SampleRate = 31400

// voice is one of the TIA's two audio channels: a lazily-updated
// descriptor of waveform selector, frequency divider and volume, with no
// internal oscillator state of its own.
type voice struct {
	control   uint8
	frequency uint8
	volume    uint8
}
