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

package curated

// Pattern constants for the curated errors raised by the core packages.
// Use curated.Is/curated.Has against these rather than string-matching
// Error() output.
const (
	// CartridgeError covers ROM loading and bank-switching failures: wrong
	// image size for the requested scheme, unsupported format, superchip
	// RAM access out of range.
	CartridgeError = "cartridge: %v"

	// BusError covers address-bus failures: reads/writes that fall outside
	// any decoded range.
	BusError = "bus: %v"

	// CPUError covers instruction-decode failures: an opcode byte with no
	// entry in the dispatch table.
	CPUError = "cpu: %v"

	// InputError covers controller failures: an operation invoked against a
	// capability the attached controller doesn't implement.
	InputError = "input: %v"

	// ErrNotImplemented is wrapped by InputError (and elsewhere) to mark
	// deliberately incomplete functionality, such as the Paddle and Keypad
	// controller stubs.
	ErrNotImplemented = "not implemented"
)
