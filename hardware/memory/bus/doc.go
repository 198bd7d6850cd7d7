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

// Package bus defines the access patterns different parts of the emulation
// use against VCS memory. The CPU sees a single flat 16-bit address space
// (CPUBus); the TIA and RIOT chips instead see only the writes addressed to
// their own registers (ChipBus), so neither chip has to decode addresses
// outside its own range. DebuggerBus is for tooling that needs to inspect or
// alter memory without going through either of those access patterns.
package bus
