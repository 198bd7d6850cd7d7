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

// Package cartridge implements the Atari-designed bank-switching schemes:
//
//   - 2k / 4k (no switching at all)
//   - F8 (8k, 2 banks)
//   - E0 (8k, three independently-switched 1k slots)
//   - FA (12k, 3 banks + 256 bytes of on-cart RAM)
//   - F6 (16k, 4 banks)
//   - F4 (32k, 8 banks)
//   - EF (64k, 16 banks)
//
// all of which optionally add the 128-byte "superchip" RAM to the first 256
// bytes of cartridge address space. Third-party schemes (Parker Bros.,
// MNetwork, Tigervision, CBS RAM+, the DPC/DPC+ coprocessor formats) are out
// of scope.
package cartridge
