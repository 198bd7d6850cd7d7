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

import (
	"github.com/go-echarts/statsview"
)

// startStats runs a live goroutine/GC dashboard in the background, opt-in
// via VCS2600_STATS=1, since it has no bearing on emulation correctness and
// most runs shouldn't pay for it.
func startStats() {
	mgr := statsview.New()
	go mgr.Start()
}
