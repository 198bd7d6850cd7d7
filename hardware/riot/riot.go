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

package riot

import (
	"fmt"

	"github.com/calloway-labs/vcs2600/curated"
)

// Ports is whatever currently supplies the RIOT's two 8-bit I/O ports. Port
// A carries the joystick/paddle/keypad lines for both players; port B
// carries the console switches (difficulty, colour/BW, select, reset).
type Ports interface {
	InputA() uint8
	InputB() uint8
}

// Chip is the PIA/RIOT: the interval timer (Clock) plus the two I/O ports
// and their data-direction registers. VCSMemory delegates every address in
// the $280-$297 window to a Chip by register symbol.
type Chip struct {
	*Clock

	swacnt uint8 // port A data-direction register
	swbcnt uint8 // port B data-direction register
}

// NewChip returns a Chip with its timer in its power-on state and both
// ports configured fully as inputs (DDR == 0).
func NewChip() *Chip {
	return &Chip{Clock: NewClock()}
}

// ReadRegister services a CPU read of one of the RIOT's registers, named by
// the canonical symbol addresses.RIOTReadSymbols maps the address to.
func (c *Chip) ReadRegister(symbol string, ports Ports) (uint8, error) {
	switch symbol {
	case "SWCHA":
		return ports.InputA() &^ c.swacnt, nil
	case "SWACNT":
		return c.swacnt, nil
	case "SWCHB":
		return ports.InputB() &^ c.swbcnt, nil
	case "SWBCNT":
		return c.swbcnt, nil
	case "INTIM":
		return c.INTIM(), nil
	case "TIMINT":
		return c.TIMINT(), nil
	default:
		return 0, curated.Errorf(curated.BusError, fmt.Errorf("unknown RIOT read register %q", symbol))
	}
}

// WriteRegister services a CPU write to one of the RIOT's registers.
func (c *Chip) WriteRegister(symbol string, value uint8) error {
	switch symbol {
	case "SWCHA":
		// writes to the input-a data register only affect pins configured
		// as outputs by SWACNT; there's nothing downstream wired to those
		// pins here, so the write is accepted but otherwise inert.
		return nil
	case "SWACNT":
		c.swacnt = value
		return nil
	case "SWCHB":
		// same rationale as SWCHA: accepted, but nothing is wired to the
		// console-switch pins as outputs.
		return nil
	case "SWBCNT":
		c.swbcnt = value
		return nil
	case "TIM1T":
		c.SetRIOTTimer(value, 1)
		return nil
	case "TIM8T":
		c.SetRIOTTimer(value, 8)
		return nil
	case "TIM64T":
		c.SetRIOTTimer(value, 64)
		return nil
	case "T1024T":
		c.SetRIOTTimer(value, 1024)
		return nil
	default:
		return curated.Errorf(curated.BusError, fmt.Errorf("unknown RIOT write register %q", symbol))
	}
}
