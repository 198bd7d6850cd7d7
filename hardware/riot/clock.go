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

// Package riot implements the PIA/RIOT chip's programmable interval timer
// and the single shared colour-clock counter the CPU, TIA and timer all
// advance and catch up against.
//
// The counter itself ("Clock" below) isn't ticked on a wall-clock schedule;
// it is a simple running total of colour clocks elapsed, advanced by
// whatever just consumed cycles (almost always the CPU executing an
// instruction) and consulted lazily by the TIA and the interval timer when
// they need to know how much time has passed since they last did any work.
// This lazy catch-up discipline is what lets the TIA and timer logic stay
// simple: they don't need to be stepped one colour clock at a time, only
// asked to resolve themselves up to "now" whenever something actually reads
// or writes one of their registers.
package riot

// Clock is the shared colour-clock counter plus the RIOT's programmable
// interval timer, which counts down in units of that same clock (scaled by
// whichever interval -- 1, 8, 64 or 1024 colour-clock-thirds -- the last
// write to TIM1T/TIM8T/TIM64T/T1024T selected).
type Clock struct {
	// time is the total number of colour clocks elapsed since power-on.
	time uint64

	// riotLastUpdate is the value of time as of the timer's last catch-up.
	riotLastUpdate uint64

	timer         int32
	intervalTimer int32
	interval      int32

	// status mirrors the RIOT's interrupt-flag register (read at SWCHA+5 /
	// TIMINT). Bit 7 is set when the timer underflows and cleared by
	// reading INTIM. Bit 6 is the PA7-interrupt placeholder: this core
	// models it as clearable (on a TIMxT write, and on reading TIMINT) but
	// never sets it, since PA7 edge interrupts aren't implemented.
	status uint8

	// FrameDone is set by the TIA when VSYNC completes a frame and cleared
	// by the orchestrator once it has presented that frame, so the CPU loop
	// knows when to yield back to the host's frame pump.
	FrameDone bool
}

// NewClock returns a Clock with the RIOT timer in its power-on state: a
// 1024-CPU-cycle interval, counting down from zero.
func NewClock() *Clock {
	return &Clock{interval: 1024}
}

// Now returns the current colour-clock count.
func (c *Clock) Now() uint64 { return c.time }

// Advance adds cpuCycles CPU cycles (3 colour clocks each) to the clock.
// Called once per instruction, after the instruction has executed: a RIOT
// register access the instruction makes observes time as of the
// instruction's start, while the TIA applies the instruction's buffered
// write afterwards, at the time the instruction retires.
func (c *Clock) Advance(cpuCycles int) {
	c.time += uint64(cpuCycles) * 3
}

// WSync advances time to the start of the next scanline (the next multiple
// of 228 colour clocks), implementing the CPU's WSYNC stall. If time is
// already exactly on a scanline boundary, nothing happens -- strobing WSYNC
// twice in a row at the very start of a line is a no-op, not a full
// extra-line stall.
func (c *Clock) WSync() {
	rem := c.time % 228
	if rem == 0 {
		return
	}
	c.time += 228 - rem
}

// FrameComplete marks FrameDone, the signal the owning system polls once per
// CPU instruction to know when to pump the host's frame (present the
// canvas, emit audio, poll input) and yield back.
func (c *Clock) FrameComplete() { c.FrameDone = true }

// UpdateRIOTTimer resolves the interval timer's countdown up to the current
// time. Every access to INTIM/TIMINT or a TIMxT write calls this first.
func (c *Clock) UpdateRIOTTimer() {
	elapsed := int32((c.time - c.riotLastUpdate) / 3)

	if c.interval == 1 {
		c.timer -= elapsed
		if c.timer < 0 {
			c.status |= 0x80
			c.timer &= 0xff
		}
	} else {
		c.intervalTimer += elapsed
		if c.intervalTimer >= c.interval {
			c.timer -= c.intervalTimer / c.interval
			c.intervalTimer %= c.interval
			if c.timer < 0 {
				c.interval = 1
				c.status |= 0x80
				c.timer &= 0xff
			}
		}
	}

	c.riotLastUpdate = c.time
}

// SetRIOTTimer loads the countdown with value, to expire every interval
// colour-clock-thirds (1, 8, 64 or 1024), after catching the old countdown
// up. Only status bit 6 (the PA7 placeholder) is cleared; bit 7 (the
// underflow flag) is untouched by a write to a TIMxT register.
func (c *Clock) SetRIOTTimer(value uint8, interval int32) {
	c.UpdateRIOTTimer()
	c.timer = int32(value)
	c.interval = interval
	c.intervalTimer = interval - 1
	c.status &^= 0x40
}

// INTIM reads the timer's current countdown value, catching up first and
// clearing the underflow status bit (bit 7) as a side effect.
func (c *Clock) INTIM() uint8 {
	c.UpdateRIOTTimer()
	c.status &^= 0x80
	return uint8(c.timer & 0xff)
}

// TIMINT reads the interrupt-status register, catching up first and
// clearing status bit 6 (the PA7 placeholder) as a side effect. The returned value
// reflects the status as of just before that clear.
func (c *Clock) TIMINT() uint8 {
	c.UpdateRIOTTimer()
	v := c.status
	c.status &^= 0x40
	return v
}
