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

// Package sdl implements the host display surface the core's tia.PixelSink
// interface plugs into: an SDL window holding one streaming texture, scaled
// up and presented once per delivered frame. It knows nothing about the
// 6502, the TIA's registers, or bank-switching -- only the colour indices
// SetPixel hands it and the RGB palette it was constructed with, matching
// the core's split between "what a pixel's index is" and "what colour that
// index represents" (spec.md leaves palette constants to the caller).
package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/calloway-labs/vcs2600/hardware/tia"
	"github.com/calloway-labs/vcs2600/logger"
)

var log = logger.NewLogger(200)

// depth is the number of bytes per pixel in the ABGR8888 texture format.
const depth = 4

// Palette maps a TIA colour index (0-127; only even indices are distinct
// luminance/hue pairs on real hardware, but this core doesn't enforce that)
// to an RGB triple. Callers typically supply the canonical NTSC or PAL
// table; this package has no opinion on what the colours actually are.
type Palette [128][3]uint8

// GUI is the SDL-backed implementation of tia.PixelSink.
type GUI struct {
	palette Palette

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pixels []byte
	scale  float32
}

// NewGUI opens a window sized for one NTSC/PAL field (tia.VisibleWidth by
// the maximum scanline count tia allows) scaled by scale, ready to receive
// SetPixel/NewFrame calls from a running system.System.
func NewGUI(palette Palette, scale float32) (*GUI, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}

	g := &GUI{palette: palette, scale: scale}

	const height = 312 // matches hardware/tia's maxLines
	w := int32(float32(tia.VisibleWidth) * scale)
	h := int32(float32(height) * scale)

	var err error
	g.window, err = sdl.CreateWindow("vcs2600", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}

	g.renderer, err = sdl.CreateRenderer(g.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}

	g.texture, err = g.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(tia.VisibleWidth), height)
	if err != nil {
		return nil, curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}

	g.pixels = make([]byte, tia.VisibleWidth*height*depth)

	log.Log(logger.Allow, "sdl", "window opened")
	return g, nil
}

// SetPixel implements tia.PixelSink.
func (g *GUI) SetPixel(line, col int, colour uint8) {
	i := (line*tia.VisibleWidth + col) * depth
	if i < 0 || i+depth > len(g.pixels) {
		return
	}
	rgb := g.palette[colour&0x7f]
	g.pixels[i] = rgb[0]
	g.pixels[i+1] = rgb[1]
	g.pixels[i+2] = rgb[2]
	g.pixels[i+3] = 255
}

// NewFrame implements tia.PixelSink: the finished canvas is pushed to the
// texture and presented.
func (g *GUI) NewFrame() error {
	if err := g.texture.Update(nil, g.pixels, tia.VisibleWidth*depth); err != nil {
		return curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}
	if err := g.renderer.Clear(); err != nil {
		return curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}
	if err := g.renderer.Copy(g.texture, nil, nil); err != nil {
		return curated.Errorf(curated.BusError, fmt.Errorf("sdl: %w", err))
	}
	g.renderer.Present()
	return nil
}

// KeyEvent is one keyboard transition, named by SDL's scancode name (e.g.
// "Up", "Space", "F1") so callers can match it against a prefs.KeyBinds
// table without depending on this package's import of go-sdl2.
type KeyEvent struct {
	Name    string
	Pressed bool
}

// PollInput drains the SDL event queue, reporting whether the window close
// button or Alt+F4 was seen and every keyboard transition since the last
// call. Key bindings themselves are the caller's responsibility.
func (g *GUI) PollInput() (quit bool, keys []KeyEvent) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return quit, keys
		}
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			keys = append(keys, KeyEvent{
				Name:    sdl.GetScancodeName(ev.Keysym.Scancode),
				Pressed: ev.Type == sdl.KEYDOWN,
			})
		}
	}
}

// PollQuit reports whether the host requested the window be closed, ignoring
// keyboard events -- a convenience for callers that don't bind any keys.
func (g *GUI) PollQuit() bool {
	quit, _ := g.PollInput()
	return quit
}

// Close releases the SDL resources this GUI holds.
func (g *GUI) Close() {
	g.texture.Destroy()
	g.renderer.Destroy()
	g.window.Destroy()
	sdl.Quit()
}
