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

// Package sdlaudio implements tia.AudioSink over an SDL audio device. The
// core hands this package a lazy per-frame descriptor of each of the two
// voices (control/frequency/volume); this package is what actually
// synthesises the square waves those descriptors imply and queues the
// samples, the same division of labour as the host display surface in
// gui/sdl (core computes *what* to show, the gui package turns it into
// pixels or samples).
package sdlaudio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/calloway-labs/vcs2600/curated"
	"github.com/calloway-labs/vcs2600/hardware/tia"
	"github.com/calloway-labs/vcs2600/logger"
)

var log = logger.NewLogger(200)

// SampleRate matches tia.SampleRate isn't exported from that package at a
// usable granularity for device setup, so this mirrors the NTSC colour
// clock derived rate the teacher's audio subsystem uses.
const SampleRate = 31400

// samplesPerFrame is how many samples one television frame's worth of audio
// occupies at SampleRate, for a 60Hz refresh.
const samplesPerFrame = SampleRate / 60

// Audio is the SDL-backed implementation of tia.AudioSink.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	phase0, phase1 float64

	capture *Capture
}

// EnableCapture starts recording every subsequent frame's mixed samples to
// path as a .wav file, overwriting any capture already in progress.
func (a *Audio) EnableCapture(path string) error {
	c, err := NewCapture(path)
	if err != nil {
		return err
	}
	a.capture = c
	return nil
}

// StopCapture finalises and closes any capture in progress. It is a no-op
// if EnableCapture was never called.
func (a *Audio) StopCapture() error {
	if a.capture == nil {
		return nil
	}
	err := a.capture.Close()
	a.capture = nil
	return err
}

// NewAudio opens a mono 16-bit SDL audio device at SampleRate.
func NewAudio() (*Audio, error) {
	request := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  1024,
	}
	var actual sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, request, &actual, 0)
	if err != nil {
		return nil, curated.Errorf(curated.BusError, fmt.Errorf("sdlaudio: %w", err))
	}

	a := &Audio{id: id, spec: actual}
	sdl.PauseAudioDevice(a.id, false)
	log.Logf(logger.Allow, "sdlaudio", "opened at %d Hz", actual.Freq)
	return a, nil
}

// frequency converts a TIA AUDFx register value (0-31) into an audible
// tone, using the same divisor table real TIA silicon applies to its 30KHz
// base clock. The AUDC waveform selector is not taken into account.
func frequency(audf uint8) float64 {
	return float64(SampleRate) / (2 * (float64(audf) + 1) * 114 / 2)
}

func (a *Audio) synthesize(v tia.Voice, phase *float64) []int16 {
	samples := make([]int16, samplesPerFrame)
	if v.Control == 0 || v.Volume == 0 {
		return samples
	}

	step := frequency(v.Frequency) / float64(SampleRate)
	amplitude := int16(v.Volume) * (32767 / 15)

	for i := range samples {
		*phase += step
		if *phase >= 1 {
			*phase -= 1
		}
		if *phase < 0.5 {
			samples[i] = amplitude
		} else {
			samples[i] = -amplitude
		}
	}
	return samples
}

// EmitFrame implements tia.AudioSink: it synthesises one frame's worth of
// samples for each voice, mixes them, and queues the result.
func (a *Audio) EmitFrame(v0, v1 tia.Voice) {
	s0 := a.synthesize(v0, &a.phase0)
	s1 := a.synthesize(v1, &a.phase1)

	mixed := make([]int16, samplesPerFrame)
	for i := range mixed {
		mixed[i] = s0[i]/2 + s1[i]/2
	}

	if a.capture != nil {
		if err := a.capture.Write(mixed); err != nil {
			log.Log(logger.Allow, "sdlaudio", err)
		}
	}

	buf := make([]byte, len(mixed)*2)
	for i, s := range mixed {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}

	if err := sdl.QueueAudio(a.id, buf); err != nil {
		log.Log(logger.Allow, "sdlaudio", err)
	}
}

// Close releases the audio device.
func (a *Audio) Close() {
	sdl.CloseAudioDevice(a.id)
}
