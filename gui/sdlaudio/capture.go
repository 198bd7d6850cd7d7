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

package sdlaudio

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Capture is an optional per-session recorder: every frame's mixed samples
// are appended to a .wav file on disk, for a debugging session where a
// glitch needs to be heard back rather than just seen in a waveform plot.
type Capture struct {
	file    *os.File
	encoder *wav.Encoder
}

// NewCapture creates path and returns a Capture ready to receive samples at
// SampleRate, mono, 16-bit.
func NewCapture(path string) (*Capture, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)
	return &Capture{file: f, encoder: enc}, nil
}

// Write appends one frame's mixed mono samples to the capture.
func (c *Capture) Write(samples []int16) error {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           ints,
		SourceBitDepth: 16,
	}
	return c.encoder.Write(buf)
}

// Close finalises the wav header and closes the underlying file.
func (c *Capture) Close() error {
	if err := c.encoder.Close(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}
