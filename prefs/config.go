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

package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ROM describes one entry in the persisted ROM list: the file to load and
// the bank-switching/superchip hints a user has confirmed for it, so the
// cartridge package doesn't have to re-guess every run.
type ROM struct {
	Path          string `json:"path"`
	BankSwitching string `json:"bank-switching,omitempty"`
	SuperChipRAM  bool   `json:"super-chip,omitempty"`
}

// KeyBinds maps the nine named input actions atari.py's Settings class
// exposes to a host keycode string (SDL scancode name). Defaults mirror the
// original's up/down/left/right/fire/select/reset/diff1/diff2 bindings.
type KeyBinds struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	Fire   string `json:"fire"`
	Select string `json:"select"`
	Reset  string `json:"reset"`
	Diff1  string `json:"diff1"`
	Diff2  string `json:"diff2"`
}

// DefaultKeyBinds is the key-bind table a fresh Config is created with.
func DefaultKeyBinds() KeyBinds {
	return KeyBinds{
		Up:     "Up",
		Down:   "Down",
		Left:   "Left",
		Right:  "Right",
		Fire:   "Space",
		Select: "F1",
		Reset:  "F2",
		Diff1:  "F3",
		Diff2:  "F4",
	}
}

// Config is the persisted settings record: the ROM list and key-bind table.
// It is deliberately simpler than the Disk/Preference machinery elsewhere in
// this package -- it is a single JSON document, matching the shape the
// original settings.json used, rather than a flat key :: value file.
type Config struct {
	path     string
	ROMs     []ROM    `json:"roms"`
	KeyBinds KeyBinds `json:"key-binds"`
}

// LoadConfig reads path, creating it with defaults (an empty ROM list and
// DefaultKeyBinds) if it doesn't exist yet -- a first run never needs a
// hand-written config file.
func LoadConfig(path string) (*Config, error) {
	c := &Config{path: path, KeyBinds: DefaultKeyBinds()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Save writes the config back to its path as indented JSON.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil && !os.IsNotExist(err) {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0o644)
}

// AddROM appends rom to the list and saves, unless a ROM with the same path
// is already present. main calls it, without asking, for a ROM given as a
// bare path on the command line.
func (c *Config) AddROM(rom ROM) error {
	for _, r := range c.ROMs {
		if r.Path == rom.Path {
			return nil
		}
	}

	c.ROMs = append(c.ROMs, rom)
	return c.Save()
}
