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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/calloway-labs/vcs2600/curated"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "# this file is automatically generated by vcs2600 -- edits may be overwritten"

// Disk is a flat key :: value file backing a set of registered Preferences.
// Save() merges the registered values into whatever is already on disk, so
// multiple Disk instances (or multiple processes) can each own a disjoint
// subset of keys in the same file without clobbering one another.
type Disk struct {
	filename string
	keys     []string
	prefs    map[string]Preference
}

// NewDisk prepares a Disk backed by filename. The file need not exist yet;
// it is created on the first Save().
func NewDisk(filename string) (*Disk, error) {
	return &Disk{
		filename: filename,
		prefs:    make(map[string]Preference),
	}, nil
}

// Add registers a Preference under key. Registering the same key twice
// replaces the earlier registration.
func (d *Disk) Add(key string, p Preference) error {
	if _, exists := d.prefs[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.prefs[key] = p
	return nil
}

// readFile returns the key/value pairs currently on disk, ignoring the
// boilerplate comment line and any line that isn't validly formed. It is not
// an error for the file not to exist.
func (d *Disk) readFile() (map[string]string, error) {
	out := make(map[string]string)

	f, err := os.Open(d.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, curated.Errorf(curated.BusError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if k, v, ok := normaliseKeyValue(line); ok {
			out[k] = v
		}
	}

	return out, scanner.Err()
}

// Save writes every registered Preference's current value to disk, merged
// with whatever keys are already there but not owned by this Disk instance.
// Keys are written in sorted order so the output is stable across runs.
func (d *Disk) Save() error {
	merged, err := d.readFile()
	if err != nil {
		return err
	}

	for key, p := range d.prefs {
		merged[key] = p.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s :: %s\n", k, merged[k])
	}

	if err := os.WriteFile(d.filename, []byte(b.String()), 0o644); err != nil {
		return curated.Errorf(curated.BusError, err)
	}

	return nil
}

// Load reads disk and calls Set on every registered Preference whose key is
// present. Keys on disk with no matching registration are left alone --
// they'll be preserved verbatim by a later Save().
func (d *Disk) Load() error {
	onDisk, err := d.readFile()
	if err != nil {
		return err
	}

	for key, p := range d.prefs {
		if v, ok := onDisk[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(curated.BusError, err)
			}
		}
	}

	return nil
}
