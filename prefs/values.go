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

// Package prefs persists named values to a flat key :: value file under the
// user's resource directory (see the paths package). Individual values are
// represented by the Preference types in this file; the file itself is
// managed by Disk.
package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is whatever a caller passes to a Preference's Set method. Concrete
// Preference implementations decide which underlying types they accept.
type Value interface{}

// Preference is anything that can be set from a Value and rendered back to
// its on-disk string form.
type Preference interface {
	Set(Value) error
	String() string
}

// Bool is a boolean Preference. Unlike strconv.ParseBool, setting from an
// unrecognised string is not an error -- it is simply treated as false, the
// same leniency the original settings file parser allowed.
type Bool struct {
	value bool
}

func (b *Bool) Set(v Value) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		b.value = t == "true" || t == "1"
	default:
		return fmt.Errorf("prefs: unsupported value type %T for Bool", v)
	}
	return nil
}

func (b *Bool) String() string { return strconv.FormatBool(b.value) }

func (b *Bool) Get() bool { return b.value }

// String is a string Preference, optionally capped to a maximum length.
type String struct {
	value  string
	maxLen int
}

func (s *String) Set(v Value) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: unsupported value type %T for String", v)
	}
	s.value = str
	s.crop()
	return nil
}

// SetMaxLen caps the string to n runes, cropping the current value
// immediately. A zero value removes the cap but does not restore any
// already-cropped characters.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if r := []rune(s.value); s.maxLen > 0 && len(r) > s.maxLen {
		s.value = string(r[:s.maxLen])
	}
}

func (s *String) String() string { return s.value }

// Float is a float64 Preference. Strings are parsed with strconv.ParseFloat;
// anything else must already be a float64.
type Float struct {
	value float64
}

func (f *Float) Set(v Value) error {
	switch t := v.(type) {
	case float64:
		f.value = t
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		f.value = parsed
	default:
		return fmt.Errorf("prefs: unsupported value type %T for Float", v)
	}
	return nil
}

func (f *Float) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

func (f *Float) Get() float64 { return f.value }

// Int is an int Preference. Strings are parsed with strconv.Atoi; a float64
// is explicitly rejected rather than truncated.
type Int struct {
	value int
}

func (i *Int) Set(v Value) error {
	switch t := v.(type) {
	case int:
		i.value = t
	case string:
		parsed, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		i.value = parsed
	default:
		return fmt.Errorf("prefs: unsupported value type %T for Int", v)
	}
	return nil
}

func (i *Int) String() string { return strconv.Itoa(i.value) }

func (i *Int) Get() int { return i.value }

// Generic adapts an arbitrary pair of accessor functions to the Preference
// interface, for values that don't fit Bool/String/Float/Int -- a window
// geometry, a key-bind table.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric builds a Generic Preference from a setter and getter pair.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (g *Generic) Set(v Value) error { return g.set(v) }

func (g *Generic) String() string {
	v := g.get()
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// normaliseKeyValue splits a "key :: value" line, trimming whitespace around
// both parts. ok is false if the line isn't in that form.
func normaliseKeyValue(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "::", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
