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
	"sort"
	"strings"
	"sync"
)

// commandLineStack lets a command-line invocation push a batch of
// "key::value; key::value" overrides that GetCommandLinePref can consult
// before falling back to whatever is on disk. Pushing and popping nest, so a
// ROM-specific override group can sit on top of a global one.
var commandLineStack struct {
	sync.Mutex
	groups []string
}

// PushCommandLineStack normalises raw (trimming whitespace, dropping
// malformed "key::value" segments, sorting by key) and pushes the result.
// Malformed input degrades to an empty group rather than an error, since
// this is meant to be fed directly from os.Args.
func PushCommandLineStack(raw string) {
	type kv struct{ k, v string }

	var valid []kv
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pieces := strings.SplitN(part, "::", 2)
		if len(pieces) != 2 {
			continue
		}
		key := strings.TrimSpace(pieces[0])
		val := strings.TrimSpace(pieces[1])
		if key == "" {
			continue
		}
		valid = append(valid, kv{key, val})
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].k < valid[j].k })

	parts := make([]string, len(valid))
	for i, e := range valid {
		parts[i] = e.k + "::" + e.v
	}

	commandLineStack.Lock()
	defer commandLineStack.Unlock()
	commandLineStack.groups = append(commandLineStack.groups, strings.Join(parts, "; "))
}

// PopCommandLineStack removes and returns the top group, or "" if the stack
// is empty.
func PopCommandLineStack() string {
	commandLineStack.Lock()
	defer commandLineStack.Unlock()

	n := len(commandLineStack.groups)
	if n == 0 {
		return ""
	}

	top := commandLineStack.groups[n-1]
	commandLineStack.groups = commandLineStack.groups[:n-1]
	return top
}

// GetCommandLinePref looks up key in the top group of the stack without
// popping it.
func GetCommandLinePref(key string) (bool, string) {
	commandLineStack.Lock()
	n := len(commandLineStack.groups)
	var top string
	if n > 0 {
		top = commandLineStack.groups[n-1]
	}
	commandLineStack.Unlock()

	if top == "" {
		return false, ""
	}

	for _, part := range strings.Split(top, "; ") {
		pieces := strings.SplitN(part, "::", 2)
		if len(pieces) == 2 && pieces[0] == key {
			return true, pieces[1]
		}
	}

	return false, ""
}
