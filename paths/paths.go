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

// Package paths resolves filenames for persistent, per-user resources: the
// preferences file, the ROM list, the optional audio-capture directory.
//
// Paths are returned relative to the current directory, rooted at a single
// ".vcs2600" directory; callers that want it anchored to the user's home
// directory join the result with os.UserHomeDir() themselves.
package paths

import (
	"os"
	"path/filepath"
)

// resourceDir is the directory name under which all persistent vcs2600
// resources are kept.
const resourceDir = ".vcs2600"

// ResourcePath builds a path of the form .vcs2600/subdir/filename. Either
// subdir or filename may be empty; empty path segments are simply omitted,
// so ResourcePath("", "") returns the bare resource directory.
func ResourcePath(subdir, filename string) (string, error) {
	p := resourceDir
	if subdir != "" {
		p = filepath.Join(p, subdir)
	}
	if filename != "" {
		p = filepath.Join(p, filename)
	}

	return p, nil
}

// MkdirAll ensures the directory component of path exists, creating parent
// directories as needed.
func MkdirAll(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
