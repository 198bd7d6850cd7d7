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

// Package picker implements the interactive ROM-list chooser spec.md's
// external interfaces section calls for: arrow keys move a selection, Enter
// confirms, q quits. It puts stdin into raw mode for the duration of the
// picker so single keystrokes are readable without waiting for a newline,
// the same termios dance the ROM-less debugger terminal uses.
package picker

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"

	"github.com/calloway-labs/vcs2600/prefs"
)

// rawTerm puts fd into cbreak (non-canonical, no echo) mode and returns a
// function that restores the original settings.
func rawTerm(fd uintptr) (func(), error) {
	var orig, raw syscall.Termios
	if err := termios.Tcgetattr(fd, &orig); err != nil {
		return nil, err
	}
	raw = orig
	termios.Cfmakecbreak(&raw)
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &raw); err != nil {
		return nil, err
	}
	return func() { termios.Tcsetattr(fd, termios.TCIFLUSH, &orig) }, nil
}

const (
	keyUp    = 'A'
	keyDown  = 'B'
	keyEnter = '\r'
	keyQuit  = 'q'
)

// readKey reads one logical keystroke from stdin, resolving the three-byte
// ANSI escape sequence a terminal sends for an arrow key down to keyUp or
// keyDown.
func readKey(in *os.File) (byte, error) {
	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil {
		return 0, err
	}
	if buf[0] != 0x1b {
		return buf[0], nil
	}

	// escape sequence: ESC [ A/B/C/D
	seq := make([]byte, 2)
	if _, err := in.Read(seq); err != nil {
		return 0, err
	}
	if seq[0] != '[' {
		return 0, nil
	}
	return seq[1], nil
}

// Choose presents cfg's ROM list and returns the path the user selected, or
// "" if they quit without choosing. If the list is empty, Choose returns ""
// immediately without touching the terminal.
func Choose(cfg *prefs.Config) (string, error) {
	if len(cfg.ROMs) == 0 {
		return "", nil
	}

	restore, err := rawTerm(os.Stdin.Fd())
	if err != nil {
		return "", err
	}
	defer restore()

	selected := 0
	for {
		fmt.Fprint(os.Stdout, "\033[2J\033[H")
		fmt.Fprintln(os.Stdout, "select a ROM (arrows, enter, q to quit):\r")
		for i, rom := range cfg.ROMs {
			cursor := "  "
			if i == selected {
				cursor = "> "
			}
			fmt.Fprintf(os.Stdout, "%s%s\r\n", cursor, rom.Path)
		}

		key, err := readKey(os.Stdin)
		if err != nil {
			return "", err
		}

		switch key {
		case keyUp:
			if selected > 0 {
				selected--
			}
		case keyDown:
			if selected < len(cfg.ROMs)-1 {
				selected++
			}
		case keyEnter, '\n':
			return cfg.ROMs[selected].Path, nil
		case keyQuit:
			return "", nil
		}
	}
}
