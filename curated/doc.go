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

// For example:
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks if a pattern occurs anywhere in the error
// chain rather than only at the outermost layer:
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//	f := curated.Errorf("fatal: %v", e)
//
//	if curated.Has(f, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// Note that in this example a call to Is(f, "error: value = %d") would fail
// because f was created with the "fatal: %v" pattern -- the inner error is
// wrapped, not equal.
//
// IsAny() answers whether an error was created by curated.Errorf() at all --
// the difference between an 'expected' error from this package and an
// 'unexpected' error from somewhere else.
//
// Error() normalises the chain by removing duplicate adjacent parts, where a
// part is a substring separated by ": ". This means callers don't need to
// think hard about whether a function they call has already wrapped an
// error with the same message:
//
//	func A() error {
//		if err := B(); err != nil {
//			return curated.Errorf("not ready: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("not ready: %v", curated.Errorf("no cartridge loaded"))
//	}
//
// prints "not ready: no cartridge loaded", not "not ready: not ready: no
// cartridge loaded".
package curated
