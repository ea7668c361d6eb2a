// This file is part of pptsync.
//
// pptsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pptsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pptsync.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is kept alongside
// the values so that the error can later be identified by pattern:
//
//	e := curated.Errorf(memory.NullPointer, 2)
//
//	if curated.Is(e, memory.NullPointer) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf(snapshot.ReadError, e)
//
//	if curated.Has(f, memory.NullPointer) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'. In this program curated
// errors raised by the debugger package are always fatal while curated errors
// raised by the snapshot package are never fatal.
//
// The Error() function implementation ensures that the error chain does not
// contain duplicate adjacent parts. For the purposes of this package we think
// of chains as being composed of parts separated by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
//
// Patterns should be stored as exported const strings in the package that
// raises them, suitably named and commented.
package curated
