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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SYNC", "PREDICT")
//	_, _ = md.Parse()
//
// After parsing, the selected mode is available with the Mode() function. The
// first sub-mode in the list is the default mode and is selected if the first
// argument isn't a recognised sub-mode. Sub-mode comparison is case
// insensitive.
//
// Once a mode has been selected, NewMode() starts a new set of flags for that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "PREDICT":
//		md.NewMode()
//		count := md.AddInt("n", 14, "number of pieces to predict")
//		_, _ = md.Parse()
//		...
//	}
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
//
// Help messages are handled automatically. A "-help" flag results in a
// ParseHelp result and the help message being written to the Output field of
// the Modes instance.
package modalflag
