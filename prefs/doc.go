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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are typed (Bool, Int, Uint64, String and Generic) and are safe to
// read from any goroutine.
//
// Values are associated with a Disk instance by key. Saving the Disk writes
// every registered value to the preferences file, one per line, in the form:
//
//	key :: value
//
// Keys found in the file that haven't been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// The default location of the preferences file is inside the user's XDG
// config directory. See DefaultPath().
//
// Values can also be specified on the command line as a string of key/value
// pairs. See PushCommandLineStack(). Command line values take precedence over
// values on disk and are applied when the Disk is loaded.
package prefs
