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

// Package logger is the central log repository for pptsync. Log entries are
// made up of a tag and a detail string. Consecutive entries that are the same
// are collapsed into a single entry with a repeat count.
//
// Every call to Log() or Logf() must be accompanied by a Permission. The
// Allow value can be used when logging should always happen. The Verbose type
// is used for entries made every tick of the synchroniser.
//
// Entries can be echoed as they are added with SetEcho(). For terminal output
// the Colorizer type can be wrapped around the output writer.
package logger
