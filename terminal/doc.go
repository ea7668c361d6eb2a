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

// Package terminal contains the two ways of presenting the synchronised game
// to the operator.
//
// The plainterm package prints one line to the output every time the
// prediction changes. It is suitable for redirection to a file.
//
// The monitor package is a full screen view of the prediction, the observed
// board and the most recent log entries. It accepts undo and quit keys
// directly.
package terminal
