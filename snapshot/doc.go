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

// Package snapshot reads and writes the externally visible game state of the
// target: the board, the active piece, the held piece and the queue of next
// pieces.
//
// The location of each field is described by a Layout. The PuyoPuyoTetris
// layout is correct for the Steam release of the game on Windows.
//
// Reads are all or nothing. If any part of the state cannot be read, for
// example because a pointer in the chain is null between games, then Read()
// returns an error and no partial state.
package snapshot
