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

package snapshot

import "github.com/pptsync/pptsync/memory"

// Layout describes where the fields of the game state are found in the
// target's memory.
type Layout struct {
	// 16bit seed chosen by the target at the start of every game
	Seed memory.Chain

	// non-zero byte when a piece is falling
	PieceActive memory.Chain

	// 32bit piece identifiers. a negative value indicates no piece
	Current memory.Chain
	Hold    memory.Chain

	// consecutive 32bit piece identifiers
	Next       memory.Chain
	NextLength int

	// 16bit cells stored column by column. each column is BoardHeight cells
	// long and there are BoardWidth columns
	Board       memory.Chain
	BoardWidth  int
	BoardHeight int

	// 32bit register of the target's piece randomiser
	Register memory.Chain
}

// the player one structure. most fields are found relative to this
const playerOne = 0x140461b20

// PuyoPuyoTetris is the layout of the Steam release.
var PuyoPuyoTetris = Layout{
	Seed:        memory.Chain{0x14059894c},
	PieceActive: memory.Chain{playerOne, 0x378, 0x40, 0x140, 0x18},
	Current:     memory.Chain{playerOne, 0x378, 0x40, 0x140, 0x110},
	Hold:        memory.Chain{playerOne, 0x378, 0x40, 0x148, 0x8},
	Next:        memory.Chain{playerOne, 0x378, 0xb8, 0x15c},
	NextLength:  5,
	Board:       memory.Chain{playerOne, 0x378, 0xc0, 0x10, 0x0},
	BoardWidth:  10,
	BoardHeight: 40,
	Register:    memory.Chain{playerOne, 0x378, 0xb8, 0xe0},
}
