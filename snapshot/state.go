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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pptsync/pptsync/piece"
)

// State is the game state as observed in the target.
type State struct {
	// board cells, column by column
	Columns [][]int16

	// nil if there is no piece
	Current *piece.Piece
	Hold    *piece.Piece

	Next []piece.Piece
}

// Blank returns the empty state. Used before anything has been observed.
func Blank() State {
	return State{}
}

// Equal returns true if every field of the two states is the same.
func (s State) Equal(o State) bool {
	if !equalPiece(s.Current, o.Current) || !equalPiece(s.Hold, o.Hold) {
		return false
	}
	if !slices.Equal(s.Next, o.Next) {
		return false
	}
	return slices.EqualFunc(s.Columns, o.Columns, slices.Equal[[]int16])
}

func equalPiece(a, b *piece.Piece) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := State{
		Next: slices.Clone(s.Next),
	}
	if s.Current != nil {
		p := *s.Current
		c.Current = &p
	}
	if s.Hold != nil {
		p := *s.Hold
		c.Hold = &p
	}
	if s.Columns != nil {
		c.Columns = make([][]int16, len(s.Columns))
		for i := range s.Columns {
			c.Columns[i] = slices.Clone(s.Columns[i])
		}
	}
	return c
}

func pieceString(p *piece.Piece) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func (s State) String() string {
	var filled int
	for _, c := range s.Columns {
		for _, v := range c {
			if v != 0 {
				filled++
			}
		}
	}
	return fmt.Sprintf("current=%s hold=%s next=%s cells=%d",
		pieceString(s.Current), pieceString(s.Hold), piece.Sequence(s.Next), filled)
}

// Board draws the board as text. Empty cells are drawn with a full stop and
// filled cells with a hash. The top row of the board is drawn first and only
// rows from the highest filled cell downwards are drawn.
func (s State) Board() string {
	if len(s.Columns) == 0 {
		return ""
	}

	height := 0
	for _, c := range s.Columns {
		for y := len(c) - 1; y >= height; y-- {
			if c[y] != 0 {
				height = y + 1
				break
			}
		}
	}

	var b strings.Builder
	for y := height - 1; y >= 0; y-- {
		for _, c := range s.Columns {
			if y < len(c) && c[y] != 0 {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}
