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
	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/memory"
	"github.com/pptsync/pptsync/piece"
)

// sentinal errors.
const (
	ReadError  = "snapshot: %v: %v"
	WriteError = "snapshot: write %v: %v"
	BoardSize  = "snapshot: board is %dx%d but layout is %dx%d"

	// wraps a WriteError once the earlier writes have been reversed
	RestoreAbandoned = "snapshot: restore abandoned: %v"

	// the earlier writes could not all be reversed
	PartialRestore = "snapshot: target partly restored: %v: rollback: %v"
)

// the value written to the target to indicate no piece
const noPiece = int32(-1)

// Reader reads State from the target using a Layout.
type Reader struct {
	layout Layout
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(layout Layout) *Reader {
	return &Reader{layout: layout}
}

// Layout returns the layout used by the Reader.
func (r *Reader) Layout() Layout {
	return r.layout
}

// Seed returns the seed of the current game.
func (r *Reader) Seed(acc memory.Accessor) (uint16, error) {
	v, err := memory.Read[uint16](acc, r.layout.Seed)
	if err != nil {
		return 0, curated.Errorf(ReadError, "seed", err)
	}
	return v, nil
}

// IsPieceActive returns true if there is a piece falling.
func (r *Reader) IsPieceActive(acc memory.Accessor) (bool, error) {
	v, err := memory.Read[uint8](acc, r.layout.PieceActive)
	if err != nil {
		return false, curated.Errorf(ReadError, "active", err)
	}
	return v != 0, nil
}

// RNG returns the value of the target's randomiser register.
func (r *Reader) RNG(acc memory.Accessor) (uint32, error) {
	v, err := memory.Read[uint32](acc, r.layout.Register)
	if err != nil {
		return 0, curated.Errorf(ReadError, "register", err)
	}
	return v, nil
}

func (r *Reader) readPiece(acc memory.Accessor, field string, c memory.Chain) (*piece.Piece, error) {
	id, err := memory.Read[int32](acc, c)
	if err != nil {
		return nil, curated.Errorf(ReadError, field, err)
	}
	if id < 0 {
		return nil, nil
	}
	p, err := piece.FromTarget(id)
	if err != nil {
		return nil, curated.Errorf(ReadError, field, err)
	}
	return &p, nil
}

// Read the entire State. If any field cannot be read then an error is
// returned and the State should be ignored.
func (r *Reader) Read(acc memory.Accessor) (State, error) {
	var s State
	var err error

	s.Current, err = r.readPiece(acc, "current", r.layout.Current)
	if err != nil {
		return State{}, err
	}

	s.Hold, err = r.readPiece(acc, "hold", r.layout.Hold)
	if err != nil {
		return State{}, err
	}

	next, err := memory.ReadSlice[int32](acc, r.layout.Next, r.layout.NextLength)
	if err != nil {
		return State{}, curated.Errorf(ReadError, "next", err)
	}
	s.Next = make([]piece.Piece, 0, len(next))
	for _, id := range next {
		p, err := piece.FromTarget(id)
		if err != nil {
			return State{}, curated.Errorf(ReadError, "next", err)
		}
		s.Next = append(s.Next, p)
	}

	w, h := r.layout.BoardWidth, r.layout.BoardHeight
	cells, err := memory.ReadSlice[int16](acc, r.layout.Board, w*h)
	if err != nil {
		return State{}, curated.Errorf(ReadError, "board", err)
	}
	s.Columns = make([][]int16, w)
	for x := range w {
		s.Columns[x] = cells[x*h : (x+1)*h : (x+1)*h]
	}

	return s, nil
}

func targetID(p *piece.Piece) int32 {
	if p == nil {
		return noPiece
	}
	return int32(*p)
}

// Write the State and randomiser register to the target. The current piece
// is only written if it is not nil.
//
// If any field cannot be written then the fields already written are
// returned to their previous values and a RestoreAbandoned error is returned.
// If that fails too the error is a PartialRestore.
func (r *Reader) Write(acc memory.Accessor, s State, register uint32) error {
	j := memory.NewJournal(acc)
	err := r.write(j, s, register)
	if err == nil || j.Len() == 0 {
		return err
	}
	if rerr := j.Rollback(); rerr != nil {
		return curated.Errorf(PartialRestore, err, rerr)
	}
	return curated.Errorf(RestoreAbandoned, err)
}

func (r *Reader) write(acc memory.Accessor, s State, register uint32) error {
	w, h := r.layout.BoardWidth, r.layout.BoardHeight

	if s.Columns != nil {
		if len(s.Columns) != w {
			return curated.Errorf(BoardSize, len(s.Columns), 0, w, h)
		}
		cells := make([]int16, 0, w*h)
		for _, c := range s.Columns {
			if len(c) != h {
				return curated.Errorf(BoardSize, len(s.Columns), len(c), w, h)
			}
			cells = append(cells, c...)
		}
		if err := memory.Write(acc, r.layout.Board, cells); err != nil {
			return curated.Errorf(WriteError, "board", err)
		}
	}

	if s.Current != nil {
		if err := memory.Write(acc, r.layout.Current, targetID(s.Current)); err != nil {
			return curated.Errorf(WriteError, "current", err)
		}
	}

	if err := memory.Write(acc, r.layout.Hold, targetID(s.Hold)); err != nil {
		return curated.Errorf(WriteError, "hold", err)
	}

	if len(s.Next) > 0 {
		n := min(len(s.Next), r.layout.NextLength)
		next := make([]int32, n)
		for i := range n {
			next[i] = int32(s.Next[i])
		}
		if err := memory.Write(acc, r.layout.Next, next); err != nil {
			return curated.Errorf(WriteError, "next", err)
		}
	}

	if err := memory.Write(acc, r.layout.Register, register); err != nil {
		return curated.Errorf(WriteError, "register", err)
	}

	return nil
}
