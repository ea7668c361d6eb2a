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

package random

import (
	"github.com/pptsync/pptsync/piece"
)

// lcg constants.
const (
	multiplier = 0x5d588b65
	increment  = 0x269ec3
)

// the number of register advances made by the target between seeding and the
// first shuffle. the values generated during warm-up are discarded.
const warmup = 1973

// Generator reproduces the target's sequence of pieces.
type Generator struct {
	register uint32

	// bag is stored in reverse order of consumption. pieces are popped from
	// the end of the slice
	bag []piece.Piece
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(seed uint32) *Generator {
	return newGenerator(seed, warmup)
}

func newGenerator(seed uint32, advances int) *Generator {
	gen := &Generator{
		register: seed,
		bag:      make([]piece.Piece, 0, piece.Count),
	}
	for range advances {
		gen.advance()
	}
	return gen
}

func (gen *Generator) advance() uint32 {
	gen.register = gen.register*multiplier + increment
	return gen.register
}

// refill the bag with a shuffled set of pieces.
func (gen *Generator) refill() {
	bag := piece.Pieces
	for i := range piece.Count {
		r := gen.advance()
		idx := i + int(((r>>16)*uint32(piece.Count-i))>>16)
		bag[i], bag[idx] = bag[idx], bag[i]
	}

	gen.bag = gen.bag[:0]
	for i := piece.Count - 1; i >= 0; i-- {
		gen.bag = append(gen.bag, bag[i])
	}
}

// Next returns the next piece in the sequence. The second return value is
// always true. It exists so that the Generator can be used in the same way as
// a finite source of pieces.
func (gen *Generator) Next() (piece.Piece, bool) {
	if len(gen.bag) == 0 {
		gen.refill()
	}
	p := gen.bag[len(gen.bag)-1]
	gen.bag = gen.bag[:len(gen.bag)-1]
	return p, true
}

// Take returns the next n pieces in the sequence. A negative n is the same
// as zero.
func (gen *Generator) Take(n int) []piece.Piece {
	n = max(n, 0)
	p := make([]piece.Piece, 0, n)
	for range n {
		q, _ := gen.Next()
		p = append(p, q)
	}
	return p
}

// Clone returns an independent copy of the Generator. Advancing the copy
// does not affect the original.
func (gen *Generator) Clone() *Generator {
	c := &Generator{
		register: gen.register,
		bag:      make([]piece.Piece, len(gen.bag), piece.Count),
	}
	copy(c.bag, gen.bag)
	return c
}

// Register returns the current value of the LCG register. This is the value
// that the target holds in its own randomiser at the same point in the
// sequence.
func (gen *Generator) Register() uint32 {
	return gen.register
}

// Remaining returns the number of pieces left in the current bag.
func (gen *Generator) Remaining() int {
	return len(gen.bag)
}
