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

package rewind

import (
	"fmt"
	"slices"

	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/random"
	"github.com/pptsync/pptsync/snapshot"
)

// DefaultLookahead is the number of predicted pieces in a GameState.
const DefaultLookahead = 5

// GameState is a single entry in the history.
type GameState struct {
	Seed uint16

	// the generator is always positioned immediately after the last piece in
	// the lookahead
	Generator *random.Generator
	Lookahead []piece.Piece

	Observed snapshot.State
}

// NewGameState is the preferred method of initialisation for the GameState
// type. The lookahead is filled from the generator that is kept by the
// GameState.
func NewGameState(seed uint16, observed snapshot.State, lookahead int) GameState {
	gen := random.NewGenerator(uint32(seed))
	return GameState{
		Seed:      seed,
		Lookahead: gen.Take(lookahead),
		Generator: gen,
		Observed:  observed,
	}
}

// ConsumePiece drops the oldest piece in the lookahead and appends the next
// piece from the generator.
func (gs *GameState) ConsumePiece() {
	if len(gs.Lookahead) == 0 {
		return
	}
	p, _ := gs.Generator.Next()
	gs.Lookahead = append(gs.Lookahead[1:len(gs.Lookahead):len(gs.Lookahead)], p)
}

// Clone returns a deep copy of the GameState.
func (gs GameState) Clone() GameState {
	return GameState{
		Seed:      gs.Seed,
		Generator: gs.Generator.Clone(),
		Lookahead: slices.Clone(gs.Lookahead),
		Observed:  gs.Observed.Clone(),
	}
}

func (gs GameState) String() string {
	return fmt.Sprintf("seed=%d lookahead=%s bag=%d rng=%#08x", gs.Seed, piece.Sequence(gs.Lookahead), gs.Generator.Remaining(), gs.Generator.Register())
}
