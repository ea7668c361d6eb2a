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
	"slices"
	"sort"

	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/snapshot"
)

// Discriminant decides whether the target consumed a piece between two
// observed states.
type Discriminant func(prev snapshot.State, next snapshot.State) bool

// NextQueueChanged is true if the contents of the next queue have changed.
// This is the default Discriminant.
func NextQueueChanged(prev snapshot.State, next snapshot.State) bool {
	return !slices.Equal(prev.Next, next.Next)
}

// ActivePieceChanged is true if the identity of the active piece has changed.
func ActivePieceChanged(prev snapshot.State, next snapshot.State) bool {
	return !samePiece(prev.Current, next.Current)
}

// ActiveAndHoldChanged is true if both the active piece and the held piece
// have changed, or if the contents of the next queue have changed.
func ActiveAndHoldChanged(prev snapshot.State, next snapshot.State) bool {
	if NextQueueChanged(prev, next) {
		return true
	}
	return !samePiece(prev.Current, next.Current) && !samePiece(prev.Hold, next.Hold)
}

func samePiece(a, b *piece.Piece) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// sentinal error returned by ParseDiscriminant.
const UnknownDiscriminant = "rewind: unknown discriminant (%s)"

// Discriminants lists the named discriminants that can be selected with
// ParseDiscriminant().
var Discriminants = map[string]Discriminant{
	"next":       NextQueueChanged,
	"active":     ActivePieceChanged,
	"activehold": ActiveAndHoldChanged,
}

// DefaultDiscriminant is the name of the default discriminant.
const DefaultDiscriminant = "next"

// DiscriminantNames returns the names of the available discriminants in
// alphabetical order.
func DiscriminantNames() []string {
	n := make([]string, 0, len(Discriminants))
	for k := range Discriminants {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// ParseDiscriminant returns the Discriminant with the specified name.
func ParseDiscriminant(name string) (Discriminant, error) {
	if d, ok := Discriminants[name]; ok {
		return d, nil
	}
	return nil, curated.Errorf(UnknownDiscriminant, name)
}
