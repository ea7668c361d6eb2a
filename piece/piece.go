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

package piece

import (
	"strings"

	"github.com/pptsync/pptsync/curated"
)

// Piece is one of the seven tetromino shapes.
type Piece uint8

// List of valid Piece values. The order is the canonical order used by the
// target.
const (
	S Piece = iota
	Z
	J
	L
	T
	O
	I
)

// Count is the number of Piece values.
const Count = 7

// Pieces lists every Piece in canonical order. Used to initialise a new bag.
var Pieces = [Count]Piece{S, Z, J, L, T, O, I}

// sentinal errors.
const (
	InvalidTargetID = "piece: invalid target identifier (%d)"
	InvalidLetter   = "piece: invalid letter (%s)"
)

const letters = "SZJLTOI"

func (p Piece) String() string {
	if p >= Count {
		return "?"
	}
	return letters[p : p+1]
}

// Valid returns false if the Piece is outside of the canonical range.
func (p Piece) Valid() bool {
	return p < Count
}

// FromTarget converts a piece identifier as stored in target memory to a
// Piece.
func FromTarget(id int32) (Piece, error) {
	if id < 0 || id >= Count {
		return 0, curated.Errorf(InvalidTargetID, id)
	}
	return Piece(id), nil
}

// Parse converts a single letter to a Piece. Case insensitive.
func Parse(s string) (Piece, error) {
	if len(s) != 1 {
		return 0, curated.Errorf(InvalidLetter, s)
	}
	i := strings.Index(letters, strings.ToUpper(s))
	if i == -1 {
		return 0, curated.Errorf(InvalidLetter, s)
	}
	return Piece(i), nil
}

// Sequence formats a list of pieces as a string of letters.
func Sequence(p []Piece) string {
	var s strings.Builder
	for _, q := range p {
		s.WriteString(q.String())
	}
	return s.String()
}

// ParseSequence is the inverse of Sequence().
func ParseSequence(s string) ([]Piece, error) {
	p := make([]Piece, 0, len(s))
	for _, c := range s {
		q, err := Parse(string(c))
		if err != nil {
			return nil, err
		}
		p = append(p, q)
	}
	return p, nil
}
