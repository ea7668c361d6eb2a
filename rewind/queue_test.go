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

package rewind_test

import (
	"testing"

	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/random"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/snapshot"
	"github.com/pptsync/pptsync/test"
)

func ptr(p piece.Piece) *piece.Piece {
	return &p
}

func observed(current piece.Piece, next string) snapshot.State {
	n, err := piece.ParseSequence(next)
	if err != nil {
		panic(err)
	}
	return snapshot.State{Current: ptr(current), Next: n}
}

func TestPushNewGame(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)
	test.ExpectEquality(t, q.Len(), 0)

	q.PushNewGame(42)
	test.ExpectEquality(t, q.Len(), 1)

	for i := range 10 {
		q.UpdateBy(observed(piece.S, piece.Sequence(piece.Pieces[:i%5+1])))
	}
	test.ExpectSuccess(t, q.Len() > 1)

	// always exactly one entry after a new game, regardless of prior length
	q.PushNewGame(7)
	test.ExpectEquality(t, q.Len(), 1)

	last, ok := q.Last()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, last.Seed, uint16(7))
	test.ExpectSuccess(t, last.Observed.Equal(snapshot.Blank()))
}

func TestUpdateIdempotence(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)
	q.PushNewGame(42)

	s := observed(piece.I, "TLZSO")
	test.ExpectSuccess(t, q.UpdateBy(s))
	test.ExpectEquality(t, q.Len(), 2)

	test.ExpectFailure(t, q.UpdateBy(s))
	test.ExpectEquality(t, q.Len(), 2)

	// an equal but distinct value is also ignored
	test.ExpectFailure(t, q.UpdateBy(s.Clone()))
	test.ExpectEquality(t, q.Len(), 2)
}

func TestNoGame(t *testing.T) {
	q := rewind.NewQueue(nil, 5, 0)
	test.ExpectFailure(t, q.UpdateBy(observed(piece.I, "TLZSO")))
	test.ExpectFailure(t, q.PushNewState(observed(piece.I, "TLZSO")))
	test.ExpectEquality(t, q.Len(), 0)

	_, ok := q.Last()
	test.ExpectFailure(t, ok)
}

func TestUndo(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)

	// undo on an empty history
	_, ok := q.Undo()
	test.ExpectFailure(t, ok)

	// [A]
	q.PushNewGame(42)
	_, ok = q.Undo()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, q.Len(), 1)

	a, _ := q.Last()

	// [A, B, C]
	b := observed(piece.I, "TLZSO")
	c := observed(piece.T, "LZSOJ")
	q.UpdateBy(b)
	q.UpdateBy(c)
	test.ExpectEquality(t, q.Len(), 3)

	gs, ok := q.Undo()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, gs.Observed.Equal(b))
	test.ExpectEquality(t, q.Len(), 1)

	last, _ := q.Last()
	test.ExpectSuccess(t, last.Observed.Equal(a.Observed))
	test.ExpectEquality(t, piece.Sequence(last.Lookahead), piece.Sequence(a.Lookahead))
}

func TestEndToEnd(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)
	q.PushNewGame(42)
	test.ExpectEquality(t, q.Len(), 1)

	first, _ := q.Last()
	test.ExpectEquality(t, piece.Sequence(first.Lookahead), piece.Sequence(random.NewGenerator(42).Take(5)))
	test.ExpectEquality(t, piece.Sequence(first.Lookahead), "ITLZS")

	// the next queue differs from the blank state of the first entry
	test.ExpectSuccess(t, q.UpdateBy(observed(piece.I, "TLZSO")))
	test.ExpectEquality(t, q.Len(), 2)

	second, _ := q.Last()
	test.ExpectEquality(t, piece.Sequence(second.Lookahead), "TLZSO")

	// the new piece comes from the continuation of the same generator
	expected := random.NewGenerator(42).Take(6)
	test.ExpectEquality(t, piece.Sequence(second.Lookahead), piece.Sequence(expected[1:]))

	// the first entry must not have been altered by the advance
	first = q.Entries()[0]
	test.ExpectEquality(t, piece.Sequence(first.Lookahead), "ITLZS")
	test.ExpectEquality(t, first.Generator.Remaining(), 2)
	test.ExpectEquality(t, second.Generator.Remaining(), 1)
}

func TestLookaheadAcrossBags(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)
	q.PushNewGame(42)

	gen := random.NewGenerator(42)
	all := gen.Take(40)

	for i := 1; i < 30; i++ {
		// every observation has a different next queue
		test.DemandSuccess(t, q.UpdateBy(snapshot.State{Next: all[i : i+5]}))
		last, _ := q.Last()
		test.ExpectEquality(t, piece.Sequence(last.Lookahead), piece.Sequence(all[i:i+5]), i)
	}
}

func TestNoAdvanceWithoutDiscriminant(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 0)
	q.PushNewGame(42)
	q.UpdateBy(observed(piece.I, "TLZSO"))

	// active piece changes but the next queue does not
	q.UpdateBy(observed(piece.T, "TLZSO"))
	test.ExpectEquality(t, q.Len(), 3)

	entries := q.Entries()
	test.ExpectEquality(t, piece.Sequence(entries[2].Lookahead), piece.Sequence(entries[1].Lookahead))
}

func TestMaxEntries(t *testing.T) {
	q := rewind.NewQueue(rewind.NextQueueChanged, 5, 3)
	q.PushNewGame(42)
	gen := random.NewGenerator(42)
	all := gen.Take(20)
	for i := 1; i < 10; i++ {
		q.UpdateBy(snapshot.State{Next: all[i : i+5]})
	}
	test.ExpectEquality(t, q.Len(), 3)

	// the most recent entry is unaffected by trimming
	last, _ := q.Last()
	test.ExpectEquality(t, piece.Sequence(last.Lookahead), piece.Sequence(all[9:14]))

	q.SetMaxEntries(1)
	test.ExpectEquality(t, q.Len(), 1)

	q.SetMaxEntries(0)
	q.UpdateBy(snapshot.State{Next: all[10:15]})
	test.ExpectEquality(t, q.Len(), 2)
}
