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
	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/snapshot"
)

// Queue is the history of GameStates for the current game. The last entry in
// the queue always reflects the most recently observed state.
type Queue struct {
	entries []GameState

	discriminant Discriminant
	lookahead    int

	// the maximum number of entries before the earliest entries are forgotten.
	// a value of zero means there is no limit
	maxEntries int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(discriminant Discriminant, lookahead int, maxEntries int) *Queue {
	if discriminant == nil {
		discriminant = NextQueueChanged
	}
	return &Queue{
		discriminant: discriminant,
		lookahead:    max(lookahead, 0),
		maxEntries:   max(maxEntries, 0),
	}
}

// SetDiscriminant changes the Discriminant used by future calls to
// PushNewState().
func (q *Queue) SetDiscriminant(discriminant Discriminant) {
	if discriminant != nil {
		q.discriminant = discriminant
	}
}

// SetMaxEntries changes the maximum number of entries. Existing entries are
// trimmed immediately if necessary.
func (q *Queue) SetMaxEntries(maxEntries int) {
	q.maxEntries = max(maxEntries, 0)
	q.trim()
}

// PushNewGame forgets all history and starts a new game. The new entry has a
// blank observed state.
func (q *Queue) PushNewGame(seed uint16) {
	q.entries = q.entries[:0]
	q.entries = append(q.entries, NewGameState(seed, snapshot.Blank(), q.lookahead))
	logger.Logf(logger.Allow, "rewind", "new game with seed %d", seed)
}

// UpdateBy adds a new entry to the history if the observed state is
// different to the observed state of the last entry. Returns true if an
// entry was added.
func (q *Queue) UpdateBy(observed snapshot.State) bool {
	if len(q.entries) == 0 {
		logger.Log(logger.Allow, "rewind", "update without a game in progress")
		return false
	}
	if q.entries[len(q.entries)-1].Observed.Equal(observed) {
		return false
	}
	return q.PushNewState(observed)
}

// PushNewState adds a new entry to the history based on the last entry. If
// the discriminant indicates that a piece has been consumed then the
// lookahead of the new entry is advanced by one piece. Returns true if an
// entry was added.
func (q *Queue) PushNewState(observed snapshot.State) bool {
	if len(q.entries) == 0 {
		logger.Log(logger.Allow, "rewind", "reconciliation without a game in progress")
		return false
	}

	gs := q.entries[len(q.entries)-1].Clone()
	if q.discriminant(gs.Observed, observed) {
		gs.ConsumePiece()
	}
	gs.Observed = observed.Clone()

	q.entries = append(q.entries, gs)
	q.trim()

	return true
}

func (q *Queue) trim() {
	if q.maxEntries == 0 || len(q.entries) <= q.maxEntries {
		return
	}
	n := len(q.entries) - q.maxEntries
	clear(q.entries[:n])
	q.entries = append(q.entries[:0], q.entries[n:]...)
}

// Undo removes the most recent entry and then removes and returns the entry
// beneath it. The returned entry should be written into the target. The
// second return value is false if there are fewer than two entries, in which
// case nothing is removed.
func (q *Queue) Undo() (GameState, bool) {
	if len(q.entries) < 2 {
		logger.Logf(logger.Allow, "rewind", "not enough history to undo (%d entries)", len(q.entries))
		return GameState{}, false
	}

	gs := q.entries[len(q.entries)-2]
	q.entries[len(q.entries)-1] = GameState{}
	q.entries[len(q.entries)-2] = GameState{}
	q.entries = q.entries[:len(q.entries)-2]

	return gs, true
}

// Last returns the most recent entry.
func (q *Queue) Last() (GameState, bool) {
	if len(q.entries) == 0 {
		return GameState{}, false
	}
	return q.entries[len(q.entries)-1], true
}

// Len returns the number of entries in the history.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Entries returns a copy of the history. Entries are not deep copies and
// should not be modified.
func (q *Queue) Entries() []GameState {
	e := make([]GameState, len(q.entries))
	copy(e, q.entries)
	return e
}
