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
	"io"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/pptsync/pptsync/snapshot"
)

// Tracker wraps a Queue so that it can be used safely from more than one
// goroutine.
type Tracker struct {
	crit  sync.Mutex
	queue *Queue
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(queue *Queue) *Tracker {
	return &Tracker{queue: queue}
}

// PushNewGame calls Queue.PushNewGame() under lock.
func (tr *Tracker) PushNewGame(seed uint16) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.queue.PushNewGame(seed)
}

// UpdateBy calls Queue.UpdateBy() under lock.
func (tr *Tracker) UpdateBy(observed snapshot.State) bool {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return tr.queue.UpdateBy(observed)
}

// Undo calls Queue.Undo() under lock.
func (tr *Tracker) Undo() (GameState, bool) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return tr.queue.Undo()
}

// SetDiscriminant calls Queue.SetDiscriminant() under lock.
func (tr *Tracker) SetDiscriminant(discriminant Discriminant) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.queue.SetDiscriminant(discriminant)
}

// SetMaxEntries calls Queue.SetMaxEntries() under lock.
func (tr *Tracker) SetMaxEntries(maxEntries int) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.queue.SetMaxEntries(maxEntries)
}

// Summary of the history at a point in time.
type Summary struct {
	Entries int

	// a deep copy of the last entry. only valid if Entries is greater than
	// zero
	Last GameState
}

// Summary returns a Summary of the history that can be used outside of the
// lock.
func (tr *Tracker) Summary() Summary {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	s := Summary{Entries: tr.queue.Len()}
	if last, ok := tr.queue.Last(); ok {
		s.Last = last.Clone()
	}
	return s
}

// Visualise writes a graphviz representation of the history to the
// io.Writer.
func (tr *Tracker) Visualise(w io.Writer) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	entries := tr.queue.Entries()
	memviz.Map(w, &entries)
}
