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

package memory

import (
	"slices"
)

type journalEntry struct {
	addr uint64
	data []byte
}

// Journal is an Accessor that records the previous contents of every
// address it writes to. The writes can then be reversed with Rollback().
//
// Addresses that cannot be read before being written are not recorded.
type Journal struct {
	acc     Accessor
	entries []journalEntry
}

// NewJournal is the preferred method of initialisation for the Journal type.
func NewJournal(acc Accessor) *Journal {
	return &Journal{acc: acc}
}

// ReadMemory implements the Accessor interface.
func (j *Journal) ReadMemory(addr uint64, b []byte) error {
	return j.acc.ReadMemory(addr, b)
}

// WriteMemory implements the Accessor interface.
func (j *Journal) WriteMemory(addr uint64, b []byte) error {
	old := make([]byte, len(b))
	if err := j.acc.ReadMemory(addr, old); err == nil {
		j.entries = append(j.entries, journalEntry{addr: addr, data: old})
	}
	return j.acc.WriteMemory(addr, b)
}

// Len returns the number of writes that would be reversed by Rollback().
func (j *Journal) Len() int {
	return len(j.entries)
}

// Rollback writes the recorded contents back in reverse order. Every entry
// is attempted even if an earlier one fails. The first error is returned.
func (j *Journal) Rollback() error {
	var first error
	for _, e := range slices.Backward(j.entries) {
		if err := j.acc.WriteMemory(e.addr, e.data); err != nil && first == nil {
			first = err
		}
	}
	j.entries = j.entries[:0]
	return first
}
