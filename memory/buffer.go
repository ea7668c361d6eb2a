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
	"encoding/binary"
	"sync"

	"github.com/pptsync/pptsync/curated"
)

// sentinal error returned by Buffer.
const Unmapped = "memory: unmapped address %#x"

// Buffer is a sparse, in-memory implementation of the Accessor interface.
// Only addresses that have been written to (or mapped with Map) can be read.
//
// Buffer is safe for concurrent use.
type Buffer struct {
	crit sync.Mutex
	data map[uint64]byte

	// reads and writes to these addresses will fail
	faults map[uint64]bool
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer() *Buffer {
	return &Buffer{
		data:   make(map[uint64]byte),
		faults: make(map[uint64]bool),
	}
}

// Map a zeroed region of memory.
func (buf *Buffer) Map(addr uint64, size int) {
	buf.crit.Lock()
	defer buf.crit.Unlock()
	for i := range uint64(size) {
		if _, ok := buf.data[addr+i]; !ok {
			buf.data[addr+i] = 0
		}
	}
}

// Fault marks an address as inaccessible. Any read or write that touches the
// address fails.
func (buf *Buffer) Fault(addr uint64) {
	buf.crit.Lock()
	defer buf.crit.Unlock()
	buf.faults[addr] = true
}

// PutPointer is a convenience function that stores a little-endian 64bit
// pointer at addr.
func (buf *Buffer) PutPointer(addr uint64, ptr uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], ptr)
	_ = buf.WriteMemory(addr, b[:])
}

// ReadMemory implements the Accessor interface.
func (buf *Buffer) ReadMemory(addr uint64, b []byte) error {
	buf.crit.Lock()
	defer buf.crit.Unlock()
	for i := range b {
		a := addr + uint64(i)
		v, ok := buf.data[a]
		if !ok || buf.faults[a] {
			return curated.Errorf(Unmapped, a)
		}
		b[i] = v
	}
	return nil
}

// WriteMemory implements the Accessor interface.
func (buf *Buffer) WriteMemory(addr uint64, b []byte) error {
	buf.crit.Lock()
	defer buf.crit.Unlock()
	for i := range b {
		if buf.faults[addr+uint64(i)] {
			return curated.Errorf(Unmapped, addr+uint64(i))
		}
	}
	for i, v := range b {
		buf.data[addr+uint64(i)] = v
	}
	return nil
}
