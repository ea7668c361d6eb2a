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
	"fmt"
	"strings"

	"github.com/pptsync/pptsync/curated"
)

// Accessor is implemented by anything that can read and write the memory of
// the target process.
type Accessor interface {
	ReadMemory(addr uint64, b []byte) error
	WriteMemory(addr uint64, b []byte) error
}

// sentinal errors.
const (
	EmptyChain  = "memory: empty pointer chain"
	NullPointer = "memory: null pointer at hop %d of %v"
	HopError    = "memory: hop %d of %v: %v"
	ReadError   = "memory: read %v: %v"
	SizeError   = "memory: type %T has no fixed size"
	WriteError  = "memory: write %v: %v"
)

// Chain is a sequence of offsets that locate a value in the target's
// memory.
type Chain []uint64

func (c Chain) String() string {
	s := make([]string, len(c))
	for i, o := range c {
		s[i] = fmt.Sprintf("%#x", o)
	}
	return fmt.Sprintf("[%s]", strings.Join(s, " "))
}

// Offset returns a copy of the chain with the final offset adjusted by n.
// Useful for addressing consecutive fields in a structure.
func (c Chain) Offset(n uint64) Chain {
	o := make(Chain, len(c))
	copy(o, c)
	if len(o) > 0 {
		o[len(o)-1] += n
	}
	return o
}

// Resolve follows the pointer chain and returns the final address.
func (c Chain) Resolve(acc Accessor) (uint64, error) {
	if len(c) == 0 {
		return 0, curated.Errorf(EmptyChain)
	}

	addr := c[0]
	var b [8]byte
	for i, o := range c[1:] {
		if err := acc.ReadMemory(addr, b[:]); err != nil {
			return 0, curated.Errorf(HopError, i+1, c, err)
		}
		ptr := binary.LittleEndian.Uint64(b[:])
		if ptr == 0 {
			return 0, curated.Errorf(NullPointer, i+1, c)
		}
		addr = ptr + o
	}

	return addr, nil
}

// Read a value of type T from the address located by the chain. T must be a
// fixed size type as understood by the encoding/binary package.
func Read[T any](acc Accessor, c Chain) (T, error) {
	var v T

	addr, err := c.Resolve(acc)
	if err != nil {
		return v, curated.Errorf(ReadError, c, err)
	}

	sz := binary.Size(v)
	if sz < 0 {
		return v, curated.Errorf(SizeError, v)
	}

	b := make([]byte, sz)
	if err := acc.ReadMemory(addr, b); err != nil {
		return v, curated.Errorf(ReadError, c, err)
	}

	if _, err := binary.Decode(b, binary.LittleEndian, &v); err != nil {
		return v, curated.Errorf(ReadError, c, err)
	}

	return v, nil
}

// ReadSlice reads n consecutive values of type T from the address located by
// the chain.
func ReadSlice[T any](acc Accessor, c Chain, n int) ([]T, error) {
	v := make([]T, n)
	if n == 0 {
		return v, nil
	}

	addr, err := c.Resolve(acc)
	if err != nil {
		return nil, curated.Errorf(ReadError, c, err)
	}

	sz := binary.Size(v)
	if sz < 0 {
		return nil, curated.Errorf(SizeError, v)
	}

	b := make([]byte, sz)
	if err := acc.ReadMemory(addr, b); err != nil {
		return nil, curated.Errorf(ReadError, c, err)
	}

	if _, err := binary.Decode(b, binary.LittleEndian, v); err != nil {
		return nil, curated.Errorf(ReadError, c, err)
	}

	return v, nil
}

// Write a value of type T to the address located by the chain. T can be a
// slice of fixed size values.
func Write[T any](acc Accessor, c Chain, v T) error {
	addr, err := c.Resolve(acc)
	if err != nil {
		return curated.Errorf(WriteError, c, err)
	}

	b, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		return curated.Errorf(WriteError, c, err)
	}

	if err := acc.WriteMemory(addr, b); err != nil {
		return curated.Errorf(WriteError, c, err)
	}

	return nil
}
