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

package memory_test

import (
	"testing"

	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/memory"
	"github.com/pptsync/pptsync/test"
)

func TestChainString(t *testing.T) {
	c := memory.Chain{0x140461b20, 0x378, 0x40}
	test.ExpectEquality(t, c.String(), "[0x140461b20 0x378 0x40]")
	test.ExpectEquality(t, c.Offset(4).String(), "[0x140461b20 0x378 0x44]")

	// offset must not alter the original chain
	test.ExpectEquality(t, c[2], uint64(0x40))
}

func TestResolve(t *testing.T) {
	buf := memory.NewBuffer()
	buf.PutPointer(0x1000, 0x2000)
	buf.PutPointer(0x2010, 0x3000)
	buf.Map(0x3020, 4)

	addr, err := memory.Chain{0x1000, 0x10, 0x20}.Resolve(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint64(0x3020))

	// single element chains are absolute addresses
	addr, err = memory.Chain{0x1000}.Resolve(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint64(0x1000))

	_, err = memory.Chain{}.Resolve(buf)
	test.ExpectSuccess(t, curated.Is(err, memory.EmptyChain))
}

func TestResolveFailure(t *testing.T) {
	buf := memory.NewBuffer()
	buf.PutPointer(0x1000, 0x2000)
	buf.PutPointer(0x2010, 0)

	// null pointer at the second hop
	_, err := memory.Chain{0x1000, 0x10, 0x20}.Resolve(buf)
	test.ExpectSuccess(t, curated.Is(err, memory.NullPointer))

	// unreadable pointer at the first hop
	_, err = memory.Chain{0x5000, 0x10}.Resolve(buf)
	test.ExpectSuccess(t, curated.Is(err, memory.HopError))
	test.ExpectSuccess(t, curated.Has(err, memory.Unmapped))

	// the failure surfaces through Read as a single error
	_, err = memory.Read[int32](buf, memory.Chain{0x1000, 0x10, 0x20})
	test.ExpectSuccess(t, curated.Is(err, memory.ReadError))
	test.ExpectSuccess(t, curated.Has(err, memory.NullPointer))
}

func TestReadWrite(t *testing.T) {
	buf := memory.NewBuffer()
	buf.PutPointer(0x1000, 0x2000)
	c := memory.Chain{0x1000, 0x8}

	err := memory.Write(buf, c, int32(-2))
	test.ExpectSuccess(t, err)

	v, err := memory.Read[int32](buf, c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, int32(-2))

	// little-endian layout
	b, err := memory.Read[uint8](buf, c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0xfe))

	err = memory.Write(buf, c, []int16{1, 2, 3})
	test.ExpectSuccess(t, err)

	s, err := memory.ReadSlice[int16](buf, c, 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), 3)
	test.ExpectEquality(t, s[2], int16(3))

	s, err = memory.ReadSlice[int16](buf, c, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), 0)

	// reading past the written region fails
	_, err = memory.ReadSlice[int16](buf, c, 10)
	test.ExpectFailure(t, err)
}

func TestFault(t *testing.T) {
	buf := memory.NewBuffer()
	buf.Map(0x1000, 8)
	buf.Fault(0x1004)

	_, err := memory.Read[uint32](buf, memory.Chain{0x1000})
	test.ExpectSuccess(t, err)

	_, err = memory.Read[uint64](buf, memory.Chain{0x1000})
	test.ExpectFailure(t, err)

	err = memory.Write(buf, memory.Chain{0x1002}, uint32(1))
	test.ExpectFailure(t, err)
}

func TestJournal(t *testing.T) {
	buf := memory.NewBuffer()
	test.DemandSuccess(t, memory.Write(buf, memory.Chain{0x1000}, uint32(0x11223344)))
	test.DemandSuccess(t, memory.Write(buf, memory.Chain{0x2000}, uint16(7)))

	j := memory.NewJournal(buf)
	test.DemandSuccess(t, memory.Write(j, memory.Chain{0x1000}, uint32(0xdeadbeef)))
	test.DemandSuccess(t, memory.Write(j, memory.Chain{0x2000}, uint16(8)))
	test.DemandSuccess(t, memory.Write(j, memory.Chain{0x1000}, uint32(0)))
	test.ExpectEquality(t, j.Len(), 3)

	// writes are visible through the underlying accessor
	v, err := memory.Read[uint16](buf, memory.Chain{0x2000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(8))

	// reversing in order leaves the earliest contents
	test.ExpectSuccess(t, j.Rollback())
	test.ExpectEquality(t, j.Len(), 0)

	w, err := memory.Read[uint32](buf, memory.Chain{0x1000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x11223344))
	v, err = memory.Read[uint16](buf, memory.Chain{0x2000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(7))
}

func TestJournalUnreadable(t *testing.T) {
	buf := memory.NewBuffer()

	// unmapped memory cannot be read so the write is not recorded
	j := memory.NewJournal(buf)
	test.DemandSuccess(t, memory.Write(j, memory.Chain{0x1000}, uint32(1)))
	test.ExpectEquality(t, j.Len(), 0)
	test.ExpectSuccess(t, j.Rollback())

	v, err := memory.Read[uint32](buf, memory.Chain{0x1000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1))
}
