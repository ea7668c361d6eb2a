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

// Package memory provides typed access to the address space of another
// process.
//
// The Accessor interface is the minimal requirement: read and write a run of
// bytes at an address. The debugapi package provides real implementations
// and the Buffer type in this package is a sparse, in-memory implementation.
//
// Fields in the target are located with a Chain. The first element of a
// chain is an absolute address and every subsequent element is an offset to
// be added to the pointer found at the previous address. For example, the
// chain:
//
//	Chain{0x140461b20, 0x378, 0x40}
//
// is resolved by reading the pointer at 0x140461b20, adding 0x378, reading
// the pointer at that address and finally adding 0x40. The resulting address
// is where the field is read from or written to.
//
// Values are transferred in little-endian byte order using the encoding/binary
// package. The generic functions Read(), Write() and ReadSlice() can be used
// with any fixed size type.
package memory
