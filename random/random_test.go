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

package random_test

import (
	"testing"

	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/random"
	"github.com/pptsync/pptsync/test"
)

func TestDeterminism(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 1234, 65535} {
		a := random.NewGenerator(seed)
		b := random.NewGenerator(seed)
		test.ExpectEquality(t, piece.Sequence(a.Take(100)), piece.Sequence(b.Take(100)), seed)
		test.ExpectEquality(t, a.Register(), b.Register(), seed)
	}
}

func TestGolden(t *testing.T) {
	golden := map[uint32]string{
		0:     "SIZLTOJLTJZSOI",
		1:     "TJILZOSILTJZOS",
		42:    "ITLZSOJJLIZSTO",
		1234:  "ZOITJLSLIOTSZJ",
		65535: "ITLOSZJTZLIOJS",
	}
	for seed, expected := range golden {
		gen := random.NewGenerator(seed)
		test.ExpectEquality(t, piece.Sequence(gen.Take(14)), expected, seed)
	}
}

func TestRegister(t *testing.T) {
	gen := random.NewGenerator(0)
	test.ExpectEquality(t, gen.Register(), uint32(0x1b5a06d7))

	gen = random.NewGenerator(42)
	test.ExpectEquality(t, gen.Register(), uint32(0x3fed02c9))
	test.ExpectEquality(t, gen.Remaining(), 0)

	_ = gen.Take(6)
	test.ExpectEquality(t, gen.Register(), uint32(0xccbbb8b6))
	test.ExpectEquality(t, gen.Remaining(), 1)

	p, ok := gen.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, piece.J)
	test.ExpectEquality(t, gen.Remaining(), 0)

	// the register only advances when a new bag is shuffled
	test.ExpectEquality(t, gen.Register(), uint32(0xccbbb8b6))
}

func TestBagPermutation(t *testing.T) {
	for _, seed := range []uint32{0, 7, 42, 999, 65535} {
		gen := random.NewGenerator(seed)
		for bag := range 50 {
			var seen [piece.Count]int
			for _, p := range gen.Take(piece.Count) {
				seen[p]++
			}
			for _, n := range seen {
				test.ExpectEquality(t, n, 1, seed, bag)
			}
		}
	}
}

func TestClone(t *testing.T) {
	gen := random.NewGenerator(42)
	_ = gen.Take(3)

	c := gen.Clone()
	test.ExpectEquality(t, c.Register(), gen.Register())
	test.ExpectEquality(t, c.Remaining(), gen.Remaining())

	// advancing the clone must not affect the original
	a := piece.Sequence(c.Take(20))
	test.ExpectEquality(t, gen.Remaining(), 4)
	b := piece.Sequence(gen.Take(20))
	test.ExpectEquality(t, a, b)
}
