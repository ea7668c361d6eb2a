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

// Package random replicates the piece randomiser of Puyo Puyo Tetris.
//
// The randomiser is a 32-bit linear congruential generator. A new game seeds
// the register with the 16-bit seed chosen by the target and then advances it
// a fixed number of times before the first bag of pieces is shuffled. Bags
// contain one of each of the seven pieces and are refilled only when empty.
//
// Given the same seed, a Generator will produce exactly the same sequence of
// pieces as the target. This is what makes prediction possible and it is what
// makes undo possible: the register value of a Generator can be written back
// to the target to put its randomiser into a previous state.
//
// The package has no failure modes and performs no I/O.
package random
