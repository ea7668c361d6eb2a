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

package main

import "sync"

// quitter is a channel that can be closed more than once.
type quitter struct {
	once sync.Once
	quit chan struct{}
}

func newQuitter() *quitter {
	return &quitter{quit: make(chan struct{})}
}

func (q *quitter) stop() {
	q.once.Do(func() { close(q.quit) })
}

func (q *quitter) done() <-chan struct{} {
	return q.quit
}
