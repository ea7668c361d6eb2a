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

package notifications

import (
	"sync"

	"github.com/pptsync/pptsync/curated"
)

// sentinal error returned by Queue.Notify() after Close() has been called.
const QueueClosed = "notifications: queue closed"

// Queue is an unbounded FIFO of notices. It implements the Notify interface.
type Queue struct {
	crit   sync.Mutex
	closed bool

	in  chan Notice
	out chan Notice
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	q := &Queue{
		in:  make(chan Notice),
		out: make(chan Notice),
	}
	go q.pump()
	return q
}

// pump notices from the in channel to the out channel, buffering as many as
// necessary
func (q *Queue) pump() {
	var pending []Notice
	in := q.in

	for {
		if in == nil && len(pending) == 0 {
			close(q.out)
			return
		}

		var out chan Notice
		var next Notice
		if len(pending) > 0 {
			out = q.out
			next = pending[0]
		}

		select {
		case n, ok := <-in:
			if !ok {
				in = nil
				continue // for loop
			}
			pending = append(pending, n)
		case out <- next:
			pending[0] = Notice{}
			pending = pending[1:]
		}
	}
}

// Notify implements the Notify interface. It never blocks for longer than it
// takes to add the notice to the queue.
func (q *Queue) Notify(notice Notice) error {
	q.crit.Lock()
	defer q.crit.Unlock()
	if q.closed {
		return curated.Errorf(QueueClosed)
	}
	q.in <- notice
	return nil
}

// Out returns the channel on which queued notices are delivered. The channel
// is closed once the queue has been closed and all pending notices have been
// delivered.
func (q *Queue) Out() <-chan Notice {
	return q.out
}

// Close the queue. Notices already queued will still be delivered.
func (q *Queue) Close() {
	q.crit.Lock()
	defer q.crit.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.in)
}
