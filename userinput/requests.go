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

package userinput

// Requests is the channel over which undo requests are sent to the state
// history engine. At most one request can be pending. Requests made while a
// request is pending are dropped.
type Requests struct {
	undo chan struct{}
}

// NewRequests is the preferred method of initialisation for the Requests
// type.
func NewRequests() *Requests {
	return &Requests{
		undo: make(chan struct{}, 1),
	}
}

// RequestUndo asks for the history to be rewound by one entry. Returns false
// if a request is already pending.
func (r *Requests) RequestUndo() bool {
	select {
	case r.undo <- struct{}{}:
		return true
	default:
		return false
	}
}

// Undo returns the receive side of the request channel.
func (r *Requests) Undo() <-chan struct{} {
	return r.undo
}
