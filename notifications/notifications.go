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
	"fmt"

	"github.com/pptsync/pptsync/snapshot"
)

// Kind of Notice.
type Kind string

// List of defined notice kinds.
const (
	// a new game has started. the seed field is valid
	NotifyStart Kind = "NotifyStart"

	// the observed state has changed. the state field is valid
	NotifySync Kind = "NotifySync"
)

// Notice is sent by the synchroniser whenever something of interest has been
// observed in the target.
type Notice struct {
	Kind  Kind
	Seed  uint16
	State snapshot.State
}

// Start creates a NotifyStart notice.
func Start(seed uint16) Notice {
	return Notice{Kind: NotifyStart, Seed: seed}
}

// Sync creates a NotifySync notice.
func Sync(state snapshot.State) Notice {
	return Notice{Kind: NotifySync, State: state}
}

func (n Notice) String() string {
	switch n.Kind {
	case NotifyStart:
		return fmt.Sprintf("%s: seed %d", n.Kind, n.Seed)
	case NotifySync:
		return fmt.Sprintf("%s: %s", n.Kind, n.State)
	}
	return string(n.Kind)
}

// Notify is implemented by anything that can receive notices.
type Notify interface {
	Notify(notice Notice) error
}

// Restore is sent when the target should be returned to a previous state.
type Restore struct {
	State    snapshot.State
	Register uint32
}
