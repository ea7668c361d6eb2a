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

package rewind

import (
	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/notifications"
	"github.com/pptsync/pptsync/snapshot"
)

// Run the history engine. Notices are applied to the history in order and
// undo requests are serviced between notices. The result of a successful
// undo is sent on the restore channel, replacing any Restore that has not
// yet been collected.
//
// Undoing to the start of a game sends nothing. There is no observed state to
// write and the history is returned to the new game entry.
//
// Run returns when the notices channel is closed.
func (tr *Tracker) Run(notices <-chan notifications.Notice, undo <-chan struct{}, restore chan notifications.Restore) {
	for {
		select {
		case n, ok := <-notices:
			if !ok {
				return
			}
			tr.apply(n)

		case <-undo:
			gs, ok := tr.Undo()
			if !ok {
				continue // for loop
			}

			if gs.Observed.Equal(snapshot.Blank()) {
				logger.Logf(logger.Allow, "rewind", "cannot undo past the start of the game (seed %d)", gs.Seed)
				tr.PushNewGame(gs.Seed)
				continue // for loop
			}

			logger.Logf(logger.Allow, "rewind", "undo to %s", gs)

			r := notifications.Restore{
				State:    gs.Observed,
				Register: gs.Generator.Register(),
			}

			// drop any pending restore that has not been picked up by the
			// synchroniser. there is only one sender so the second send will
			// always succeed
			select {
			case restore <- r:
			default:
				select {
				case <-restore:
				default:
				}
				restore <- r
			}
		}
	}
}

func (tr *Tracker) apply(n notifications.Notice) {
	switch n.Kind {
	case notifications.NotifyStart:
		tr.PushNewGame(n.Seed)
	case notifications.NotifySync:
		tr.UpdateBy(n.State)
	default:
		logger.Logf(logger.Allow, "rewind", "unhandled notice: %v", n.Kind)
	}
}
