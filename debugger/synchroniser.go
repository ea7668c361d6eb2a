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

package debugger

import (
	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/debugger/debugapi"
	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/memory"
	"github.com/pptsync/pptsync/notifications"
	"github.com/pptsync/pptsync/snapshot"
)

// Synchroniser observes the target on every tick and sends notifications
// when a new game starts or when the state of the game changes.
type Synchroniser struct {
	acc    memory.Accessor
	reader *snapshot.Reader
	notify notifications.Notify

	// restores requested by the state history engine
	restore <-chan notifications.Restore

	// the most recent seed and state that were notified
	seeded bool
	seed   uint16
	latest snapshot.State

	// log entries for transient read failures
	Verbose logger.Verbose
}

// NewSynchroniser is the preferred method of initialisation for the
// Synchroniser type. The restore channel can be nil.
func NewSynchroniser(acc memory.Accessor, reader *snapshot.Reader, notify notifications.Notify, restore <-chan notifications.Restore) *Synchroniser {
	return &Synchroniser{
		acc:     acc,
		reader:  reader,
		notify:  notify,
		restore: restore,
		latest:  snapshot.Blank(),
	}
}

// Observe the target. The function signature matches the observer argument
// of the Session.Tick() function. The thread is not used.
//
// Failed reads are not errors. The observation for the tick is discarded and
// the previous state is retained. An error is only returned if the
// notification could not be sent.
func (sy *Synchroniser) Observe(_ debugapi.Thread) error {
	sy.applyRestore()

	seed, err := sy.reader.Seed(sy.acc)
	if err != nil {
		logger.Logf(&sy.Verbose, "sync", "seed: %v", err)
	} else if !sy.seeded || seed != sy.seed {
		if err := sy.notify.Notify(notifications.Start(seed)); err != nil {
			return err
		}
		sy.seeded = true
		sy.seed = seed
		sy.latest = snapshot.Blank()
	}

	active, err := sy.reader.IsPieceActive(sy.acc)
	if err != nil {
		logger.Logf(&sy.Verbose, "sync", "active: %v", err)
		return nil
	}
	if !active {
		return nil
	}

	state, err := sy.reader.Read(sy.acc)
	if err != nil {
		logger.Logf(&sy.Verbose, "sync", "read: %v", err)
		return nil
	}

	if state.Current == nil || state.Equal(sy.latest) {
		return nil
	}

	if err := sy.notify.Notify(notifications.Sync(state)); err != nil {
		return err
	}
	sy.latest = state

	return nil
}

// sentinal error logged when a restore cannot be written to the target.
const RestoreFailed = "sync: restore: %v"

// write at most one pending restore to the target.
func (sy *Synchroniser) applyRestore() {
	select {
	case r := <-sy.restore:
		if err := sy.reader.Write(sy.acc, r.State, r.Register); err != nil {
			logger.Log(logger.Allow, "sync", curated.Errorf(RestoreFailed, err).Error())
			return
		}
		rng, err := sy.reader.RNG(sy.acc)
		if err != nil {
			logger.Logf(logger.Allow, "sync", "restored %s but register cannot be read back: %v", r.State, err)
			return
		}
		logger.Logf(logger.Allow, "sync", "restored %s (rng %#08x)", r.State, rng)
	default:
	}
}

// OverrideSeed waits for the target to reach the instruction at address,
// where the target expects its new seed in the RAX register, and replaces the
// seed. The target only uses the low 16 bits of the seed.
func OverrideSeed(s *Session, address uint64, seed uint16) error {
	return s.TickAt(address, func(thread debugapi.Thread) error {
		ctx, err := thread.Context()
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "sync", "replacing seed %d with %d", ctx.Rax&0xffff, seed)
		ctx.Rax = uint64(seed)
		return thread.SetContext(ctx)
	})
}
