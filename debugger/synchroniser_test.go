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

package debugger_test

import (
	"errors"
	"testing"

	"github.com/pptsync/pptsync/debugger"
	"github.com/pptsync/pptsync/memory"
	"github.com/pptsync/pptsync/notifications"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/snapshot"
	"github.com/stretchr/testify/require"
)

var layout = snapshot.Layout{
	Seed:        memory.Chain{0x100},
	PieceActive: memory.Chain{0x1000, 0x00},
	Current:     memory.Chain{0x1000, 0x10},
	Hold:        memory.Chain{0x1000, 0x20},
	Next:        memory.Chain{0x1000, 0x30},
	NextLength:  3,
	Board:       memory.Chain{0x1000, 0x100},
	BoardWidth:  2,
	BoardHeight: 3,
	Register:    memory.Chain{0x1000, 0x80},
}

// recorder implements the notifications.Notify interface.
type recorder struct {
	notices []notifications.Notice
	err     error
}

func (r *recorder) Notify(n notifications.Notice) error {
	if r.err != nil {
		return r.err
	}
	r.notices = append(r.notices, n)
	return nil
}

func (r *recorder) take() []notifications.Notice {
	n := r.notices
	r.notices = nil
	return n
}

func ptr(p piece.Piece) *piece.Piece {
	return &p
}

func gameState(current *piece.Piece, next ...piece.Piece) snapshot.State {
	return snapshot.State{
		Columns: [][]int16{{0, 0, 0}, {0, 0, 0}},
		Current: current,
		Next:    next,
	}
}

type syncFixture struct {
	buf     *memory.Buffer
	reader  *snapshot.Reader
	rec     *recorder
	restore chan notifications.Restore
	sync    *debugger.Synchroniser
}

func newSyncFixture() *syncFixture {
	f := &syncFixture{
		buf:     memory.NewBuffer(),
		reader:  snapshot.NewReader(layout),
		rec:     &recorder{},
		restore: make(chan notifications.Restore, 1),
	}
	f.buf.PutPointer(0x1000, 0x2000)
	f.sync = debugger.NewSynchroniser(f.buf, f.reader, f.rec, f.restore)
	return f
}

func (f *syncFixture) game(t *testing.T, seed uint16, active bool, s snapshot.State) {
	t.Helper()
	require.NoError(t, memory.Write(f.buf, layout.Seed, seed))
	var a uint8
	if active {
		a = 1
	}
	require.NoError(t, memory.Write(f.buf, layout.PieceActive, a))
	require.NoError(t, f.reader.Write(f.buf, s, 0))
	if s.Current == nil {
		require.NoError(t, memory.Write(f.buf, layout.Current, int32(-1)))
	}
}

func TestSynchroniserUnmapped(t *testing.T) {
	f := newSyncFixture()
	require.NoError(t, f.sync.Observe(nil))
	require.Empty(t, f.rec.take())
}

func TestSynchroniser(t *testing.T) {
	f := newSyncFixture()

	// the first seed observed always starts a game
	f.game(t, 42, false, gameState(ptr(piece.T), piece.I, piece.O, piece.S))
	require.NoError(t, f.sync.Observe(nil))
	require.Equal(t, []notifications.Notice{notifications.Start(42)}, f.rec.take())

	// nothing has changed
	require.NoError(t, f.sync.Observe(nil))
	require.Empty(t, f.rec.take())

	// piece becomes active
	f.game(t, 42, true, gameState(ptr(piece.T), piece.I, piece.O, piece.S))
	require.NoError(t, f.sync.Observe(nil))
	n := f.rec.take()
	require.Len(t, n, 1)
	require.Equal(t, notifications.NotifySync, n[0].Kind)
	require.Equal(t, "current=T hold=- next=IOS cells=0", n[0].State.String())

	// unchanged state is not notified again
	require.NoError(t, f.sync.Observe(nil))
	require.Empty(t, f.rec.take())

	// no current piece
	f.game(t, 42, true, gameState(nil, piece.O, piece.S, piece.Z))
	require.NoError(t, f.sync.Observe(nil))
	require.Empty(t, f.rec.take())

	// next piece
	f.game(t, 42, true, gameState(ptr(piece.I), piece.O, piece.S, piece.Z))
	require.NoError(t, f.sync.Observe(nil))
	n = f.rec.take()
	require.Len(t, n, 1)
	require.Equal(t, "current=I hold=- next=OSZ cells=0", n[0].State.String())

	// new seed starts a new game and the latest state is forgotten
	f.game(t, 7, true, gameState(ptr(piece.I), piece.O, piece.S, piece.Z))
	require.NoError(t, f.sync.Observe(nil))
	n = f.rec.take()
	require.Len(t, n, 2)
	require.Equal(t, notifications.Start(7), n[0])
	require.Equal(t, notifications.NotifySync, n[1].Kind)
}

func TestSynchroniserReadFailure(t *testing.T) {
	f := newSyncFixture()
	f.game(t, 42, true, gameState(ptr(piece.T), piece.I, piece.O, piece.S))

	// a failed read discards the observation
	f.buf.Fault(0x2000 + 0x100)
	require.NoError(t, f.sync.Observe(nil))
	require.Equal(t, []notifications.Notice{notifications.Start(42)}, f.rec.take())

	// seed cannot be read but the state can
	f = newSyncFixture()
	f.game(t, 42, true, gameState(ptr(piece.T), piece.I, piece.O, piece.S))
	f.buf.Fault(0x100)
	require.NoError(t, f.sync.Observe(nil))
	n := f.rec.take()
	require.Len(t, n, 1)
	require.Equal(t, notifications.NotifySync, n[0].Kind)
}

func TestSynchroniserNotifyFailure(t *testing.T) {
	f := newSyncFixture()
	f.game(t, 42, true, gameState(ptr(piece.T), piece.I, piece.O, piece.S))
	f.rec.err = errors.New("queue closed")
	require.Error(t, f.sync.Observe(nil))
}

func TestSynchroniserRestore(t *testing.T) {
	f := newSyncFixture()
	f.game(t, 42, true, gameState(ptr(piece.Z), piece.L, piece.J, piece.S))
	require.NoError(t, f.sync.Observe(nil))
	require.Len(t, f.rec.take(), 2)

	restored := gameState(ptr(piece.T), piece.I, piece.O, piece.S)
	restored.Hold = ptr(piece.L)
	restored.Columns[1][2] = 4
	f.restore <- notifications.Restore{State: restored, Register: 0xccbbb8b6}

	// the restore is written before the target is read so the restored
	// state is notified on the same tick
	require.NoError(t, f.sync.Observe(nil))
	n := f.rec.take()
	require.Len(t, n, 1)
	require.True(t, n[0].State.Equal(restored))

	rng, err := f.reader.RNG(f.buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0xccbbb8b6), rng)

	// a restore that cannot be written is dropped and the fields that were
	// written before the failure are put back
	f.buf.Fault(0x2000 + 0x80)
	f.restore <- notifications.Restore{State: gameState(ptr(piece.O), piece.I, piece.O, piece.S)}
	require.NoError(t, f.sync.Observe(nil))
	require.Len(t, f.restore, 0)
	require.Empty(t, f.rec.take())

	s, err := f.reader.Read(f.buf)
	require.NoError(t, err)
	require.True(t, s.Equal(restored))
}
