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

package monitor

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/snapshot"
	"github.com/pptsync/pptsync/test"
	"github.com/pptsync/pptsync/userinput"
)

func TestKeyEvent(t *testing.T) {
	ev, ok := keyEvent(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.(userinput.EventKeyboard).Key, "U")

	ev, ok = keyEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.(userinput.EventKeyboard).Key, "F5")

	ev, ok = keyEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	test.DemandSuccess(t, ok)
	_, ok = ev.(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	_, ok = keyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	test.ExpectFailure(t, ok)
}

func newTestMonitor(t *testing.T, undoKey string) (*Monitor, *userinput.Requests, *bool) {
	t.Helper()

	p, err := userinput.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.UndoKey.Set(undoKey))

	req := userinput.NewRequests()
	var quit bool
	m := NewMonitor(rewind.NewTracker(rewind.NewQueue(nil, 5, 0)), userinput.NewControls(p, req), func() {
		quit = true
	})
	return m, req, &quit
}

func TestHandleInput(t *testing.T) {
	m, req, quit := newTestMonitor(t, "F5")

	// u always requests an undo
	test.ExpectSuccess(t, m.handleInput(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone)) == nil)
	test.ExpectEquality(t, len(req.Undo()), 1)
	<-req.Undo()

	// as does the configured key
	test.ExpectSuccess(t, m.handleInput(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)) == nil)
	test.ExpectEquality(t, len(req.Undo()), 1)
	<-req.Undo()

	// other keys are passed through
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	test.ExpectSuccess(t, m.handleInput(ev) == ev)
	test.ExpectEquality(t, len(req.Undo()), 0)

	test.ExpectFailure(t, *quit)
	test.ExpectSuccess(t, m.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) == nil)
	test.ExpectSuccess(t, *quit)
}

func TestRender(t *testing.T) {
	test.ExpectSuccess(t, strings.Contains(renderPrediction(rewind.Summary{}), "waiting"))
	test.ExpectEquality(t, renderBoard(rewind.Summary{}), "")

	obs := snapshot.State{
		Columns: [][]int16{{1, 0}, {0, 0}},
		Next:    []piece.Piece{piece.I, piece.O},
	}
	cur := piece.T
	obs.Current = &cur

	s := rewind.Summary{
		Entries: 3,
		Last:    rewind.NewGameState(42, obs, 5),
	}

	r := renderPrediction(s)
	test.ExpectSuccess(t, strings.Contains(r, "Seed:[-:-:-] 42"))
	test.ExpectSuccess(t, strings.Contains(r, "History:[-:-:-] 3"))
	test.ExpectSuccess(t, strings.Contains(r, "[purple::b]T[-:-:-]"))
	test.ExpectSuccess(t, strings.Contains(r, "Predicted:[-:-:-] [aqua::b]I[-:-:-] [purple::b]T[-:-:-]"))
	test.ExpectEquality(t, renderBoard(s), "#.\n")
}
