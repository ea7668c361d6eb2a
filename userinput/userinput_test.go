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

package userinput_test

import (
	"path/filepath"
	"testing"

	"github.com/pptsync/pptsync/test"
	"github.com/pptsync/pptsync/userinput"
)

func TestRequests(t *testing.T) {
	r := userinput.NewRequests()
	test.ExpectSuccess(t, r.RequestUndo())

	// second request is dropped while the first is pending
	test.ExpectFailure(t, r.RequestUndo())

	<-r.Undo()
	test.ExpectSuccess(t, r.RequestUndo())
	test.ExpectEquality(t, len(r.Undo()), 1)
}

func newControls(t *testing.T, key string) (*userinput.Controls, *userinput.Requests) {
	t.Helper()
	p, err := userinput.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.UndoKey.Set(key))
	r := userinput.NewRequests()
	return userinput.NewControls(p, r), r
}

func TestControls(t *testing.T) {
	c, r := newControls(t, "u")

	c.HandleUserInput(userinput.EventKeyboard{Key: "X", Down: true})
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.Undo()), 0)

	// key release and modified keys are ignored
	c.HandleUserInput(userinput.EventKeyboard{Key: "U", Down: false})
	test.ExpectFailure(t, c.LastKeyHandled)
	c.HandleUserInput(userinput.EventKeyboard{Key: "U", Down: true, Mod: userinput.KeyModCtrl})
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.Undo()), 0)

	c.HandleUserInput(userinput.EventKeyboard{Key: "U", Down: true})
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.Undo()), 1)

	// still handled even though the request is dropped
	c.HandleUserInput(userinput.EventKeyboard{Key: "U", Down: true})
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.Undo()), 1)

	test.ExpectFailure(t, c.Quit)
	c.HandleUserInput(userinput.EventQuit{})
	test.ExpectSuccess(t, c.Quit)
}

func TestFunctionKeyControls(t *testing.T) {
	c, r := newControls(t, "F5")

	ev, ok := userinput.TerminalEvent([]byte("\x1b[15~"))
	test.DemandSuccess(t, ok)
	c.HandleUserInput(ev)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.Undo()), 1)
}

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := userinput.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.UndoKey.String(), userinput.DefaultUndoKey)

	test.ExpectFailure(t, p.UndoKey.Set("Hyper"))
	test.ExpectFailure(t, p.UndoKey.Set("%"))
	test.ExpectEquality(t, p.UndoKey.String(), userinput.DefaultUndoKey)

	test.ExpectSuccess(t, p.UndoKey.Set("F9"))
	test.DemandSuccess(t, p.Save())

	p, err = userinput.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.UndoKey.String(), "F9")
}

func TestTerminalEvent(t *testing.T) {
	cases := []struct {
		in  string
		key string
		mod userinput.KeyMod
	}{
		{"u", "U", userinput.KeyModNone},
		{"U", "U", userinput.KeyModShift},
		{"7", "7", userinput.KeyModNone},
		{" ", "Space", userinput.KeyModNone},
		{"\r", "Return", userinput.KeyModNone},
		{"\t", "Tab", userinput.KeyModNone},
		{"\x7f", "Backspace", userinput.KeyModNone},
		{"\x1b", "Escape", userinput.KeyModNone},
		{"\x15", "U", userinput.KeyModCtrl},
		{"\x1bOP", "F1", userinput.KeyModNone},
		{"\x1bOS", "F4", userinput.KeyModNone},
		{"\x1b[11~", "F1", userinput.KeyModNone},
		{"\x1b[15~", "F5", userinput.KeyModNone},
		{"\x1b[24~", "F12", userinput.KeyModNone},
	}

	for _, c := range cases {
		ev, ok := userinput.TerminalEvent([]byte(c.in))
		test.DemandSuccess(t, ok)
		kb, ok := ev.(userinput.EventKeyboard)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, kb.Key, c.key)
		test.ExpectEquality(t, kb.Mod, c.mod)
		test.ExpectSuccess(t, kb.Down)
	}

	ev, ok := userinput.TerminalEvent([]byte{3})
	test.ExpectSuccess(t, ok)
	_, ok = ev.(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	for _, in := range []string{"", "ab", "%", "\x1b[16~", "\x1b[A", "\x1bOZ", "\x1b[x~"} {
		_, ok := userinput.TerminalEvent([]byte(in))
		test.ExpectFailure(t, ok)
	}
}

func TestVirtualKey(t *testing.T) {
	cases := map[string]int{
		"u":     'U',
		"U":     'U',
		"5":     '5',
		"F1":    0x70,
		"f5":    0x74,
		"F12":   0x7b,
		"Space": 0x20,
	}
	for name, vk := range cases {
		v, err := userinput.VirtualKey(name)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, vk)
	}

	_, err := userinput.VirtualKey("F13")
	test.ExpectFailure(t, err)
	_, err = userinput.VirtualKey("Hyper")
	test.ExpectFailure(t, err)
}
