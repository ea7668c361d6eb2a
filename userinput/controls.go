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

import (
	"strings"

	"github.com/pptsync/pptsync/logger"
)

// Controls interprets user input events.
type Controls struct {
	prefs    *Preferences
	requests *Requests

	// whether or not the last HandleUserInput() was for an event that was
	// consumed
	LastKeyHandled bool

	// is true if last event was a quit event
	Quit bool
}

// NewControls is the preferred method of initialisation for the Controls
// type.
func NewControls(prefs *Preferences, requests *Requests) *Controls {
	return &Controls{
		prefs:    prefs,
		requests: requests,
	}
}

// HandleUserInput deals with the event. Key releases and key presses with a
// modifier are never handled.
func (c *Controls) HandleUserInput(ev Event) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		c.LastKeyHandled = true

	case EventKeyboard:
		if !ev.Down || ev.Mod != KeyModNone {
			return
		}

		if strings.EqualFold(ev.Key, c.prefs.UndoKey.String()) {
			c.LastKeyHandled = true
			c.Undo()
		}
	}
}

// Undo sends an undo request. The request is dropped if one is already
// pending.
func (c *Controls) Undo() {
	if !c.requests.RequestUndo() {
		logger.Log(logger.Allow, "userinput", "undo already pending")
	}
}
