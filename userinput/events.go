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

// Event represents all the different type of events that can occur.
type Event interface{}

// KeyMod identifies the modifier keys held down with a key.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key press or key release. Key names are the upper case
// letter or digit, or one of the special names in the KeyNames list.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventQuit is sent when the operator has asked the program to end.
type EventQuit struct{}

// KeyNames lists the names of non-printing keys.
var KeyNames = []string{
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Space", "Backspace", "Tab", "Return", "Escape",
}
