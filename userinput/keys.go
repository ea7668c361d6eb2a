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
	"fmt"
	"strconv"
	"strings"

	"github.com/pptsync/pptsync/userinput/easyterm"
)

// function keys that use the SS3 escape sequence.
var ss3Keys = map[byte]string{
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

// function keys that use the CSI escape sequence with a numeric parameter.
var csiKeys = map[int]string{
	11: "F1",
	12: "F2",
	13: "F3",
	14: "F4",
	15: "F5",
	17: "F6",
	18: "F7",
	19: "F8",
	20: "F9",
	21: "F10",
	23: "F11",
	24: "F12",
}

// TerminalEvent translates the bytes from a single terminal read into an
// Event. Returns false if the bytes are not recognised.
func TerminalEvent(b []byte) (Event, bool) {
	if len(b) == 0 {
		return nil, false
	}

	key := func(name string, mod KeyMod) (Event, bool) {
		return EventKeyboard{Key: name, Down: true, Mod: mod}, true
	}

	if b[0] == easyterm.KeyEsc {
		if len(b) == 1 {
			return key("Escape", KeyModNone)
		}
		return escapeSequence(b[1:])
	}

	if len(b) > 1 {
		return nil, false
	}

	c := b[0]
	switch {
	case c == easyterm.KeyCtrlC:
		return EventQuit{}, true
	case c == easyterm.KeyTab:
		return key("Tab", KeyModNone)
	case c == easyterm.KeyCarriageReturn || c == easyterm.KeyLineFeed:
		return key("Return", KeyModNone)
	case c == easyterm.KeyBackspace:
		return key("Backspace", KeyModNone)
	case c == ' ':
		return key("Space", KeyModNone)
	case c >= 1 && c <= 26:
		return key(string(rune('A'+c-1)), KeyModCtrl)
	case c >= 'a' && c <= 'z':
		return key(strings.ToUpper(string(c)), KeyModNone)
	case c >= 'A' && c <= 'Z':
		return key(string(c), KeyModShift)
	case c >= '0' && c <= '9':
		return key(string(c), KeyModNone)
	}

	return nil, false
}

func escapeSequence(b []byte) (Event, bool) {
	if len(b) < 2 {
		return nil, false
	}

	switch b[0] {
	case easyterm.EscSS3:
		if name, ok := ss3Keys[b[1]]; ok && len(b) == 2 {
			return EventKeyboard{Key: name, Down: true}, true
		}
	case easyterm.EscCSI:
		if b[len(b)-1] != easyterm.CSITilde {
			return nil, false
		}
		n, err := strconv.Atoi(string(b[1 : len(b)-1]))
		if err != nil {
			return nil, false
		}
		if name, ok := csiKeys[n]; ok {
			return EventKeyboard{Key: name, Down: true}, true
		}
	}

	return nil, false
}

// VirtualKey returns the Windows virtual key code for the named key.
func VirtualKey(name string) (int, error) {
	if len(name) == 1 {
		c := strings.ToUpper(name)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return int(c), nil
		}
	}

	switch strings.ToUpper(name) {
	case "BACKSPACE":
		return 0x08, nil
	case "TAB":
		return 0x09, nil
	case "RETURN":
		return 0x0d, nil
	case "ESCAPE":
		return 0x1b, nil
	case "SPACE":
		return 0x20, nil
	}

	if n, ok := strings.CutPrefix(strings.ToUpper(name), "F"); ok {
		f, err := strconv.Atoi(n)
		if err == nil && f >= 1 && f <= 12 {
			return 0x70 + f - 1, nil
		}
	}

	return 0, fmt.Errorf("userinput: no virtual key for %s", name)
}
