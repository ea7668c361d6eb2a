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

//go:build windows

package userinput

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// the key is considered down if the most significant bit is set
const asyncKeyDown = 0x8000

const pollInterval = 20 * time.Millisecond

// Listen polls the state of the undo key and passes changes to Controls. The
// key is detected even when the game window has focus. Returns when the quit
// channel is closed.
func Listen(ctrl *Controls, quit <-chan struct{}) error {
	key := ctrl.prefs.UndoKey.String()
	vk, err := VirtualKey(key)
	if err != nil {
		return err
	}
	if err := procGetAsyncKeyState.Find(); err != nil {
		return fmt.Errorf("userinput: %w", err)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var down bool
	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
			d := uint16(r)&asyncKeyDown == asyncKeyDown
			if d != down {
				down = d
				ctrl.HandleUserInput(EventKeyboard{Key: key, Down: d})
				if ctrl.Quit {
					return nil
				}
			}
		}
	}
}
