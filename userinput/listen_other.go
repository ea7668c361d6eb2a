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

//go:build !windows

package userinput

import (
	"os"

	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/userinput/easyterm"
	"golang.org/x/term"
)

// Listen reads key presses from the terminal and passes them to Controls.
// Returns when the quit channel is closed or when Controls has received a
// quit event.
//
// If standard input is not a terminal then no keys are read and the function
// just waits for the quit channel.
func Listen(ctrl *Controls, quit <-chan struct{}) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Log(logger.Allow, "userinput", "stdin is not a terminal. undo key is not available")
		<-quit
		return nil
	}

	var et easyterm.Terminal
	if err := et.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer et.CleanUp()
	et.CBreakMode()

	keys := make(chan []byte)
	go func() {
		defer close(keys)
		b := make([]byte, 16)
		for {
			n, err := et.Read(b)
			if err != nil {
				return
			}
			k := make([]byte, n)
			copy(k, b[:n])
			select {
			case keys <- k:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			if ev, ok := TerminalEvent(k); ok {
				ctrl.HandleUserInput(ev)
				if ctrl.Quit {
					return nil
				}
			}
		}
	}
}
