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

// Package userinput handles input from the operator of the synchroniser.
//
// Key presses from whatever source is available on the platform are
// translated into EventKeyboard values and handed to Controls. Controls
// decides what the key means and forwards undo requests to the Requests
// channel, which is read by the state history engine.
//
// On Windows the keyboard is polled with GetAsyncKeyState() so that the undo
// key works while the game window has focus. Elsewhere keys are read from the
// terminal, which is put into cbreak mode with the easyterm package.
package userinput
