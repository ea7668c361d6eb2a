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

// Package debugger drives a debug session against the target process.
//
// A Session pauses the target once per tick at a fixed instruction address.
// Each tick is a cycle of five phases:
//
//	Arm       the original byte at the address is replaced with INT3
//	Wait      the target is continued until the next debug event
//	Dispatch  events other than the breakpoint are passed back to the
//	          target and the session returns to Wait
//	Disarm    the original byte is restored and the instruction pointer of
//	          the thread is moved back onto the instruction
//	Step      the instruction is executed with the trap flag set so that
//	          the breakpoint can be re-armed on the next tick
//
// Between Disarm and Step the target is paused and the caller of Tick() is
// given the stopped thread. The Synchroniser type is the caller used by
// pptsync: it reads the game state from the target and sends notifications
// to the state history engine.
//
// Failure of any operating system call during a tick is fatal and the
// session cannot continue. Loss of the target process is reported with the
// TargetExited error.
package debugger
