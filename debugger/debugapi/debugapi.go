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

package debugapi

import (
	"fmt"

	"github.com/pptsync/pptsync/memory"
)

// BreakpointOpcode is the single byte x86 INT3 instruction.
const BreakpointOpcode = 0xcc

// TrapFlag is the single-step bit in the EFlags register.
const TrapFlag = 0x100

// sentinal errors.
const (
	Unsupported     = "debugapi: unsupported platform (%s/%s)"
	ProcessNotFound = "debugapi: no process named %s"
	OSError         = "debugapi: %s: %v"
	UnexpectedEvent = "debugapi: unexpected first event (%v)"
	UnknownThread   = "debugapi: unknown thread (%d)"
)

// EventKind indicates the type of Event.
type EventKind int

// List of valid EventKind values.
const (
	EventOther EventKind = iota
	EventCreateProcess
	EventExitProcess
	EventBreakpoint
	EventSingleStep
)

func (k EventKind) String() string {
	switch k {
	case EventCreateProcess:
		return "create process"
	case EventExitProcess:
		return "exit process"
	case EventBreakpoint:
		return "breakpoint"
	case EventSingleStep:
		return "single step"
	}
	return "other"
}

// Event is a debug event reported by the operating system.
type Event struct {
	Kind     EventKind
	ThreadID uint32

	// address of the breakpoint instruction for EventBreakpoint events
	Address uint64

	// exit code for EventExitProcess events
	ExitCode uint32
}

func (e Event) String() string {
	switch e.Kind {
	case EventBreakpoint:
		return fmt.Sprintf("%s at %#x (thread %d)", e.Kind, e.Address, e.ThreadID)
	case EventExitProcess:
		return fmt.Sprintf("%s with code %d", e.Kind, e.ExitCode)
	}
	return fmt.Sprintf("%s (thread %d)", e.Kind, e.ThreadID)
}

// Context is the register state of a stopped thread. Only the registers
// needed by the debugger are included.
type Context struct {
	Rax, Rbx, Rcx, Rdx uint64
	Rsi, Rdi, Rbp, Rsp uint64
	R8, R9, R10, R11   uint64
	R12, R13, R14, R15 uint64
	Rip                uint64
	EFlags             uint32
}

// Thread is an open handle to a stopped thread in the target process.
type Thread interface {
	ID() uint32
	Context() (Context, error)
	SetContext(Context) error
	Close() error
}

// Process is a process that has been attached to as a debugger.
type Process interface {
	memory.Accessor

	PID() int

	// continue the thread that reported the most recent event. if handled
	// is false then the event is passed to the process to deal with as it
	// would if there was no debugger attached
	Continue(tid uint32, handled bool) error

	// block until the next debug event
	WaitForEvent() (Event, error)

	OpenThread(tid uint32) (Thread, error)

	// detach from the process, leaving it running
	Detach() error
}
