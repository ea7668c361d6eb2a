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

//go:build windows && amd64

package debugapi

import (
	"encoding/binary"
	"strings"
	"unsafe"

	"github.com/pptsync/pptsync/curated"
	"golang.org/x/sys/windows"
)

// the debugging functions in kernel32 that are not provided by the windows
// package.
var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procDebugActiveProcess        = kernel32.NewProc("DebugActiveProcess")
	procDebugActiveProcessStop    = kernel32.NewProc("DebugActiveProcessStop")
	procDebugSetProcessKillOnExit = kernel32.NewProc("DebugSetProcessKillOnExit")
	procWaitForDebugEvent         = kernel32.NewProc("WaitForDebugEvent")
	procContinueDebugEvent        = kernel32.NewProc("ContinueDebugEvent")
	procGetThreadContext          = kernel32.NewProc("GetThreadContext")
	procSetThreadContext          = kernel32.NewProc("SetThreadContext")
)

// debug event codes.
const (
	exceptionDebugEvent     = 1
	createProcessDebugEvent = 3
	exitProcessDebugEvent   = 5
	loadDLLDebugEvent       = 6
)

// exception codes.
const (
	exceptionBreakpoint = 0x80000003
	exceptionSingleStep = 0x80000004
)

// continue status.
const (
	dbgContinue            = 0x00010002
	dbgExceptionNotHandled = 0x80010001
)

const infinite = 0xffffffff

// thread access rights.
const (
	threadGetContext = 0x0008
	threadSetContext = 0x0010
)

// debugEvent is the DEBUG_EVENT structure. the union is decoded by hand
// depending on the event code.
type debugEvent struct {
	code uint32
	pid  uint32
	tid  uint32
	_    uint32
	u    [160]byte
}

// the CONTEXT structure for amd64. the structure must be 16 byte aligned so
// the buffer is over-allocated and an aligned slice is taken from it.
const (
	contextSize     = 1232
	contextAll      = 0x0010001f
	offContextFlags = 48
	offEFlags       = 68
	offRax          = 120
	offRip          = 248
)

// the order of the general purpose registers in the CONTEXT structure,
// starting at offRax.
func gpRegisters(ctx *Context) []*uint64 {
	return []*uint64{
		&ctx.Rax, &ctx.Rcx, &ctx.Rdx, &ctx.Rbx,
		&ctx.Rsp, &ctx.Rbp, &ctx.Rsi, &ctx.Rdi,
		&ctx.R8, &ctx.R9, &ctx.R10, &ctx.R11,
		&ctx.R12, &ctx.R13, &ctx.R14, &ctx.R15,
	}
}

type rawContext struct {
	buf [contextSize + 16]byte
}

func (c *rawContext) aligned() []byte {
	p := uintptr(unsafe.Pointer(&c.buf[0]))
	off := (16 - p%16) % 16
	return c.buf[off : off+contextSize]
}

func (c *rawContext) decode() Context {
	b := c.aligned()
	var ctx Context
	for i, r := range gpRegisters(&ctx) {
		*r = binary.LittleEndian.Uint64(b[offRax+i*8:])
	}
	ctx.Rip = binary.LittleEndian.Uint64(b[offRip:])
	ctx.EFlags = binary.LittleEndian.Uint32(b[offEFlags:])
	return ctx
}

func (c *rawContext) encode(ctx Context) {
	b := c.aligned()
	for i, r := range gpRegisters(&ctx) {
		binary.LittleEndian.PutUint64(b[offRax+i*8:], *r)
	}
	binary.LittleEndian.PutUint64(b[offRip:], ctx.Rip)
	binary.LittleEndian.PutUint32(b[offEFlags:], ctx.EFlags)
}

// FindProcess returns the ID of the process with the named executable. The
// comparison is case insensitive.
func FindProcess(name string) (int, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, curated.Errorf(OSError, "CreateToolhelp32Snapshot", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	err = windows.Process32First(snapshot, &entry)
	for err == nil {
		if strings.EqualFold(windows.UTF16ToString(entry.ExeFile[:]), name) {
			return int(entry.ProcessID), nil
		}
		err = windows.Process32Next(snapshot, &entry)
	}

	return 0, curated.Errorf(ProcessNotFound, name)
}

type process struct {
	pid    uint32
	handle windows.Handle
}

// Attach to the process as a debugger. The first event is returned with the
// Process.
func Attach(pid int) (Process, Event, error) {
	if r, _, err := procDebugActiveProcess.Call(uintptr(pid)); r == 0 {
		return nil, Event{}, curated.Errorf(OSError, "DebugActiveProcess", err)
	}

	// the target should keep running if we exit without detaching
	_, _, _ = procDebugSetProcessKillOnExit.Call(0)

	var ev debugEvent
	if err := waitForDebugEvent(&ev); err != nil {
		return nil, Event{}, err
	}

	if ev.code != createProcessDebugEvent {
		return nil, Event{}, curated.Errorf(UnexpectedEvent, ev.code)
	}

	// the CREATE_PROCESS_DEBUG_INFO structure contains a handle to the image
	// file (which we don't need) and a handle to the process with full
	// access rights
	closeFileHandle(&ev)
	p := &process{
		pid:    uint32(pid),
		handle: windows.Handle(binary.LittleEndian.Uint64(ev.u[8:])),
	}

	return p, Event{Kind: EventCreateProcess, ThreadID: ev.tid}, nil
}

func waitForDebugEvent(ev *debugEvent) error {
	if r, _, err := procWaitForDebugEvent.Call(uintptr(unsafe.Pointer(ev)), infinite); r == 0 {
		return curated.Errorf(OSError, "WaitForDebugEvent", err)
	}
	return nil
}

// the first field of the CREATE_PROCESS and LOAD_DLL structures is a file
// handle that the debugger is responsible for closing.
func closeFileHandle(ev *debugEvent) {
	h := windows.Handle(binary.LittleEndian.Uint64(ev.u[0:]))
	if h != 0 && h != windows.InvalidHandle {
		_ = windows.CloseHandle(h)
	}
}

func (p *process) PID() int {
	return int(p.pid)
}

func (p *process) ReadMemory(addr uint64, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var n uintptr
	err := windows.ReadProcessMemory(p.handle, uintptr(addr), &b[0], uintptr(len(b)), &n)
	if err != nil {
		return curated.Errorf(OSError, "ReadProcessMemory", err)
	}
	return nil
}

func (p *process) WriteMemory(addr uint64, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var n uintptr
	err := windows.WriteProcessMemory(p.handle, uintptr(addr), &b[0], uintptr(len(b)), &n)
	if err != nil {
		return curated.Errorf(OSError, "WriteProcessMemory", err)
	}
	return nil
}

func (p *process) Continue(tid uint32, handled bool) error {
	status := uintptr(dbgExceptionNotHandled)
	if handled {
		status = dbgContinue
	}
	if r, _, err := procContinueDebugEvent.Call(uintptr(p.pid), uintptr(tid), status); r == 0 {
		return curated.Errorf(OSError, "ContinueDebugEvent", err)
	}
	return nil
}

func (p *process) WaitForEvent() (Event, error) {
	var ev debugEvent
	if err := waitForDebugEvent(&ev); err != nil {
		return Event{}, err
	}

	e := Event{ThreadID: ev.tid}

	switch ev.code {
	case exceptionDebugEvent:
		// EXCEPTION_RECORD is the first field of EXCEPTION_DEBUG_INFO
		switch binary.LittleEndian.Uint32(ev.u[0:]) {
		case exceptionBreakpoint:
			e.Kind = EventBreakpoint
			e.Address = binary.LittleEndian.Uint64(ev.u[16:])
		case exceptionSingleStep:
			e.Kind = EventSingleStep
		}
	case exitProcessDebugEvent:
		e.Kind = EventExitProcess
		e.ExitCode = binary.LittleEndian.Uint32(ev.u[0:])
	case loadDLLDebugEvent:
		closeFileHandle(&ev)
	}

	return e, nil
}

func (p *process) OpenThread(tid uint32) (Thread, error) {
	h, err := windows.OpenThread(threadGetContext|threadSetContext, false, tid)
	if err != nil {
		return nil, curated.Errorf(OSError, "OpenThread", err)
	}
	return &thread{tid: tid, handle: h}, nil
}

func (p *process) Detach() error {
	if r, _, err := procDebugActiveProcessStop.Call(uintptr(p.pid)); r == 0 {
		return curated.Errorf(OSError, "DebugActiveProcessStop", err)
	}
	return nil
}

type thread struct {
	tid    uint32
	handle windows.Handle

	// the most recent context. SetContext() only changes the registers
	// described by the Context type and leaves the rest of the structure as
	// it was
	raw   rawContext
	valid bool
}

func (t *thread) ID() uint32 {
	return t.tid
}

func (t *thread) Context() (Context, error) {
	b := t.raw.aligned()
	binary.LittleEndian.PutUint32(b[offContextFlags:], contextAll)
	if r, _, err := procGetThreadContext.Call(uintptr(t.handle), uintptr(unsafe.Pointer(&b[0]))); r == 0 {
		return Context{}, curated.Errorf(OSError, "GetThreadContext", err)
	}
	t.valid = true
	return t.raw.decode(), nil
}

func (t *thread) SetContext(ctx Context) error {
	if !t.valid {
		if _, err := t.Context(); err != nil {
			return err
		}
	}
	t.raw.encode(ctx)
	b := t.raw.aligned()
	if r, _, err := procSetThreadContext.Call(uintptr(t.handle), uintptr(unsafe.Pointer(&b[0]))); r == 0 {
		return curated.Errorf(OSError, "SetThreadContext", err)
	}
	return nil
}

func (t *thread) Close() error {
	if err := windows.CloseHandle(t.handle); err != nil {
		return curated.Errorf(OSError, "CloseHandle", err)
	}
	return nil
}
