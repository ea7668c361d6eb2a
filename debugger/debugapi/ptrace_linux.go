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

//go:build linux && amd64

package debugapi

import (
	"syscall"

	"github.com/kamstrup/intmap"
	"github.com/pptsync/pptsync/curated"
	"golang.org/x/sys/unix"
)

// tracee is the state of a single thread in the target process.
type tracee struct {
	tid int

	// the signal that stopped the thread. delivered to the thread when it is
	// continued with handled set to false
	signal syscall.Signal

	// the thread has been asked to single-step. the next SIGTRAP is a
	// single-step trap and not a breakpoint
	stepping bool

	// thread is stopped and waiting to be continued
	stopped bool
}

type ptraceProcess struct {
	pid int

	threads *intmap.Map[uint32, *tracee]

	// thread IDs in the order they were added. the intmap is not used for
	// iteration
	order []uint32

	// the most recently stopped thread. memory requests are made through
	// this thread
	current int
}

// Attach to the process as a debugger. All threads in the process are
// attached and will be stopped when Attach() returns. The first event is an
// EventCreateProcess event for the main thread.
func Attach(pid int) (Process, Event, error) {
	p := &ptraceProcess{
		pid:     pid,
		threads: intmap.New[uint32, *tracee](64),
		current: pid,
	}

	tids, err := threadIDs(pid)
	if err != nil {
		return nil, Event{}, err
	}

	for _, tid := range tids {
		if err := unix.PtraceAttach(tid); err != nil {
			// the thread may have exited since the list was made
			if err == unix.ESRCH {
				continue // for loop
			}
			p.detachAll()
			return nil, Event{}, curated.Errorf(OSError, "PtraceAttach", err)
		}

		var status unix.WaitStatus
		if _, err := unix.Wait4(tid, &status, unix.WALL, nil); err != nil {
			p.detachAll()
			return nil, Event{}, curated.Errorf(OSError, "Wait4", err)
		}

		// new threads are traced automatically
		_ = unix.PtraceSetOptions(tid, unix.PTRACE_O_TRACECLONE)

		p.add(&tracee{tid: tid, stopped: true})
	}

	return p, Event{Kind: EventCreateProcess, ThreadID: uint32(pid)}, nil
}

func (p *ptraceProcess) add(t *tracee) {
	p.threads.Put(uint32(t.tid), t)
	p.order = append(p.order, uint32(t.tid))
}

func (p *ptraceProcess) remove(tid uint32) {
	if p.threads.Del(tid) {
		for i, o := range p.order {
			if o == tid {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break // for loop
			}
		}
	}
}

func (p *ptraceProcess) PID() int {
	return p.pid
}

func (p *ptraceProcess) ReadMemory(addr uint64, b []byte) error {
	if _, err := unix.PtracePeekData(p.current, uintptr(addr), b); err != nil {
		return curated.Errorf(OSError, "PtracePeekData", err)
	}
	return nil
}

func (p *ptraceProcess) WriteMemory(addr uint64, b []byte) error {
	if _, err := unix.PtracePokeData(p.current, uintptr(addr), b); err != nil {
		return curated.Errorf(OSError, "PtracePokeData", err)
	}
	return nil
}

// Continue the thread. Threads that were stopped during Attach() but which
// have not reported an event are also continued.
func (p *ptraceProcess) Continue(tid uint32, handled bool) error {
	t, ok := p.threads.Get(tid)
	if !ok {
		// the thread has exited
		return nil
	}

	if err := p.resume(t, handled); err != nil {
		return err
	}

	// on Windows all threads are resumed with the reporting thread. do the
	// same here for any thread still stopped from the initial attach
	for _, tid := range p.order {
		if o, ok := p.threads.Get(tid); ok && o.stopped {
			if err := p.resume(o, true); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *ptraceProcess) resume(t *tracee, handled bool) error {
	if !t.stopped {
		return nil
	}

	var err error
	if t.stepping {
		err = unix.PtraceSingleStep(t.tid)
	} else {
		sig := 0
		if !handled {
			sig = int(t.signal)
		}
		err = unix.PtraceCont(t.tid, sig)
	}

	if err != nil {
		if err == unix.ESRCH {
			p.remove(uint32(t.tid))
			return nil
		}
		return curated.Errorf(OSError, "PtraceCont", err)
	}

	t.stopped = false
	t.signal = 0
	return nil
}

func (p *ptraceProcess) WaitForEvent() (Event, error) {
	for {
		var status unix.WaitStatus
		wpid, err := unix.Wait4(-1, &status, unix.WALL, nil)
		if err != nil {
			if err == unix.EINTR {
				continue // for loop
			}
			return Event{}, curated.Errorf(OSError, "Wait4", err)
		}

		tid := uint32(wpid)

		if status.Exited() || status.Signaled() {
			p.remove(tid)
			if wpid == p.pid {
				return Event{Kind: EventExitProcess, ThreadID: tid, ExitCode: uint32(status.ExitStatus())}, nil
			}
			continue // for loop
		}

		if !status.Stopped() {
			continue // for loop
		}

		t, ok := p.threads.Get(tid)
		if !ok {
			// new thread created by clone
			t = &tracee{tid: wpid}
			p.add(t)
		}
		t.stopped = true
		p.current = wpid

		e := Event{ThreadID: tid}

		sig := status.StopSignal()
		switch {
		case sig == unix.SIGTRAP && status.TrapCause() > 0:
			// ptrace event, such as clone. not a real signal
		case sig == unix.SIGSTOP:
			// group stop or the initial stop of a new thread. never
			// redelivered
		case sig == unix.SIGTRAP && t.stepping:
			t.stepping = false
			e.Kind = EventSingleStep
		case sig == unix.SIGTRAP:
			var regs unix.PtraceRegs
			if err := unix.PtraceGetRegs(wpid, &regs); err != nil {
				return Event{}, curated.Errorf(OSError, "PtraceGetRegs", err)
			}
			// the instruction pointer is one byte past the INT3 instruction
			e.Kind = EventBreakpoint
			e.Address = regs.Rip - 1
			t.signal = sig
		default:
			t.signal = sig
		}

		return e, nil
	}
}

func (p *ptraceProcess) OpenThread(tid uint32) (Thread, error) {
	t, ok := p.threads.Get(tid)
	if !ok {
		return nil, curated.Errorf(UnknownThread, tid)
	}
	return &ptraceThread{t: t}, nil
}

func (p *ptraceProcess) detachAll() {
	for _, tid := range p.order {
		_ = unix.PtraceDetach(int(tid))
	}
	p.threads.Clear()
	p.order = p.order[:0]
}

// Detach from every thread. Stopped threads are resumed by the kernel.
func (p *ptraceProcess) Detach() error {
	for _, tid := range p.order {
		t, ok := p.threads.Get(tid)
		if !ok {
			continue // for loop
		}

		// a thread must be stopped before it can be detached
		if !t.stopped {
			_ = unix.Tgkill(p.pid, t.tid, unix.SIGSTOP)
			var status unix.WaitStatus
			_, _ = unix.Wait4(t.tid, &status, unix.WALL, nil)
		}

		if err := unix.PtraceDetach(t.tid); err != nil && err != unix.ESRCH {
			return curated.Errorf(OSError, "PtraceDetach", err)
		}
	}
	p.threads.Clear()
	p.order = p.order[:0]
	return nil
}

type ptraceThread struct {
	t *tracee
}

func (pt *ptraceThread) ID() uint32 {
	return uint32(pt.t.tid)
}

func (pt *ptraceThread) Context() (Context, error) {
	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(pt.t.tid, &regs); err != nil {
		return Context{}, curated.Errorf(OSError, "PtraceGetRegs", err)
	}
	return Context{
		Rax: regs.Rax, Rbx: regs.Rbx, Rcx: regs.Rcx, Rdx: regs.Rdx,
		Rsi: regs.Rsi, Rdi: regs.Rdi, Rbp: regs.Rbp, Rsp: regs.Rsp,
		R8: regs.R8, R9: regs.R9, R10: regs.R10, R11: regs.R11,
		R12: regs.R12, R13: regs.R13, R14: regs.R14, R15: regs.R15,
		Rip:    regs.Rip,
		EFlags: uint32(regs.Eflags),
	}, nil
}

// SetContext writes the registers to the thread. If the trap flag is set
// then the thread is single-stepped when it is next continued. The trap flag
// itself is not written and is managed by the kernel.
func (pt *ptraceThread) SetContext(ctx Context) error {
	var regs unix.PtraceRegs
	if err := unix.PtraceGetRegs(pt.t.tid, &regs); err != nil {
		return curated.Errorf(OSError, "PtraceGetRegs", err)
	}

	regs.Rax, regs.Rbx, regs.Rcx, regs.Rdx = ctx.Rax, ctx.Rbx, ctx.Rcx, ctx.Rdx
	regs.Rsi, regs.Rdi, regs.Rbp, regs.Rsp = ctx.Rsi, ctx.Rdi, ctx.Rbp, ctx.Rsp
	regs.R8, regs.R9, regs.R10, regs.R11 = ctx.R8, ctx.R9, ctx.R10, ctx.R11
	regs.R12, regs.R13, regs.R14, regs.R15 = ctx.R12, ctx.R13, ctx.R14, ctx.R15
	regs.Rip = ctx.Rip
	regs.Eflags = uint64(ctx.EFlags &^ TrapFlag)

	if err := unix.PtraceSetRegs(pt.t.tid, &regs); err != nil {
		return curated.Errorf(OSError, "PtraceSetRegs", err)
	}

	pt.t.stepping = ctx.EFlags&TrapFlag == TrapFlag
	return nil
}

func (pt *ptraceThread) Close() error {
	return nil
}
