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

package debugger

import (
	"sync/atomic"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/pptsync/pptsync/assert"
	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/debugger/debugapi"
	"github.com/pptsync/pptsync/logger"
)

// sentinal errors.
const (
	TargetExited    = "debugger: target exited (code %d)"
	OSFailure       = "debugger: %v: %v"
	NotCreateEvent  = "debugger: session must start with a create process event (%v)"
	ObserverFailure = "debugger: observer: %v"
	WrongGoroutine  = "debugger: session attached on goroutine %d but used on goroutine %d"
)

// Session is a debug session with the target process.
//
// A Session is not safe for concurrent use. It should be used only from the
// goroutine that attached to the process.
type Session struct {
	proc    debugapi.Process
	address uint64

	// human readable name for the session. used in log entries
	name string

	// the goroutine that attached to the process
	owner uint64

	// the thread that reported the most recent debug event and how the
	// event is to be continued
	tid     uint32
	handled bool

	phase Phase
	ticks uint64

	// set by Stop() from any goroutine
	stop atomic.Bool

	// log entries for every debug event
	Verbose logger.Verbose
}

// NewSession is the preferred method of initialisation for the Session type.
// The first event is the event returned by debugapi.Attach().
func NewSession(proc debugapi.Process, first debugapi.Event, address uint64) (*Session, error) {
	if first.Kind != debugapi.EventCreateProcess {
		return nil, curated.Errorf(NotCreateEvent, first)
	}

	s := &Session{
		proc:    proc,
		address: address,
		name:    petname.Generate(2, "-"),
		owner:   assert.GoroutineID(),
		tid:     first.ThreadID,
	}

	logger.Logf(logger.Allow, "debugger", "session %s attached to process %d (breakpoint %#x)", s.name, proc.PID(), address)

	return s, nil
}

// Name of the session.
func (s *Session) Name() string {
	return s.name
}

// Phase returns the current phase of the session.
func (s *Session) Phase() Phase {
	return s.phase
}

// Ticks returns the number of completed ticks.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Tick runs one complete cycle. The observer function is called while the
// target is paused at the breakpoint address.
func (s *Session) Tick(observer func(debugapi.Thread) error) error {
	return s.TickAt(s.address, observer)
}

// TickAt is the same as Tick() except that the breakpoint is placed at the
// specified address rather than the session's address.
func (s *Session) TickAt(address uint64, observer func(debugapi.Thread) error) error {
	if s.phase == Exited {
		return curated.Errorf(TargetExited, 0)
	}
	if id := assert.GoroutineID(); id != s.owner {
		return curated.Errorf(WrongGoroutine, s.owner, id)
	}

	// arm
	s.phase = Arm
	var original [1]byte
	if err := s.proc.ReadMemory(address, original[:]); err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}
	if err := s.proc.WriteMemory(address, []byte{debugapi.BreakpointOpcode}); err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	// wait and dispatch
	for {
		ev, err := s.wait()
		if err != nil {
			return err
		}
		if ev.Kind == debugapi.EventBreakpoint && ev.Address == address {
			break // for loop
		}
		s.handled = false
	}

	// disarm
	s.phase = Disarm
	if err := s.proc.WriteMemory(address, original[:]); err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	thread, err := s.proc.OpenThread(s.tid)
	if err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	ctx, err := thread.Context()
	if err != nil {
		_ = thread.Close()
		return curated.Errorf(OSFailure, s.phase, err)
	}
	ctx.Rip = address
	if err := thread.SetContext(ctx); err != nil {
		_ = thread.Close()
		return curated.Errorf(OSFailure, s.phase, err)
	}
	s.handled = true

	// observe
	s.phase = Observe
	if observer != nil {
		if err := observer(thread); err != nil {
			_ = thread.Close()
			return curated.Errorf(ObserverFailure, err)
		}
	}
	if err := thread.Close(); err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	// step
	if err := s.step(); err != nil {
		return err
	}

	s.phase = Idle
	s.ticks++

	return nil
}

// continue the target and wait for the next event. returns an error if the
// target has exited.
func (s *Session) wait() (debugapi.Event, error) {
	s.phase = Wait
	if err := s.proc.Continue(s.tid, s.handled); err != nil {
		return debugapi.Event{}, curated.Errorf(OSFailure, s.phase, err)
	}

	ev, err := s.proc.WaitForEvent()
	if err != nil {
		return debugapi.Event{}, curated.Errorf(OSFailure, s.phase, err)
	}

	s.phase = Dispatch
	s.tid = ev.ThreadID
	logger.Logf(&s.Verbose, "debugger", "%s: %v", s.name, ev)

	if ev.Kind == debugapi.EventExitProcess {
		s.phase = Exited
		return ev, curated.Errorf(TargetExited, ev.ExitCode)
	}

	return ev, nil
}

func (s *Session) step() error {
	s.phase = Step

	thread, err := s.proc.OpenThread(s.tid)
	if err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	ctx, err := thread.Context()
	if err != nil {
		_ = thread.Close()
		return curated.Errorf(OSFailure, s.phase, err)
	}
	ctx.EFlags |= debugapi.TrapFlag
	if err := thread.SetContext(ctx); err != nil {
		_ = thread.Close()
		return curated.Errorf(OSFailure, s.phase, err)
	}
	if err := thread.Close(); err != nil {
		return curated.Errorf(OSFailure, s.phase, err)
	}

	for {
		ev, err := s.wait()
		if err != nil {
			return err
		}
		s.phase = Step
		if ev.Kind == debugapi.EventSingleStep {
			s.handled = true
			return nil
		}
		s.handled = false
	}
}

// Stop causes Run() to return at the end of the current tick. Safe to call
// from any goroutine.
func (s *Session) Stop() {
	s.stop.Store(true)
}

// Run ticks until an error occurs or until Stop() is called. The observer
// function is called on every tick.
func (s *Session) Run(observer func(debugapi.Thread) error) error {
	for !s.stop.Load() {
		if err := s.Tick(observer); err != nil {
			return err
		}
	}
	return nil
}

// Detach from the target. The target is left running. Should only be called
// between ticks.
func (s *Session) Detach() error {
	if s.phase == Exited {
		return nil
	}

	if err := s.proc.Continue(s.tid, s.handled); err != nil {
		return curated.Errorf(OSFailure, "detach", err)
	}
	if err := s.proc.Detach(); err != nil {
		return curated.Errorf(OSFailure, "detach", err)
	}

	logger.Logf(logger.Allow, "debugger", "session %s detached after %d ticks", s.name, s.ticks)

	return nil
}
