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

package debugger_test

import (
	"github.com/pptsync/pptsync/debugger/debugapi"
	"github.com/pptsync/pptsync/memory"
	"github.com/stretchr/testify/mock"
)

// mockProcess scripts the debug events of a process. memory requests are
// served by the embedded Buffer.
type mockProcess struct {
	mock.Mock
	*memory.Buffer
}

func newMockProcess() *mockProcess {
	return &mockProcess{Buffer: memory.NewBuffer()}
}

func (m *mockProcess) PID() int {
	return 1234
}

func (m *mockProcess) Continue(tid uint32, handled bool) error {
	args := m.Called(tid, handled)
	return args.Error(0)
}

func (m *mockProcess) WaitForEvent() (debugapi.Event, error) {
	args := m.Called()
	return args.Get(0).(debugapi.Event), args.Error(1)
}

func (m *mockProcess) OpenThread(tid uint32) (debugapi.Thread, error) {
	args := m.Called(tid)
	t, _ := args.Get(0).(debugapi.Thread)
	return t, args.Error(1)
}

func (m *mockProcess) Detach() error {
	return m.Called().Error(0)
}

// expect a continue followed by an event.
func (m *mockProcess) expectEvent(tid uint32, handled bool, ev debugapi.Event) {
	m.On("Continue", tid, handled).Return(nil).Once()
	m.On("WaitForEvent").Return(ev, nil).Once()
}

// fakeThread records the contexts written to it.
type fakeThread struct {
	id     uint32
	ctx    debugapi.Context
	sets   []debugapi.Context
	closed int

	contextErr error
}

func (t *fakeThread) ID() uint32 {
	return t.id
}

func (t *fakeThread) Context() (debugapi.Context, error) {
	return t.ctx, t.contextErr
}

func (t *fakeThread) SetContext(ctx debugapi.Context) error {
	t.ctx = ctx
	t.sets = append(t.sets, ctx)
	return nil
}

func (t *fakeThread) Close() error {
	t.closed++
	return nil
}
