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

// Package monitor is a full screen view of the synchronised game. It is built
// on tview and shows the predicted pieces, the most recently observed board
// and the tail of the log.
package monitor

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pptsync/pptsync/logger"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/userinput"
	"github.com/rivo/tview"
)

// how often the view is redrawn
const refreshInterval = 100 * time.Millisecond

// number of log entries shown in the log panel
const logEntries = 8

// Monitor is the full screen view.
type Monitor struct {
	app *tview.Application

	prediction *tview.TextView
	board      *tview.TextView
	log        *tview.TextView
	hint       *tview.TextView

	tracker *rewind.Tracker
	ctrl    *userinput.Controls

	// called when the operator asks to quit
	onQuit func()
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(tracker *rewind.Tracker, ctrl *userinput.Controls, onQuit func()) *Monitor {
	m := &Monitor{
		app:        tview.NewApplication(),
		prediction: tview.NewTextView(),
		board:      tview.NewTextView(),
		log:        tview.NewTextView(),
		hint:       tview.NewTextView(),
		tracker:    tracker,
		ctrl:       ctrl,
		onQuit:     onQuit,
	}

	m.prediction.SetDynamicColors(true)
	m.prediction.SetBorder(true)
	m.prediction.SetTitle(" Prediction ")
	m.prediction.SetTitleAlign(tview.AlignLeft)

	m.board.SetBorder(true)
	m.board.SetTitle(" Board ")
	m.board.SetTitleAlign(tview.AlignLeft)

	m.log.SetBorder(true)
	m.log.SetTitle(" Log ")
	m.log.SetTitleAlign(tview.AlignLeft)

	m.hint.SetDynamicColors(true)
	m.hint.SetText("[dimgray]undo: u   quit: q[-]")

	top := tview.NewFlex().SetDirection(tview.FlexColumn)
	top.AddItem(m.prediction, 0, 1, false)
	top.AddItem(m.board, 14, 0, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.AddItem(top, 0, 1, false)
	root.AddItem(m.log, logEntries+2, 0, false)
	root.AddItem(m.hint, 1, 0, false)

	m.app.SetRoot(root, true)
	m.app.SetInputCapture(m.handleInput)

	return m
}

func (m *Monitor) handleInput(event *tcell.EventKey) *tcell.EventKey {
	ev, ok := keyEvent(event)
	if !ok {
		return event
	}

	m.ctrl.HandleUserInput(ev)
	if m.ctrl.Quit {
		if m.onQuit != nil {
			m.onQuit()
		}
		m.app.Stop()
		return nil
	}
	if m.ctrl.LastKeyHandled {
		return nil
	}

	// the u key requests an undo in the monitor whatever the undo key is
	if kb, ok := ev.(userinput.EventKeyboard); ok && kb.Key == "U" && kb.Mod == userinput.KeyModNone {
		m.ctrl.Undo()
		return nil
	}

	return event
}

// refresh all panels. must be called from the tview event loop.
func (m *Monitor) refresh() {
	s := m.tracker.Summary()
	m.prediction.SetText(renderPrediction(s))
	m.board.SetText(renderBoard(s))

	var b strings.Builder
	logger.Tail(&b, logEntries)
	m.log.SetText(b.String())
}

// Run the monitor. Blocks until the operator quits or until the quit channel
// is closed.
func (m *Monitor) Run(quit <-chan struct{}) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-quit:
				m.app.Stop()
				return
			case <-ticker.C:
				m.app.QueueUpdateDraw(m.refresh)
			}
		}
	}()

	return m.app.Run()
}
