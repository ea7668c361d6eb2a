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

package monitor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/userinput"
	"github.com/rivo/tview"
)

// tview colour names for each piece.
var pieceColors = [piece.Count]string{
	piece.S: "green",
	piece.Z: "red",
	piece.J: "blue",
	piece.L: "orange",
	piece.T: "purple",
	piece.O: "yellow",
	piece.I: "aqua",
}

func colorPiece(p piece.Piece) string {
	if !p.Valid() {
		return p.String()
	}
	return fmt.Sprintf("[%s::b]%s[-:-:-]", pieceColors[p], p)
}

func colorPieces(pieces []piece.Piece) string {
	s := make([]string, 0, len(pieces))
	for _, p := range pieces {
		s = append(s, colorPiece(p))
	}
	return strings.Join(s, " ")
}

func renderPrediction(s rewind.Summary) string {
	if s.Entries == 0 {
		return "[dimgray]waiting for a game to start[-]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[white::b]Seed:[-:-:-] %d\n", s.Last.Seed)
	fmt.Fprintf(&b, "[white::b]History:[-:-:-] %d\n", s.Entries)
	fmt.Fprintf(&b, "[white::b]RNG:[-:-:-] %#08x\n\n", s.Last.Generator.Register())

	obs := s.Last.Observed
	current := "-"
	if obs.Current != nil {
		current = colorPiece(*obs.Current)
	}
	hold := "-"
	if obs.Hold != nil {
		hold = colorPiece(*obs.Hold)
	}
	fmt.Fprintf(&b, "[white::b]Current:[-:-:-] %s  [white::b]Hold:[-:-:-] %s\n", current, hold)
	fmt.Fprintf(&b, "[white::b]Next:[-:-:-] %s\n\n", colorPieces(obs.Next))
	fmt.Fprintf(&b, "[white::b]Predicted:[-:-:-] %s", colorPieces(s.Last.Lookahead))

	return b.String()
}

func renderBoard(s rewind.Summary) string {
	if s.Entries == 0 {
		return ""
	}
	return tview.Escape(s.Last.Observed.Board())
}

// keyEvent translates tcell key events to userinput events.
func keyEvent(ev *tcell.EventKey) (userinput.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return userinput.EventQuit{}, true
	case tcell.KeyEnter:
		return userinput.EventKeyboard{Key: "Return", Down: true}, true
	case tcell.KeyTab:
		return userinput.EventKeyboard{Key: "Tab", Down: true}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return userinput.EventKeyboard{Key: "Backspace", Down: true}, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return userinput.EventQuit{}, true
		case r == ' ':
			return userinput.EventKeyboard{Key: "Space", Down: true}, true
		case r >= 'a' && r <= 'z':
			return userinput.EventKeyboard{Key: strings.ToUpper(string(r)), Down: true}, true
		case r >= 'A' && r <= 'Z':
			return userinput.EventKeyboard{Key: string(r), Down: true, Mod: userinput.KeyModShift}, true
		case r >= '0' && r <= '9':
			return userinput.EventKeyboard{Key: string(r), Down: true}, true
		}
	}

	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
		return userinput.EventKeyboard{Key: fmt.Sprintf("F%d", ev.Key()-tcell.KeyF1+1), Down: true}, true
	}

	return nil, false
}
