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

// Package plainterm prints predictions as plain lines of text. Piece letters
// are coloured when the output is a terminal.
package plainterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pptsync/pptsync/piece"
	"github.com/pptsync/pptsync/rewind"
	"golang.org/x/term"
)

// PlainTerminal writes predictions to an io.Writer.
type PlainTerminal struct {
	out  io.Writer
	pens [piece.Count]*color.Color

	// the most recent line written by Update()
	last string
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. If out is not a terminal then colouring is disabled.
func NewPlainTerminal(out io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		out: out,
		pens: [piece.Count]*color.Color{
			piece.S: color.New(color.FgGreen, color.Bold),
			piece.Z: color.New(color.FgRed, color.Bold),
			piece.J: color.New(color.FgBlue, color.Bold),
			piece.L: color.New(color.FgHiRed),
			piece.T: color.New(color.FgMagenta, color.Bold),
			piece.O: color.New(color.FgYellow, color.Bold),
			piece.I: color.New(color.FgCyan, color.Bold),
		},
	}

	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		for _, p := range pt.pens {
			p.DisableColor()
		}
	}

	return pt
}

// Sequence returns the pieces as a string of letters separated by a space.
func (pt *PlainTerminal) Sequence(pieces []piece.Piece) string {
	s := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if !p.Valid() {
			s = append(s, p.String())
			continue
		}
		s = append(s, pt.pens[p].Sprint(p.String()))
	}
	return strings.Join(s, " ")
}

// Predict writes the sequence of pieces on a line of its own.
func (pt *PlainTerminal) Predict(pieces []piece.Piece) error {
	_, err := fmt.Fprintln(pt.out, pt.Sequence(pieces))
	return err
}

// Update writes the summary of the history if it is different to the summary
// of the previous call. Returns true if anything was written.
func (pt *PlainTerminal) Update(s rewind.Summary) (bool, error) {
	if s.Entries == 0 {
		return false, nil
	}

	l := fmt.Sprintf("[%d] seed %5d  next %s", s.Entries, s.Last.Seed, pt.Sequence(s.Last.Lookahead))
	if l == pt.last {
		return false, nil
	}
	pt.last = l

	_, err := fmt.Fprintln(pt.out, l)
	return true, err
}
