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

package logger

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// the entry is highlighted and anything tagged as an error is printed in red.
type Colorizer struct {
	out io.Writer
	tag *color.Color
	err *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. If out is not a terminal then coloring is disabled.
func NewColorizer(out io.Writer) Colorizer {
	c := Colorizer{
		out: out,
		tag: color.New(color.FgCyan),
		err: color.New(color.FgRed, color.Bold),
	}

	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		c.tag.DisableColor()
		c.err.DisableColor()
	}

	return c
}

// Write implements the io.Writer interface. The logger always writes a single
// entry with each call.
func (c Colorizer) Write(p []byte) (n int, err error) {
	tag, detail, found := bytes.Cut(p, []byte(": "))
	if !found {
		return c.out.Write(p)
	}

	pen := c.tag
	if bytes.Contains(tag, []byte("error")) {
		pen = c.err
	}

	_, err = pen.Fprint(c.out, string(tag))
	if err != nil {
		return 0, err
	}

	_, err = c.out.Write(append([]byte(": "), detail...))
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
