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

package rewind_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pptsync/pptsync/prefs"
	"github.com/pptsync/pptsync/rewind"
	"github.com/pptsync/pptsync/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := rewind.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Lookahead.Get().(int), rewind.DefaultLookahead)
	test.ExpectEquality(t, p.Discriminant.String(), rewind.DefaultDiscriminant)

	// the discriminant must be one of the known names
	test.ExpectFailure(t, p.Discriminant.Set("bogus"))
	test.ExpectEquality(t, p.Discriminant.String(), rewind.DefaultDiscriminant)

	test.ExpectSuccess(t, p.Discriminant.Set("active"))
	test.ExpectSuccess(t, p.Lookahead.Set(6))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	// values saved to disk are loaded by a new instance
	p, err = rewind.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Discriminant.String(), "active")
	test.ExpectEquality(t, p.Lookahead.Get().(int), 6)

	q, err := p.NewQueue()
	test.DemandSuccess(t, err)
	q.PushNewGame(42)
	last, _ := q.Last()
	test.ExpectEquality(t, len(last.Lookahead), 6)
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("rewind.lookahead::3")
	defer prefs.PopCommandLineStack()

	p, err := rewind.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Lookahead.Get().(int), 3)
}

func TestPreferencesNegativeLookahead(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := rewind.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Lookahead.Set(-3))
	test.ExpectFailure(t, p.Lookahead.Set("-1"))
	test.ExpectEquality(t, p.Lookahead.Get().(int), rewind.DefaultLookahead)

	// zero is allowed
	test.ExpectSuccess(t, p.Lookahead.Set(0))

	// a negative value on the command line is refused when the file is loaded
	prefs.PushCommandLineStack("rewind.lookahead::-3")
	defer prefs.PopCommandLineStack()

	_, err = rewind.NewPreferences(pth)
	test.ExpectFailure(t, err)
}

func TestQueueNegativeLookahead(t *testing.T) {
	q := rewind.NewQueue(nil, -3, 0)
	q.PushNewGame(42)
	last, ok := q.Last()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(last.Lookahead), 0)
}
