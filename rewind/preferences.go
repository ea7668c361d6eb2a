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

package rewind

import (
	"github.com/pptsync/pptsync/curated"
	"github.com/pptsync/pptsync/prefs"
)

// sentinal error returned when the lookahead preference is negative.
const NegativeLookahead = "rewind: lookahead cannot be negative (%d)"

// Preferences for the history engine.
type Preferences struct {
	dsk *prefs.Disk

	// number of predicted pieces in each GameState
	Lookahead prefs.Int

	// the maximum number of entries to store before the earliest entries are
	// forgotten. zero means there is no limit
	MaxEntries prefs.Int

	// name of the discriminant. see Discriminants for the list of valid names
	Discriminant prefs.String
}

// the maximum number of entries to store before the earliest entries are forgotten.
const maxEntries = 1000

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is loaded immediately.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Lookahead.Set(DefaultLookahead)
	p.MaxEntries.Set(maxEntries)
	p.Discriminant.Set(DefaultDiscriminant)

	p.Lookahead.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeLookahead, v.(int))
		}
		return nil
	})
	p.Discriminant.SetHookPre(func(v prefs.Value) error {
		_, err := ParseDiscriminant(v.(string))
		return err
	})

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.lookahead", &p.Lookahead)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.maxentries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.discriminant", &p.Discriminant)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewQueue creates a Queue configured with the current preference values.
func (p *Preferences) NewQueue() (*Queue, error) {
	d, err := ParseDiscriminant(p.Discriminant.Get().(string))
	if err != nil {
		return nil, err
	}
	return NewQueue(d, p.Lookahead.Get().(int), p.MaxEntries.Get().(int)), nil
}

// Load rewind preferences.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
