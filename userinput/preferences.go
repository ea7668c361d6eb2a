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

package userinput

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pptsync/pptsync/prefs"
)

// Preferences for user input.
type Preferences struct {
	dsk *prefs.Disk

	// name of the key that requests an undo
	UndoKey prefs.String
}

// ValidKey returns true if the name is a key that can be used by Controls.
// Single letters and digits are valid as are the names in the KeyNames list.
func ValidKey(name string) bool {
	if len(name) == 1 {
		c := strings.ToUpper(name)[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	return slices.ContainsFunc(KeyNames, func(k string) bool {
		return strings.EqualFold(k, name)
	})
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is loaded immediately.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.UndoKey.Set(DefaultUndoKey)
	p.UndoKey.SetHookPre(func(v prefs.Value) error {
		if !ValidKey(v.(string)) {
			return fmt.Errorf("userinput: unknown key: %s", v)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("userinput.undokey", &p.UndoKey)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load user input preferences.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current user input preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
