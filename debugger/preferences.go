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
	"github.com/pptsync/pptsync/prefs"
)

// default values for the target.
const (
	DefaultProcess     = "puyopuyotetris.exe"
	DefaultAddress     = 0x1413c7d9a
	DefaultSeedAddress = 0x14003f87f
)

// Preferences for the debug session.
type Preferences struct {
	dsk *prefs.Disk

	// executable name of the target process
	Process prefs.String

	// address of the instruction at which the target is paused every tick
	Address prefs.Uint64

	// address of the instruction at which the target expects a new seed in
	// the RAX register
	SeedAddress prefs.Uint64
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is loaded immediately.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Process.Set(DefaultProcess)
	p.Address.Set(uint64(DefaultAddress))
	p.SeedAddress.Set(uint64(DefaultSeedAddress))

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("debugger.process", &p.Process)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("debugger.address", &p.Address)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("debugger.seedaddress", &p.SeedAddress)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load debugger preferences.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current debugger preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
