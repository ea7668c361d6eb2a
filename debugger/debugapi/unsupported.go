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

//go:build !(windows && amd64) && !(linux && amd64)

package debugapi

import (
	"runtime"

	"github.com/pptsync/pptsync/curated"
)

// FindProcess returns the ID of the process with the named executable.
func FindProcess(name string) (int, error) {
	return 0, curated.Errorf(Unsupported, runtime.GOOS, runtime.GOARCH)
}

// Attach to the process as a debugger. The first event is returned with the
// Process.
func Attach(pid int) (Process, Event, error) {
	return nil, Event{}, curated.Errorf(Unsupported, runtime.GOOS, runtime.GOARCH)
}
