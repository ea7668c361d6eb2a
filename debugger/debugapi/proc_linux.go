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

//go:build linux && amd64

package debugapi

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pptsync/pptsync/curated"
)

// the root of the proc filesystem. changed by tests
var procRoot = "/proc"

// exeName returns the base name of the executable from the contents of a
// cmdline file. under Wine, argv[0] is a Windows path and so both forward and
// backward slashes are treated as separators.
func exeName(cmdline []byte) string {
	argv0, _, _ := bytes.Cut(cmdline, []byte{0})
	s := string(argv0)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// FindProcess returns the ID of the process with the named executable. The
// comparison is case insensitive.
func FindProcess(name string) (int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return 0, curated.Errorf(OSError, "ReadDir", err)
	}

	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil || !e.IsDir() {
			continue // for loop
		}

		cmdline, err := os.ReadFile(filepath.Join(procRoot, e.Name(), "cmdline"))
		if err != nil {
			continue // for loop
		}

		if strings.EqualFold(exeName(cmdline), name) {
			return pid, nil
		}
	}

	return 0, curated.Errorf(ProcessNotFound, name)
}

// threadIDs lists the threads of a process.
func threadIDs(pid int) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(procRoot, strconv.Itoa(pid), "task"))
	if err != nil {
		return nil, curated.Errorf(OSError, "ReadDir", err)
	}

	tids := make([]int, 0, len(entries))
	for _, e := range entries {
		tid, err := strconv.Atoi(e.Name())
		if err == nil {
			tids = append(tids, tid)
		}
	}
	return tids, nil
}
