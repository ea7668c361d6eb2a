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

// Package debugapi is a thin layer over the debugging facilities of the
// operating system. It provides just enough to attach to a running process,
// receive debug events, read and write process memory and read and write the
// registers of a stopped thread.
//
// On Windows the Win32 debugging API is used. On Linux, where the target is
// expected to be running under Wine, ptrace is used. Other platforms are not
// supported and Attach() will return an error.
//
// Debug events are delivered to the thread that attached to the process. On
// Linux, all ptrace requests must also come from that thread. Callers should
// lock the calling goroutine to its OS thread with runtime.LockOSThread()
// before calling Attach() and use the Process from that goroutine only.
package debugapi
