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

// Phase indicates the current phase of a Session.
type Phase int

// List of valid Phase values.
//
// Idle is the phase between ticks. Observe is the phase during which the
// caller of Tick() has control. Exited is terminal.
const (
	Idle Phase = iota
	Arm
	Wait
	Dispatch
	Disarm
	Observe
	Step
	Exited
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Arm:
		return "Arm"
	case Wait:
		return "Wait"
	case Dispatch:
		return "Dispatch"
	case Disarm:
		return "Disarm"
	case Observe:
		return "Observe"
	case Step:
		return "Step"
	case Exited:
		return "Exited"
	}

	return ""
}
