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

// Package notifications carries messages from the synchroniser to the state
// history engine and back again.
//
// Notices travel through a Queue which is unbounded so that the synchroniser
// is never held up by a slow consumer. Notices are delivered in the order in
// which they were sent; this is important because each observed state is
// reconciled against the state observed immediately before it.
//
// In the opposite direction, a Restore is sent from the history engine to the
// synchroniser when an undo has been performed. The Restore is applied the
// next time the target is paused at the breakpoint.
package notifications
