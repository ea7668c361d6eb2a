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

// Package rewind keeps the history of observed game states and the predicted
// sequence of pieces for each of them.
//
// Every entry in the history is a GameState: the observed state of the target
// together with a piece Generator that is synchronised with the target's own
// randomiser and a window of predicted pieces (the lookahead).
//
// The history is updated with the Queue.UpdateBy() function whenever a new
// state is observed. When a Discriminant indicates that a piece has been
// consumed by the target, the lookahead of the new entry is advanced by one
// piece. A Queue can be wound back with Undo(). The entry returned by Undo()
// should be written back into the target.
//
// Queue is not safe for concurrent use. The Tracker type wraps a Queue with a
// mutex and the Engine type drives a Tracker from the notifications sent by
// the synchroniser.
package rewind
