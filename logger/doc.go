// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the emulator. Entries are made with
// Log() and Logf() and are tagged with a short identifier, usually the name of
// the package making the entry.
//
// Every entry is made with a Permission. The Allow permission always results
// in an entry but other implementations can prohibit logging depending on the
// state of the caller. For example, the CPU will not log when it is executing
// speculatively for the instruction trace.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The number of entries in the log is capped and the oldest
// entries are discarded first.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho().
package logger
