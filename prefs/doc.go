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

// Package prefs facilitates the storage of preferential values. Preference
// values are typed (Bool, Int, Float, String) and are safe to read from any
// goroutine.
//
// Values are associated with a key and added to a Disk instance, which saves
// and loads the values to and from a file. Many Disk instances can share the
// same file. Saving one Disk preserves the entries in the file that belong to
// other Disk instances.
//
// Each value can have a pre and a post hook, which are called whenever the
// value is set. The hooks are useful for updating "live" copies of the value
// that are used in performance critical code.
//
// Values can be overridden from the command line with a string of the form:
//
//	"key::value; key::value"
//
// The string is pushed onto a stack with PushCommandLineStack(). Any key
// matching a value added to a Disk will take the command line value rather
// than the stored value. Command line values are never saved to disk.
package prefs
