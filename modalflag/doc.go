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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, with each mode having its own set of flags.
//
// Arguments are given with NewArgs() and then processed with Parse(). Flags
// must be added between the two calls:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PERFORMANCE")
//	verbose := md.AddBool("log", false, "echo log to stdout")
//	p, err := md.Parse()
//
// After Parse() the first argument that is not a flag is compared (case
// insensitively) with the list of sub-modes. If it matches, Mode() will
// return that mode and the argument is consumed. If it does not match then the
// default mode, the first in the list, is selected and the argument remains.
//
// A mode is then parsed by calling NewMode(), adding the flags for the mode
// and calling Parse() again. Modes can be nested to any depth and Path()
// returns the route taken, for example "PLAY/SDL".
//
// A help flag (-help or -h) is handled automatically. Help is printed to the
// Output writer and Parse() returns ParseHelp.
package modalflag
