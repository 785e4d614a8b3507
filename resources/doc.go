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

// Package resources prepares paths to the files the emulator keeps between
// sessions: the preferences file, screenshots and audio recordings.
//
// JoinPath() prepends the base resource path to the supplied path and creates
// any directories needed to reach the final path element. It does not create
// the file itself.
//
// The base path is ".gophernes" in the current working directory if that
// directory exists. This is the portable arrangement, useful during
// development or when running from removable media. Otherwise the base path
// is in the user's configuration directory, as returned by os.UserConfigDir().
// On Linux this is something like:
//
//	/home/user/.config/gophernes/
package resources
