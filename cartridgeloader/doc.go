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

// Package cartridgeloader is used to specify and load the data for a
// cartridge. The data is not interpreted in any way and is passed to the
// cartridge package for parsing.
//
// Data can be loaded from a local file or from an HTTP(S) URL. Local zip
// archives are also supported, in which case the first file in the archive
// with a ".nes" extension is loaded.
//
// The SHA1 hash of the data is calculated once loaded. If the Hash field of
// the Loader has been set before loading, the loaded data must match it.
package cartridgeloader
