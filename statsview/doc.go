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


// Package statsview offers a HTTP server running locally with runtime
// statistics of the emulator. The server is only compiled in when the
// statsview build tag is present:
//
//	go build -tags statsview .
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12700/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12700/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
