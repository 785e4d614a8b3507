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

// Package cpubus defines the view of memory from the CPU's side of the bus.
// The Memory interface is implemented by the system bus and by the mock
// memories used in the CPU tests.
//
// The package also names the addresses of the interrupt vectors and the
// memory mapped registers. The register names are used when tracing and
// inspecting the emulation.
package cpubus
