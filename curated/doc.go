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

// Package curated wraps the Go error type so that errors can be identified by
// the pattern that created them rather than by the text they produce.
//
// Curated errors are created with Errorf(). The first argument is a pattern,
// in the same style as fmt.Errorf(), and the remaining arguments are the
// values for the pattern's placeholders. Packages export the patterns they
// use as constants:
//
//	const ROMFormat = "cartridge: rom format: %v"
//
//	err := curated.Errorf(ROMFormat, "bad magic")
//	if curated.Is(err, ROMFormat) {
//		...
//	}
//
// Has() searches the entire chain of curated errors for a pattern:
//
//	f := curated.Errorf("nes: %v", err)
//	curated.Has(f, ROMFormat) // true
//	curated.Is(f, ROMFormat) // false
//
// IsAny() reports whether an error was created by Errorf() at all. A curated
// error can be thought of as an expected error and an uncurated error as an
// unexpected one.
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain are removed. Wrapping an error with the same leading tag
// as the error being wrapped, does not produce "cartridge: cartridge: ..."
// messages.
//
// Curated errors work with the errors package of the standard library. The
// first error value given to Errorf() is returned by Unwrap().
package curated
