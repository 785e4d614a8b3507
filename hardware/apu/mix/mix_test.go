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

package mix_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/apu/mix"
	"github.com/jetsetilly/gophernes/test"
)

func TestMono(t *testing.T) {
	test.ExpectEquality(t, mix.Mono(0, 0, 0, 0, 0), float32(0))
	test.ExpectApproximate(t, mix.Mono(15, 15, 15, 15, 127), float32(mix.Max), 0.0001)
	test.ExpectApproximate(t, mix.Mono(1, 0, 0, 0, 0), float32(0.00752), 0.00001)
	test.ExpectApproximate(t, mix.Mono(0, 0, 1, 1, 1), float32(0.00851+0.00494+0.00335), 0.00001)
}

func TestHighPass(t *testing.T) {
	f := mix.NewHighPass(44100, mix.Cutoff)

	// a step input jumps and then decays back towards zero
	v := f.Filter(float32(mix.Max))
	test.ExpectApproximate(t, v, float32(1), 0.05)
	for range 44100 {
		v = f.Filter(float32(mix.Max))
	}
	test.ExpectApproximate(t, v, float32(0), 0.001)

	// silence stays silent
	g := mix.NewHighPass(44100, mix.Cutoff)
	for range 100 {
		test.ExpectEquality(t, g.Filter(0), float32(0))
	}
}
