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

// Package mix combines the output of the five APU channels into a single
// sample.
//
// The mix is the linear approximation of the APU's non-linear mixing circuit
// described on the nesdev wiki:
//
//	https://www.nesdev.org/wiki/APU_Mixer
//
// The output of Mono() is in the range 0.0 to Max. The output of the console
// is AC coupled and the HighPass type models that, producing values centred
// on zero.
package mix

import "math"

// Weighting of each channel.
const (
	pulseWeight    = 0.00752
	triangleWeight = 0.00851
	noiseWeight    = 0.00494
	dmcWeight      = 0.00335
)

// Max is the largest value that Mono() can return.
const Max = pulseWeight*30 + triangleWeight*15 + noiseWeight*15 + dmcWeight*127

// Mono returns a single volume value for the five channel outputs. Pulse,
// triangle and noise values are in the range 0 to 15 and the DMC value is in
// the range 0 to 127.
func Mono(pulse1 uint8, pulse2 uint8, triangle uint8, noise uint8, dmc uint8) float32 {
	return pulseWeight*float32(pulse1+pulse2) +
		triangleWeight*float32(triangle) +
		noiseWeight*float32(noise) +
		dmcWeight*float32(dmc)
}

// Cutoff frequency of the first high-pass filter in the NES audio output.
const Cutoff = 90.0

// HighPass is a first-order high-pass filter. The zero value is not usable.
type HighPass struct {
	alpha   float32
	prevIn  float32
	prevOut float32
}

// NewHighPass returns a filter for the specified sample rate and cutoff
// frequency.
func NewHighPass(sampleRate int, cutoff float64) HighPass {
	rc := 1.0 / (2 * math.Pi * cutoff)
	dt := 1.0 / float64(sampleRate)
	return HighPass{
		alpha: float32(rc / (rc + dt)),
	}
}

// Filter a value returned by Mono(). The result is in the range -1.0 to 1.0.
func (f *HighPass) Filter(v float32) float32 {
	v /= Max
	f.prevOut = f.alpha * (f.prevOut + v - f.prevIn)
	f.prevIn = v
	return max(-1, min(1, f.prevOut))
}
