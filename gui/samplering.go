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


package gui

// SampleRing is a fixed size FIFO of audio samples for frontends where the
// audio device pulls samples rather than having them pushed. It is not safe
// for concurrent use.
type SampleRing struct {
	data  []float32
	start int
	len   int

	dropped int
}

// NewSampleRing is the preferred method of initialisation for the SampleRing
// type.
func NewSampleRing(size int) *SampleRing {
	return &SampleRing{data: make([]float32, max(size, 1))}
}

// Write samples to the ring. Samples that do not fit are dropped.
func (r *SampleRing) Write(samples []float32) {
	for _, s := range samples {
		if r.len == len(r.data) {
			r.dropped++
			continue
		}
		r.data[(r.start+r.len)%len(r.data)] = s
		r.len++
	}
}

// Read the oldest sample. The boolean is false if the ring is empty.
func (r *SampleRing) Read() (float32, bool) {
	if r.len == 0 {
		return 0, false
	}
	s := r.data[r.start]
	r.start = (r.start + 1) % len(r.data)
	r.len--
	return s, true
}

// Len returns the number of samples waiting to be read.
func (r *SampleRing) Len() int {
	return r.len
}

// Dropped returns the number of samples dropped because the ring was full.
func (r *SampleRing) Dropped() int {
	return r.dropped
}
