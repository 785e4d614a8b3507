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


package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]float32{0.0, 1.0, -1.0, 0.5}))
	test.ExpectSuccess(t, aw.SetAudio([]float32{2.0, -2.0}))
	test.ExpectEquality(t, aw.NumSamples(), 6)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(22050))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.ExpectEquality(t, dec.NumChans, uint16(1))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 6)

	// out of range samples are clamped
	expected := []int{0, 32767, -32767, 16384, 32767, -32768}
	for i, v := range expected {
		test.ExpectEquality(t, buf.Data[i], v, i)
	}
}

func TestNoSamples(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "empty.wav"), 44100)
	test.DemandSuccess(t, err)
	err = aw.EndMixing()
	test.ExpectSuccess(t, curated.Is(err, wavwriter.NoSamples))
}

func TestBadRate(t *testing.T) {
	_, err := wavwriter.New("bad.wav", 0)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.BadRate))
}
