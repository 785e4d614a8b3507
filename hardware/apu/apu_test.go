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

package apu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

type mockMixer struct {
	batches []int
	samples []float32
}

func (mx *mockMixer) SetAudio(samples []float32) error {
	mx.batches = append(mx.batches, len(samples))
	mx.samples = append(mx.samples, samples...)
	return nil
}

func (mx *mockMixer) EndMixing() error {
	return nil
}

func steps(t *testing.T, au *apu.APU, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, au.Step())
	}
}

func TestFrameIRQ(t *testing.T) {
	au := apu.NewAPU(preferences.NewDefaultPreferences(), nil)

	// the frame counter is clocked every other CPU cycle and the IRQ is
	// raised on the 14915th clock
	steps(t, au, 29829)
	test.ExpectFailure(t, au.IRQ())
	steps(t, au, 1)
	test.ExpectSuccess(t, au.IRQ())

	// reading status clears the flag
	test.ExpectEquality(t, au.ReadStatus()&0x40, uint8(0x40))
	test.ExpectFailure(t, au.IRQ())
	test.ExpectEquality(t, au.ReadStatus()&0x40, uint8(0x00))
}

func TestFrameIRQInhibit(t *testing.T) {
	au := apu.NewAPU(preferences.NewDefaultPreferences(), nil)

	au.WriteRegister(0x4017, 0x40)
	steps(t, au, 60000)
	test.ExpectFailure(t, au.IRQ())

	// five step mode never raises the IRQ
	au.WriteRegister(0x4017, 0x80)
	steps(t, au, 80000)
	test.ExpectFailure(t, au.IRQ())

	// setting the inhibit flag clears a pending IRQ
	au.WriteRegister(0x4017, 0x00)
	steps(t, au, 29830)
	test.ExpectSuccess(t, au.IRQ())
	au.WriteRegister(0x4017, 0x40)
	test.ExpectFailure(t, au.IRQ())
}

func TestLengthCounter(t *testing.T) {
	au := apu.NewAPU(preferences.NewDefaultPreferences(), nil)

	// writing length while the channel is disabled has no effect
	au.WriteRegister(0x4003, 0x18)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x00))

	// length index 3 is a count of two half frames
	au.WriteRegister(0x4015, 0x01)
	au.WriteRegister(0x4000, 0x00)
	au.WriteRegister(0x4003, 0x18)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x01))

	// first half frame
	steps(t, au, 14914)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x01))

	// second half frame
	steps(t, au, 14916)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x00))

	// halted length counter does not count down
	au.WriteRegister(0x4000, 0x20)
	au.WriteRegister(0x4003, 0x18)
	steps(t, au, 29830)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x01))

	// disabling the channel clears the counter
	au.WriteRegister(0x4015, 0x00)
	test.ExpectEquality(t, au.ReadStatus()&0x01, uint8(0x00))
}

func TestSamples(t *testing.T) {
	prefs := preferences.NewDefaultPreferences()
	mx := &mockMixer{}
	au := apu.NewAPU(prefs, mx)
	test.ExpectEquality(t, au.SampleRate(), 44100)

	// one second of emulation
	steps(t, au, apu.ClockRate)
	test.DemandSuccess(t, au.Flush())

	n := len(mx.samples)
	test.ExpectSuccess(t, n >= 44099 && n <= 44100, n)
	for _, b := range mx.batches[:len(mx.batches)-1] {
		test.ExpectEquality(t, b, 735)
	}

	// all channels were silent
	for _, s := range mx.samples {
		if !test.ExpectEquality(t, s, float32(0)) {
			break
		}
	}

	// a change of sample rate is noticed on reset
	test.DemandSuccess(t, prefs.SampleRate.Set(22050))
	au.Reset()
	test.ExpectEquality(t, au.SampleRate(), 22050)
}

func TestConstantVolume(t *testing.T) {
	au := apu.NewAPU(preferences.NewDefaultPreferences(), nil)

	// pulse 1 at constant volume 15 with a 50% duty cycle
	au.WriteRegister(0x4015, 0x01)
	au.WriteRegister(0x4000, 0xbf)
	au.WriteRegister(0x4002, 0x00)
	au.WriteRegister(0x4003, 0x09)

	var high, low int
	for range 4096 {
		test.DemandSuccess(t, au.Step())
		if au.Volume() > 0 {
			high++
		} else {
			low++
		}
	}
	test.ExpectSuccess(t, high > 0)
	test.ExpectSuccess(t, low > 0)
	test.ExpectApproximate(t, float64(high)/float64(high+low), 0.5, 0.01)
}
