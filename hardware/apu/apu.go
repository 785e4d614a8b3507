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

package apu

import (
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/apu/mix"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
)

// ClockRate is the frequency of the NTSC CPU clock. The APU is stepped at the
// same rate.
const ClockRate = 1789773

// number of batches of samples sent to the mixer every second
const batchesPerSecond = 60

// Mixer receives batches of samples from the APU. The samples are mono and in
// the range -1.0 to 1.0. The slice is only valid for the duration of the call.
//
// The television.Television type implements this interface and forwards the
// samples to any registered television.AudioMixer.
type Mixer interface {
	SetAudio(samples []float32) error
}

// APU is the implementation of the 2A03 audio processing unit.
type APU struct {
	prefs *preferences.Preferences
	mem   cpubus.Memory
	mixer Mixer

	Pulse1   pulse
	Pulse2   pulse
	Triangle triangle
	Noise    noise
	DMC      dmc

	frameCounter frameCounter

	// number of CPU cycles since reset. the pulse and noise timers and the
	// frame counter are clocked on even cycles
	cycles uint64

	// host sample generation
	sampleRate      int
	cyclesPerSample float64
	sampleCt        float64
	filter          mix.HighPass
	samples         []float32
}

// NewAPU is the preferred method of initialisation for the APU type. The mixer
// argument can be nil.
func NewAPU(prefs *preferences.Preferences, mixer Mixer) *APU {
	au := &APU{
		prefs: prefs,
		mixer: mixer,
	}
	au.Reset()
	return au
}

// Plumb the memory used by the DMC to fetch sample data.
func (au *APU) Plumb(mem cpubus.Memory) {
	au.mem = mem
}

// Snapshot creates a copy of the APU in its current state. The copy has no
// memory or mixer attached.
func (au *APU) Snapshot() *APU {
	n := *au
	n.mem = nil
	n.mixer = nil
	n.samples = make([]float32, len(au.samples), cap(au.samples))
	copy(n.samples, au.samples)
	return &n
}

func (au *APU) String() string {
	s := strings.Builder{}
	s.WriteString("p1: ")
	s.WriteString(au.Pulse1.String())
	s.WriteString("\np2: ")
	s.WriteString(au.Pulse2.String())
	s.WriteString("\ntr: ")
	s.WriteString(au.Triangle.String())
	s.WriteString("\nns: ")
	s.WriteString(au.Noise.String())
	s.WriteString("\ndmc: ")
	s.WriteString(au.DMC.String())
	return s.String()
}

// Reset silences all channels and restarts the frame counter. The sample rate
// preference is read again.
func (au *APU) Reset() {
	au.Pulse1 = pulse{onesComplement: true}
	au.Pulse2 = pulse{}
	au.Triangle = triangle{}
	au.Noise.reset()
	au.DMC.reset()
	au.frameCounter = frameCounter{}
	au.cycles = 0

	au.sampleRate = au.prefs.SampleRate.Get().(int)
	if au.sampleRate <= 0 {
		logger.Logf(logger.Allow, "apu", "invalid sample rate (%d). using 44100", au.sampleRate)
		au.sampleRate = 44100
	}
	au.cyclesPerSample = float64(ClockRate) / float64(au.sampleRate)
	au.sampleCt = 0
	au.filter = mix.NewHighPass(au.sampleRate, mix.Cutoff)
	au.samples = make([]float32, 0, au.sampleRate/batchesPerSecond)
}

// SampleRate returns the rate at which samples are sent to the mixer.
func (au *APU) SampleRate() int {
	return au.sampleRate
}

// IRQ returns the state of the APU's interrupt line. Both the frame counter
// and the DMC can raise the line.
func (au *APU) IRQ() bool {
	return au.frameCounter.irq || au.DMC.irq
}

// WriteRegister implements the memory.AudioHandler interface.
func (au *APU) WriteRegister(address uint16, data uint8) {
	switch {
	case address >= 0x4000 && address <= 0x4003:
		au.Pulse1.write(address&0x03, data)
	case address >= 0x4004 && address <= 0x4007:
		au.Pulse2.write(address&0x03, data)
	case address >= 0x4008 && address <= 0x400b:
		au.Triangle.write(address&0x03, data)
	case address >= 0x400c && address <= 0x400f:
		au.Noise.write(address&0x03, data)
	case address >= 0x4010 && address <= 0x4013:
		au.DMC.write(address&0x03, data)
	case address == 0x4015:
		au.Pulse1.length.enable(data&0x01 == 0x01)
		au.Pulse2.length.enable(data&0x02 == 0x02)
		au.Triangle.length.enable(data&0x04 == 0x04)
		au.Noise.length.enable(data&0x08 == 0x08)
		au.DMC.enable(data&0x10 == 0x10)
	case address == 0x4017:
		au.clockFrame(au.frameCounter.write(data))
	}
}

// ReadStatus implements the memory.AudioHandler interface. Reading the status
// register clears the frame interrupt flag.
func (au *APU) ReadStatus() uint8 {
	var status uint8
	if au.Pulse1.length.active() {
		status |= 0x01
	}
	if au.Pulse2.length.active() {
		status |= 0x02
	}
	if au.Triangle.length.active() {
		status |= 0x04
	}
	if au.Noise.length.active() {
		status |= 0x08
	}
	if au.DMC.remaining > 0 {
		status |= 0x10
	}
	if au.frameCounter.irq {
		status |= 0x40
	}
	if au.DMC.irq {
		status |= 0x80
	}
	au.frameCounter.irq = false
	return status
}

func (au *APU) clockFrame(clk frameClock) {
	if clk.quarter {
		au.Pulse1.envelope.clock()
		au.Pulse2.envelope.clock()
		au.Triangle.clockLinear()
		au.Noise.envelope.clock()
	}
	if clk.half {
		au.Pulse1.length.clock(au.Pulse1.envelope.loop)
		au.Pulse1.clockSweep()
		au.Pulse2.length.clock(au.Pulse2.envelope.loop)
		au.Pulse2.clockSweep()
		au.Triangle.length.clock(au.Triangle.control)
		au.Noise.length.clock(au.Noise.envelope.loop)
	}
}

// Step the APU by one CPU cycle.
func (au *APU) Step() error {
	au.cycles++

	au.Triangle.clockTimer()
	if err := au.DMC.clockTimer(au.mem); err != nil {
		return curated.Errorf("apu: dmc: %v", err)
	}

	if au.cycles&0x01 == 0x00 {
		au.Pulse1.clockTimer()
		au.Pulse2.clockTimer()
		au.Noise.clockTimer()
		au.clockFrame(au.frameCounter.step())
	}

	au.sampleCt++
	if au.sampleCt >= au.cyclesPerSample {
		au.sampleCt -= au.cyclesPerSample
		return au.sample()
	}

	return nil
}

// Volume returns the current output of the mixed channels, before filtering.
func (au *APU) Volume() float32 {
	return mix.Mono(au.Pulse1.output(), au.Pulse2.output(), au.Triangle.output(), au.Noise.output(), au.DMC.output())
}

func (au *APU) sample() error {
	au.samples = append(au.samples, au.filter.Filter(au.Volume()))
	if len(au.samples) < cap(au.samples) {
		return nil
	}
	return au.Flush()
}

// Flush sends any pending samples to the mixer.
func (au *APU) Flush() error {
	if len(au.samples) == 0 {
		return nil
	}
	defer func() {
		au.samples = au.samples[:0]
	}()
	if au.mixer == nil {
		return nil
	}
	if err := au.mixer.SetAudio(au.samples); err != nil {
		return curated.Errorf("apu: %v", err)
	}
	return nil
}
