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


package ebitenplay

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/logger"
)

// oto buffer duration. the precise value is not critical
const bufferDuration = 50 * time.Millisecond

// the ring buffer holds this many seconds of audio. samples arriving when the
// ring is full are dropped
const ringSeconds = 0.25

// Audio outputs sound with oto. It implements the television.AudioMixer
// interface and the io.Reader interface required by oto.Player.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player

	crit sync.Mutex
	ring *gui.SampleRing

	// the most recent sample read. repeated on underrun to avoid clicks
	last float32
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferDuration,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("ebitenplay: audio: %v", err)
	}
	<-ready

	aud := &Audio{
		ctx:  ctx,
		ring: gui.NewSampleRing(int(float64(sampleRate) * ringSeconds)),
	}
	aud.player = ctx.NewPlayer(aud)
	aud.player.Play()

	logger.Logf(logger.Allow, "ebitenplay", "audio: %dHz", sampleRate)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.ring.Write(samples)
	return nil
}

// Read implements the io.Reader interface. It is called by oto from its own
// goroutine.
func (aud *Audio) Read(p []byte) (int, error) {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	n := len(p) / 4
	for i := range n {
		if s, ok := aud.ring.Read(); ok {
			aud.last = s
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(aud.last))
	}
	return n * 4, nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	if err := aud.player.Close(); err != nil {
		return curated.Errorf("ebitenplay: audio: %v", err)
	}
	if aud.ring.Dropped() > 0 {
		logger.Logf(logger.Allow, "ebitenplay", "audio: %d samples dropped", aud.ring.Dropped())
	}
	return nil
}
