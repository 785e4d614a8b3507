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


package sdlplay

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the SDL audio buffer. the precise value is
// not critical.
const bufferLength = 1024

// if the amount of queued audio grows beyond this many bytes then incoming
// samples are dropped until the queue drains. this happens when the emulation
// is running faster than real time
const maxQueued = bufferLength * 4 * 4

// Audio outputs sound using SDL. It implements the television.AudioMixer
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []byte

	dropped int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "audio: %dHz, buffer of %d samples", aud.spec.Freq, aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		aud.dropped += len(samples)
		return nil
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.NativeEndian.AppendUint32(aud.buffer, math.Float32bits(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlplay: audio: %v", err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	if aud.dropped > 0 {
		logger.Logf(logger.Allow, "sdlplay", "audio: %d samples dropped", aud.dropped)
	}
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
