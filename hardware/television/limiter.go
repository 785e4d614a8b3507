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


package television

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// RefreshRate is the number of frames per second produced by an NTSC NES.
const RefreshRate float32 = 60.0988

// if the emulation falls further behind than this the schedule is abandoned
// and restarted from the current time
const maxLag = 100 * time.Millisecond

// the actual frame rate is calculated over this period
const measurePeriod = time.Second

// FpsLimiter paces frames to the requested rate and measures the rate that
// is achieved. Frames are scheduled against a deadline that advances by one
// frame period each frame, so short delays are caught up.
type FpsLimiter struct {
	// whether to wait for the deadline each frame
	active atomic.Bool

	// float32 values stored as bits
	requested atomic.Uint32
	actual    atomic.Uint32

	crit     sync.Mutex
	period   time.Duration
	deadline time.Time

	measureFrames int
	measureStart  time.Time
}

func newFpsLimiter() *FpsLimiter {
	lmtr := &FpsLimiter{}
	lmtr.measureStart = time.Now()
	lmtr.SetRate(RefreshRate)
	return lmtr
}

// SetRate changes the requested frame rate. A value of zero or less selects
// RefreshRate.
func (lmtr *FpsLimiter) SetRate(fps float32) {
	if fps <= 0.0 {
		fps = RefreshRate
	}
	lmtr.requested.Store(math.Float32bits(fps))

	lmtr.crit.Lock()
	defer lmtr.crit.Unlock()
	lmtr.period = time.Duration(float64(time.Second) / float64(fps))
	lmtr.deadline = time.Time{}
	lmtr.measureFrames = 0
	lmtr.measureStart = time.Now()
}

// Requested returns the requested frame rate.
func (lmtr *FpsLimiter) Requested() float32 {
	return math.Float32frombits(lmtr.requested.Load())
}

// Actual returns the measured frame rate. The value is updated about once a
// second.
func (lmtr *FpsLimiter) Actual() float32 {
	return math.Float32frombits(lmtr.actual.Load())
}

// frame should be called once per frame. It blocks until the frame's deadline
// if the limiter is active.
func (lmtr *FpsLimiter) frame() {
	lmtr.crit.Lock()
	defer lmtr.crit.Unlock()

	now := time.Now()

	lmtr.measureFrames++
	if d := now.Sub(lmtr.measureStart); d >= measurePeriod {
		lmtr.actual.Store(math.Float32bits(float32(float64(lmtr.measureFrames) / d.Seconds())))
		lmtr.measureFrames = 0
		lmtr.measureStart = now
	}

	if !lmtr.active.Load() {
		lmtr.deadline = time.Time{}
		return
	}

	if lmtr.deadline.IsZero() || now.Sub(lmtr.deadline) > maxLag {
		lmtr.deadline = now
	}
	lmtr.deadline = lmtr.deadline.Add(lmtr.period)

	if wait := lmtr.deadline.Sub(now); wait > 0 {
		time.Sleep(wait)
	}
}
