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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation runs for this long before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tv := television.NewTelevision()
	defer tv.End()

	// set fps cap on television
	tv.SetFPSCap(!uncapped)

	nes, err := hardware.NewNES(tv, preferences.NewDefaultPreferences())
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = nes.AttachCartridge(&cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// get starting frame number (should be 0)
	startFrame := tv.GetFrameNum()

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period is over
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so it is only done
		// every PerformanceBrake instructions
		performanceBrake := 0

		return nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// lead time has concluded so measurement begins now
				startFrame = tv.GetFrameNum()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := tv.GetFrameNum() - startFrame
	fps, accuracy := CalcFPS(tv, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
