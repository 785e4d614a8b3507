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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/resources"
)

// Preferences for the SDL frontend.
type Preferences struct {
	dsk *prefs.Disk

	// integer scaling of the window
	Scale prefs.Int

	// synchronise buffer swaps with the vertical retrace of the monitor
	VSync prefs.Bool
}

const (
	defaultScale = 3
	maxScale     = 8
)

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// clamp scale to a sensible value whenever it changes
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s, ok := v.(int); ok && (s < 1 || s > maxScale) {
			return curated.Errorf("sdlplay: scale must be between 1 and %d", maxScale)
		}
		return nil
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = p.dsk.Add("sdlplay.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = p.dsk.Add("sdlplay.vsync", &p.VSync)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(defaultScale)
	p.VSync.Set(true)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
