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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// separator between key and value in the preferences file.
const keySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile      = "prefs: no prefs file (%s)"
	InvalidPrefsFile = "prefs: not a valid prefs file (%s)"
	DuplicateKey     = "prefs: duplicate key (%s)"
)

// entry in a Disk.
type entry struct {
	p pref

	// the value of the preference when it was added to the Disk
	dflt string
}

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]entry

	// keys that were overridden on the command line. the value is the value
	// from disk, if there is one, and is what will be written on Save()
	overrides map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]entry),
		overrides: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()
	var s strings.Builder
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(dsk.entries[k].p.String())
		s.WriteString("\n")
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from disk. The current
// value of the preference becomes its default value for the purposes of
// Reset(). A matching command line preference is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = entry{p: p, dflt: p.String()}

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = ""
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// DoesNotHaveEntry returns true if the key has not been added to the Disk.
func (dsk *Disk) DoesNotHaveEntry(key string) bool {
	_, ok := dsk.entries[key]
	return !ok
}

// Reset all preferences to the value they had when they were added.
func (dsk *Disk) Reset() error {
	for k, e := range dsk.entries {
		if err := e.p.Set(e.dflt); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the key/value pairs from the file. the returned map is empty if the
// file does not exist
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return values, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return values, curated.Errorf(InvalidPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		values[k] = v
	}
	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("prefs: %w", err)
	}

	return values, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, e := range dsk.entries {
		if v, ok := dsk.overrides[k]; ok {
			if v != "" {
				values[k] = v
			}
			continue
		}
		values[k] = e.p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the file
// does not exist then the current values are saved to create it.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFirstUse {
			return dsk.Save()
		}
		return err
	}

	for k, e := range dsk.entries {
		v, ok := values[k]
		if !ok {
			continue
		}
		if _, ok := dsk.overrides[k]; ok {
			dsk.overrides[k] = v
			continue
		}
		if err := e.p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}
