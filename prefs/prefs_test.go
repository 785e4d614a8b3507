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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")

	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Float
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("real", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectFailure(t, v.Set("bar"))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, w.Set("0.5"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nreal :: 0.500\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	// loading a file that doesn't exist
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// save on first use creates the file
	test.ExpectSuccess(t, v.Set(99))
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "number :: 99\n")

	// a second disk with a different key preserves the first key
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("flag", &w))
	test.ExpectSuccess(t, w.Set(true))
	test.DemandSuccess(t, dsk2.Save())
	cmpPrefFile(t, fn, "flag :: true\nnumber :: 99\n")

	// loading restores a changed value
	test.ExpectSuccess(t, v.Set(1))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 99)

	// duplicate keys are not allowed
	test.ExpectFailure(t, dsk.Add("number", &v))
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidPrefsFile))
}

func TestReset(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, v.Set(5))
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 3)
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var live bool

	v.SetHookPost(func(nv prefs.Value) error {
		live = nv.(bool)
		return nil
	})
	v.SetHookPre(func(nv prefs.Value) error {
		if live == nv.(bool) {
			return fmt.Errorf("no change")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, live)
	test.ExpectFailure(t, v.Set(true))
}
