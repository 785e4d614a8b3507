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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func TestCommandLineStack(t *testing.T) {
	// empty stack
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "bar")

	// value is removed once it has been used
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	// popped string contains unused entries only
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// malformed entries are ignored
	prefs.PushCommandLineStack("foo:bar; ;baz::qux;")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	// save a value to disk
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, v.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("scale::4")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("scale", &w))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w.Get().(int), 4)

	// saving does not write the command line value
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "scale :: 2\n")
}
