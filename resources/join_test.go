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

package resources_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/gophernes/resources"
	"github.com/jetsetilly/gophernes/test"
)

func TestPortablePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gophernes", 0o700))

	pth, err := resources.JoinPath("screenshots", "foo.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophernes", "screenshots", "foo.png"))

	// intermediate directories are created but the file is not
	fi, err := os.Stat(filepath.Join(".gophernes", "screenshots"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth, err = resources.JoinPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophernes", "screenshots", "foo.png"))
}

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("screenshot", "super game", "png")
	test.ExpectSuccess(t, regexp.MustCompile(`^screenshot_super_game_\d{8}_\d{6}\.png$`).MatchString(fn), fn)

	fn = resources.UniqueFilename("audio", "", ".wav")
	test.ExpectSuccess(t, regexp.MustCompile(`^audio_\d{8}_\d{6}\.wav$`).MatchString(fn), fn)
}
