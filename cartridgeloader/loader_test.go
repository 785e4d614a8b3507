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

package cartridgeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

var testData = []byte("NES\x1a\x01\x01\x00\x00 cartridge data")

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(fn, testData, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.ShortName(), "game")
	test.ExpectFailure(t, cl.HasLoaded())

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(testData))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(testData)))
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(fn, testData, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoaderError))
}

func TestZip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	w := zip.NewWriter(f)
	readme, err := w.Create("README.txt")
	test.DemandSuccess(t, err)
	readme.Write([]byte("not a cartridge"))
	rom, err := w.Create("roms/Game.NES")
	test.DemandSuccess(t, err)
	rom.Write(testData)
	test.DemandSuccess(t, w.Close())
	test.DemandSuccess(t, f.Close())

	cl := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(testData))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.nes" {
			http.NotFound(w, r)
			return
		}
		w.Write(testData)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/game.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(testData))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	test.ExpectFailure(t, cl.Load())
}
