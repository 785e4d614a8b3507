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

package cartridgeloader

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinel error patterns.
const (
	LoaderError     = "cartridgeloader: %v"
	UnexpectedHash  = "cartridgeloader: unexpected hash value (%s)"
	NoFileInArchive = "cartridgeloader: no cartridge file in archive (%s)"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES", ".ZIP"}

// timeout for HTTP requests
const httpTimeout = 10 * time.Second

// Loader specifies the cartridge to load.
type Loader struct {
	// filename or URL of the cartridge to load
	Filename string

	// expected SHA1 hash of the loaded data. the empty string indicates that
	// the hash is unknown and need not be validated. after a successful load
	// the value will be the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename, suitable for
// window titles and file names.
func (cl Loader) ShortName() string {
	n := filepath.Base(cl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. The scheme of the filename decides how the data is
// loaded. Supported schemes are http, https and file. A filename with no scheme
// is a local file.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && len(u.Scheme) > 1 {
		// single letter schemes are drive letters on windows
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		cl.Data, err = loadHTTP(cl.Filename)
	case "file":
		fn := strings.TrimPrefix(cl.Filename, "file://")
		if strings.EqualFold(filepath.Ext(fn), ".zip") {
			cl.Data, err = loadZip(fn)
		} else {
			cl.Data, err = os.ReadFile(fn)
		}
	default:
		err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}

	if err != nil {
		cl.Data = nil
		return curated.Errorf(LoaderError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}
	cl.Hash = hash

	return nil
}

func loadHTTP(address string) ([]byte, error) {
	client := http.Client{Timeout: httpTimeout}
	resp, err := client.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func loadZip(filename string) ([]byte, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.EqualFold(filepath.Ext(f.Name), ".nes") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	return nil, curated.Errorf(NoFileInArchive, filename)
}
