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


// Package screenshot saves television frames as PNG images. Frames can be
// scaled by an integer factor and optionally copied to the system clipboard.
package screenshot

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/resources"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

// Sentinal error patterns.
const (
	NoFrame     = "screenshot: no frame to save"
	BadScale    = "screenshot: bad scale value (%d)"
	NoClipboard = "screenshot: clipboard unavailable: %v"
)

// MaxScale is the largest scaling factor accepted by Scale().
const MaxScale = 8

// Scale returns a copy of the frame scaled by the integer factor with nearest
// neighbour sampling.
func Scale(frame *television.Frame, scale int) (*image.RGBA, error) {
	if frame == nil {
		return nil, curated.Errorf(NoFrame)
	}
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(BadScale, scale)
	}

	src := frame.RGBA()
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, television.Width*scale, television.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode the frame as a PNG to the writer.
func Encode(w io.Writer, frame *television.Frame, scale int) error {
	img, err := Scale(frame, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Filename returns a unique filename for a screenshot of the named cartridge.
// The directory and extension of the cartridge name are removed.
func Filename(cartName string) string {
	base := strings.TrimSuffix(filepath.Base(cartName), filepath.Ext(cartName))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	return resources.UniqueFilename("screenshot", base, "png")
}

// Save the frame to the path as a PNG.
func Save(frame *television.Frame, scale int, path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	if err := Encode(f, frame, scale); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
	return nil
}

var clipboardInit = sync.OnceValue(clipboard.Init)

// Clipboard copies the frame as a PNG to the system clipboard.
func Clipboard(frame *television.Frame, scale int) error {
	if err := clipboardInit(); err != nil {
		return curated.Errorf(NoClipboard, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, frame, scale); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())

	logger.Log(logger.Allow, "screenshot", "copied to clipboard")
	return nil
}
