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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// name of the directory in the current working directory that indicates a
// portable installation
const portablePath = ".gophernes"

// name of the directory in the user's configuration directory
const configDir = "gophernes"

// returns the base path for all resources
func basePath() (string, error) {
	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cnf, configDir), nil
}

// JoinPath prepends the supplied path with the base resource path. Any
// directories required to reach the end of the path are created.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

// UniqueFilename creates a filename that should not collide with any existing
// file, assuming a functioning clock. The format of the filename is:
//
//	prepend_cartname_YYYYMMDD_HHMMSS.ext
//
// The cartname part is omitted if the string is empty.
func UniqueFilename(prepend string, cartName string, ext string) string {
	timestamp := time.Now().Format("20060102_150405")

	parts := []string{prepend}
	if c := strings.ReplaceAll(strings.TrimSpace(cartName), " ", "_"); c != "" {
		parts = append(parts, c)
	}
	parts = append(parts, timestamp)

	fn := strings.Join(parts, "_")
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}

	return fn
}
