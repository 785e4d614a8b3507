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

package test

import (
	"fmt"
	"strings"
)

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

// Write implements io.Writer. Bytes beyond the cap are silently dropped.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.size-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	return n, nil
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recently written bytes.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

func (w *RingWriter) String() string {
	if w.wrapped {
		var s strings.Builder
		s.Write(w.buffer[w.cursor:])
		s.Write(w.buffer[:w.cursor])
		return s.String()
	}
	return string(w.buffer[:w.cursor])
}

// Reset empties the buffer.
func (w *RingWriter) Reset() {
	w.cursor = 0
	w.wrapped = false
}

// Write implements io.Writer.
func (w *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of an oversized write can survive
	if n >= len(w.buffer) {
		copy(w.buffer, p[n-len(w.buffer):])
		w.cursor = 0
		w.wrapped = true
		return n, nil
	}

	c := copy(w.buffer[w.cursor:], p)
	if c < n {
		copy(w.buffer, p[c:])
		w.wrapped = true
	}
	w.cursor = (w.cursor + n) % len(w.buffer)
	if w.cursor == 0 {
		w.wrapped = true
	}

	return n, nil
}

// CompareWriter is an implementation of io.Writer. It should be used to
// capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements io.Writer.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}
