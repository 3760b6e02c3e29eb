// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package printer writes text into fixed-capacity display buffers.
//
// Every function takes the destination as a byte slice whose length is the
// full capacity, including room for a NUL terminator, and never writes past
// it. Functions that cannot fit their whole result return an error before
// writing anything; Builder instead truncates, like snprintf.
package printer

import (
	"strconv"
)

// Builder appends text to a fixed-capacity buffer. Output that does not fit is
// cut off and the buffer is kept NUL-terminated
type Builder struct {
	dst       []byte
	n         int
	truncated bool
}

// NewBuilder clears dst and returns a Builder writing to it
func NewBuilder(dst []byte) Builder {
	clear(dst)
	return Builder{dst: dst}
}

// Write appends p, cutting it off at the capacity. It always reports len(p)
// bytes written
func (b *Builder) Write(p []byte) (int, error) {
	avail := len(b.dst) - 1 - b.n
	if avail < 0 {
		avail = 0
	}
	n := min(len(p), avail)
	copy(b.dst[b.n:], p[:n])
	b.n += n
	if n < len(p) {
		b.truncated = true
	}
	if b.n < len(b.dst) {
		b.dst[b.n] = 0
	}
	// Truncation is not an error, to match snprintf
	return len(p), nil
}

// WriteString appends s, cutting it off at the capacity
func (b *Builder) WriteString(s string) {
	avail := len(b.dst) - 1 - b.n
	if avail < 0 {
		avail = 0
	}
	n := min(len(s), avail)
	copy(b.dst[b.n:], s[:n])
	b.n += n
	if n < len(s) {
		b.truncated = true
	}
	if b.n < len(b.dst) {
		b.dst[b.n] = 0
	}
}

// WriteByte appends c if there is room. The error is always nil
func (b *Builder) WriteByte(c byte) error {
	var tmp [1]byte
	tmp[0] = c
	_, _ = b.Write(tmp[:])
	return nil
}

// WriteUint appends the decimal form of v
func (b *Builder) WriteUint(v uint64) {
	var tmp [20]byte
	_, _ = b.Write(strconv.AppendUint(tmp[:0], v, 10))
}

// WriteInt appends the decimal form of v with a leading - when negative
func (b *Builder) WriteInt(v int64) {
	var tmp [20]byte
	_, _ = b.Write(strconv.AppendInt(tmp[:0], v, 10))
}

// Len returns the number of text bytes written so far
func (b *Builder) Len() int {
	return b.n
}

// Truncated reports whether any write was cut off
func (b *Builder) Truncated() bool {
	return b.truncated
}

// String returns a copy of the text written so far
func (b *Builder) String() string {
	return string(b.dst[:b.n])
}

// CString returns the text of a NUL-terminated buffer
func CString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
