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

// Package buffer provides a bounds-checked cursor over the bytes of an incoming
// command.
//
// The cursor never reads past the end of its data. Every operation that would
// move the offset is validated first and either applies completely or leaves
// the cursor untouched, so a failed read is never partially observable.
package buffer

import (
	"encoding/binary"
	"math"

	"github.com/blinklabs-io/dhpreview/status"
)

// Buffer is a read cursor over an immutable byte span
type Buffer struct {
	data   []byte
	offset int
}

// New returns a Buffer positioned at the start of data. The data is borrowed,
// not copied
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Size returns the total number of bytes in the buffer
func (b *Buffer) Size() int {
	return len(b.data)
}

// Offset returns the current read position
func (b *Buffer) Offset() int {
	return b.offset
}

// Remaining returns the number of unread bytes
func (b *Buffer) Remaining() int {
	return len(b.data) - b.offset
}

// CanRead reports whether n more bytes are available
func (b *Buffer) CanRead(n int) bool {
	if n < 0 {
		return false
	}
	return len(b.data)-b.offset >= n
}

// SeekSet moves the cursor to an absolute position. Any position up to and
// including Size() is valid
func (b *Buffer) SeekSet(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return status.New(status.NotEnoughData, "seek set")
	}
	b.offset = pos
	return nil
}

// Seek advances the cursor by n bytes
func (b *Buffer) Seek(n int) error {
	if n < 0 ||
		b.offset > math.MaxInt-n || // overflow
		b.offset+n > len(b.data) {
		return status.New(status.NotEnoughData, "seek")
	}
	b.offset += n
	return nil
}

// Bytes returns a view of the unread bytes without advancing
func (b *Buffer) Bytes() []byte {
	return b.data[b.offset:]
}

// ReadBytes returns a view of the next n bytes and advances past them. The
// returned slice shares memory with the buffer and is capped so it cannot be
// extended into the following bytes
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	start := b.offset
	if err := b.Seek(n); err != nil {
		return nil, err
	}
	return b.data[start:b.offset:b.offset], nil
}

// ReadUint8 reads a single byte
func (b *Buffer) ReadUint8() (uint8, error) {
	data, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadInt8 reads a single byte as a signed value
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a little-endian uint16
func (b *Buffer) ReadUint16() (uint16, error) {
	data, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUint32 reads a little-endian uint32
func (b *Buffer) ReadUint32() (uint32, error) {
	data, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUint64 reads a little-endian uint64
func (b *Buffer) ReadUint64() (uint64, error) {
	data, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadUint32BE reads a big-endian uint32, as used by BIP32 path elements
func (b *Buffer) ReadUint32BE() (uint32, error) {
	data, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}
