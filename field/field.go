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

// Package field models the tagged fields that the transaction parser extracts
// from a transaction and hands over for display.
//
// A Field does not own its bytes: Data is a view into the command buffer the
// parser read it from and is only valid while that buffer is. Fields are kept in
// an Array, whose order is the order in which they are shown to the user.
package field

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/blinklabs-io/dhpreview/status"
)

// Field is one typed, length-bounded unit of transaction data
type Field struct {
	ID       uint8
	DataType DataType
	Length   uint16
	Data     []byte
}

// New returns a field over data after checking that the data type is known and
// that the length fits the type
func New(id uint8, dataType DataType, data []byte) (Field, error) {
	if len(data) > math.MaxUint16 {
		return Field{}, status.Wrap(
			status.InvalidData,
			"new field",
			fmt.Errorf("field data length %d exceeds maximum", len(data)),
		)
	}
	f := Field{
		ID:       id,
		DataType: dataType,
		Length:   uint16(len(data)),
		Data:     data,
	}
	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Validate checks that the data type is known, that Length matches the bytes
// actually present and that fixed width types carry exactly their width
func (f Field) Validate() error {
	if err := f.DataType.Validate(); err != nil {
		return err
	}
	if int(f.Length) != len(f.Data) {
		return status.Wrap(
			status.InvalidData,
			"validate field",
			fmt.Errorf(
				"field 0x%02X length %d does not match data length %d",
				f.ID,
				f.Length,
				len(f.Data),
			),
		)
	}
	if size := f.DataType.Size(); size > 0 && int(f.Length) != size {
		return status.Wrap(
			status.InvalidData,
			"validate field",
			fmt.Errorf(
				"%s field 0x%02X has length %d, expected %d",
				f.DataType,
				f.ID,
				f.Length,
				size,
			),
		)
	}
	return nil
}

func (f Field) String() string {
	return fmt.Sprintf("%s(0x%02X, %d bytes)", f.DataType, f.ID, f.Length)
}

// Bytes returns the payload bounded by Length
func (f Field) Bytes() []byte {
	if int(f.Length) < len(f.Data) {
		return f.Data[:f.Length]
	}
	return f.Data
}

func (f Field) fixed(n int) ([]byte, error) {
	data := f.Bytes()
	if len(data) < n {
		return nil, status.New(status.NotEnoughData, "read field")
	}
	return data[:n], nil
}

// Int8 reads the first byte of the field as a signed value
func (f Field) Int8() (int8, error) {
	v, err := f.Uint8()
	return int8(v), err
}

// Uint8 reads the first byte of the field
func (f Field) Uint8() (uint8, error) {
	data, err := f.fixed(1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// Int16 reads the little-endian value of the field
func (f Field) Int16() (int16, error) {
	v, err := f.Uint16()
	return int16(v), err
}

// Uint16 reads the little-endian value of the field
func (f Field) Uint16() (uint16, error) {
	data, err := f.fixed(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// Uint32 reads the little-endian value of the field
func (f Field) Uint32() (uint32, error) {
	data, err := f.fixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// Uint64 reads the little-endian value of the field
func (f Field) Uint64() (uint64, error) {
	data, err := f.fixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// MosaicAmount is a quantity of a mosaic, stored as two little-endian uint64
// values: the mosaic id followed by the amount
type MosaicAmount struct {
	MosaicId uint64
	Amount   uint64
}

// Mosaic reads the field as a MosaicAmount
func (f Field) Mosaic() (MosaicAmount, error) {
	data, err := f.fixed(16)
	if err != nil {
		return MosaicAmount{}, err
	}
	return MosaicAmount{
		MosaicId: binary.LittleEndian.Uint64(data[0:8]),
		Amount:   binary.LittleEndian.Uint64(data[8:16]),
	}, nil
}
