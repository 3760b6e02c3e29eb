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


package field

import (
	"testing"

	"github.com/blinklabs-io/dhpreview/internal/test"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	testDefs := []struct {
		dataType DataType
		size     int
	}{
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeUint32, 4},
		{TypeUint64, 8},
		{TypeHash256, 32},
		{TypePublicKey, 32},
		{TypeString, 0},
		{TypeDHP, 8},
		{TypeMosaicCurrency, 16},
		{TypeMessage, 0},
		{TypeAddress, 24},
		{TypeHexMessage, 0},
		{TypeUint8Addition, 1},
		{TypeUint8Deletion, 1},
	}
	for _, testDef := range testDefs {
		assert.True(t, testDef.dataType.Known(), testDef.dataType.String())
		assert.Equal(
			t,
			testDef.size,
			testDef.dataType.Size(),
			testDef.dataType.String(),
		)
	}
}

func TestDataTypeUnknown(t *testing.T) {
	for _, dt := range []DataType{0x00, 0x09, 0x16, 0x18, 0x9F, 0xA7, 0xFF} {
		assert.False(t, dt.Known())
		assert.ErrorIs(t, dt.Validate(), status.ErrInvalidData)
	}
	assert.Equal(t, "DataType(0x09)", DataType(0x09).String())
}

func TestNew(t *testing.T) {
	f, err := New(Uint16TransactionType, TypeUint16, test.Uint16LE(0x4154))
	require.NoError(t, err)
	assert.Equal(t, uint16(2), f.Length)
	v, err := f.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4154), v)

	// Fixed width types must carry exactly their width
	_, err = New(Uint16TransactionType, TypeUint16, []byte{0x54})
	assert.ErrorIs(t, err, status.ErrInvalidData)
	_, err = New(Uint64Duration, TypeUint64, make([]byte, 9))
	assert.ErrorIs(t, err, status.ErrInvalidData)

	// Variable width types take any length
	for _, n := range []int{0, 1, 200} {
		f, err := New(StrMessage, TypeMessage, make([]byte, n))
		require.NoError(t, err)
		assert.Equal(t, uint16(n), f.Length)
	}

	_, err = New(0x01, DataType(0x42), []byte{0x00})
	assert.ErrorIs(t, err, status.ErrInvalidData)
}

func TestValidateLengthMismatch(t *testing.T) {
	f := Field{
		ID:       StrMessage,
		DataType: TypeMessage,
		Length:   5,
		Data:     []byte("abc"),
	}
	assert.ErrorIs(t, f.Validate(), status.ErrInvalidData)
}

func TestReaders(t *testing.T) {
	f := Field{ID: Int8MinRemovalDelta, DataType: TypeInt8, Length: 1, Data: []byte{0xFE}}
	i8, err := f.Int8()
	require.NoError(t, err)
	assert.Equal(t, int8(-2), i8)

	f = Field{ID: Int16ValueSizeDelta, DataType: TypeInt16, Length: 2, Data: []byte{0x00, 0x80}}
	i16, err := f.Int16()
	require.NoError(t, err)
	assert.Equal(t, int16(-32768), i16)

	f = Field{ID: Uint32VotingStartEpoch, DataType: TypeUint32, Length: 4, Data: test.Uint32LE(0xDEADBEEF)}
	u32, err := f.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	f = Field{ID: Uint64Duration, DataType: TypeUint64, Length: 8, Data: test.Uint64LE(2940)}
	u64, err := f.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(2940), u64)
}

func TestReadersShortData(t *testing.T) {
	f := Field{ID: Uint64Duration, DataType: TypeUint64, Length: 3, Data: []byte{1, 2, 3}}
	_, err := f.Uint64()
	assert.ErrorIs(t, err, status.ErrNotEnoughData)
	_, err = f.Uint32()
	assert.ErrorIs(t, err, status.ErrNotEnoughData)
	_, err = f.Mosaic()
	assert.ErrorIs(t, err, status.ErrNotEnoughData)
	u16, err := f.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), u16)

	// Length bounds the payload even when the backing slice is longer
	f = Field{ID: Uint8MosaicCount, DataType: TypeUint8, Length: 0, Data: []byte{1}}
	_, err = f.Uint8()
	assert.ErrorIs(t, err, status.ErrNotEnoughData)
}

func TestMosaic(t *testing.T) {
	f, err := New(
		MosaicAmountId,
		TypeMosaicCurrency,
		test.MosaicBytes(0x39E0C49FA322A459, 1_500_000),
	)
	require.NoError(t, err)
	m, err := f.Mosaic()
	require.NoError(t, err)
	assert.Equal(
		t,
		MosaicAmount{MosaicId: 0x39E0C49FA322A459, Amount: 1_500_000},
		m,
	)
}
