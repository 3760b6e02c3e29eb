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

package buffer

import (
	"testing"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/internal/test"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBip32Path(t *testing.T) {
	data := test.DecodeHexString("05" + "8000002c" + "8000277f" + "80000000" + "80000000" + "80000000" + "aa")
	b := New(data)
	var path [dhpreview.MaxBip32Path]uint32
	n, err := b.ReadBip32Path(path[:])
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, uint32(0x8000002C), path[0])
	assert.Equal(t, uint32(0x80000000|10111), path[1])
	assert.Equal(t, 21, b.Offset())
	assert.Equal(t, []byte{0xaa}, b.Bytes())
}

func TestReadBip32PathLength(t *testing.T) {
	testDefs := []struct {
		name        string
		data        []byte
		expectedErr error
	}{
		{
			name:        "zero length",
			data:        test.DecodeHexString("00"),
			expectedErr: status.ErrInvalidData,
		},
		{
			name:        "too long",
			data:        append([]byte{6}, make([]byte, 24)...),
			expectedErr: status.ErrInvalidData,
		},
		{
			name:        "empty buffer",
			data:        nil,
			expectedErr: status.ErrNotEnoughData,
		},
		{
			name:        "truncated elements",
			data:        test.DecodeHexString("028000002c800027"),
			expectedErr: status.ErrNotEnoughData,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			b := New(testDef.data)
			var path [dhpreview.MaxBip32Path]uint32
			n, err := b.ReadBip32Path(path[:])
			assert.ErrorIs(t, err, testDef.expectedErr)
			assert.Equal(t, 0, n)
			assert.Equal(t, 0, b.Offset())
			assert.Equal(t, [dhpreview.MaxBip32Path]uint32{}, path)
		})
	}
}

func TestReadBip32PathFromOffset(t *testing.T) {
	data := append([]byte{0xff, 0xff}, test.Bip32PathBytes(0x8000002c, 1)...)
	b := New(data)
	require.NoError(t, b.Seek(2))
	path := make([]uint32, 2)
	n, err := b.ReadBip32Path(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint32{0x8000002c, 1}, path)
	assert.Equal(t, 0, b.Remaining())
}

func TestParseBip32Path(t *testing.T) {
	testDefs := []struct {
		path     string
		expected []uint32
		wantErr  bool
	}{
		{
			path:     "m/44'/10111'/0'/0'/0'",
			expected: []uint32{0x8000002c, 0x8000277f, 0x80000000, 0x80000000, 0x80000000},
		},
		{
			path:     "44h/1h/2/3",
			expected: []uint32{0x8000002c, 0x80000001, 2, 3},
		},
		{path: "m", wantErr: true},
		{path: "", wantErr: true},
		{path: "m/44'/x", wantErr: true},
		{path: "m/1/2/3/4/5/6", wantErr: true},
		{path: "m/2147483648", wantErr: true},
	}
	for _, testDef := range testDefs {
		path, err := ParseBip32Path(testDef.path)
		if testDef.wantErr {
			assert.Error(t, err, testDef.path)
			continue
		}
		require.NoError(t, err, testDef.path)
		assert.Equal(t, testDef.expected, path)
	}
}

func TestFormatBip32Path(t *testing.T) {
	assert.Equal(
		t,
		"m/44'/10111'/0'/0/1",
		FormatBip32Path([]uint32{0x8000002c, 0x8000277f, 0x80000000, 0, 1}),
	)
	path, err := ParseBip32Path(FormatBip32Path([]uint32{0x8000002c, 5}))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x8000002c, 5}, path)
}

func TestEncodeBip32Path(t *testing.T) {
	path := []uint32{0x8000002c, 0x8000277f, 0x80000000, 0x80000000, 0x80000000}
	encoded := EncodeBip32Path(path)
	assert.Equal(t, test.Bip32PathBytes(path...), encoded)
	var decoded [dhpreview.MaxBip32Path]uint32
	n, err := New(encoded).ReadBip32Path(decoded[:])
	require.NoError(t, err)
	assert.Equal(t, path, decoded[:n])
}
