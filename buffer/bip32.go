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
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// ReadBip32Path reads a length-prefixed BIP32 path into path and returns the
// number of elements read. The length byte must be between 1 and len(path).
// Each element is a big-endian uint32.
//
// The whole path must be available: the cursor checks for 1+4k bytes before
// reading any element, and on any failure returns 0 without moving
func (b *Buffer) ReadBip32Path(path []uint32) (int, error) {
	if !b.CanRead(1) {
		return 0, status.New(status.NotEnoughData, "read bip32 path")
	}
	pathLen := int(b.data[b.offset])
	if pathLen < 1 || pathLen > len(path) {
		return 0, status.New(status.InvalidData, "read bip32 path")
	}
	if !b.CanRead(1 + 4*pathLen) {
		return 0, status.New(status.NotEnoughData, "read bip32 path")
	}
	// Cannot fail after the check above
	_ = b.Seek(1)
	for i := range pathLen {
		path[i], _ = b.ReadUint32BE()
	}
	return pathLen, nil
}

// ParseBip32Path parses a textual path such as m/44'/10111'/0'/0'/0'. A trailing
// ' or h marks a hardened element
func ParseBip32Path(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "m/")
	if path == "" || path == "m" {
		return nil, errors.New("empty BIP32 path")
	}
	segments := strings.Split(path, "/")
	if len(segments) > dhpreview.MaxBip32Path {
		return nil, fmt.Errorf(
			"BIP32 path has %d elements, maximum is %d",
			len(segments),
			dhpreview.MaxBip32Path,
		)
	}
	ret := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		var offset uint32
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			offset = hdkeychain.HardenedKeyStart
			segment = segment[:len(segment)-1]
		}
		val, err := strconv.ParseUint(segment, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid BIP32 path element %q: %w", segment, err)
		}
		ret = append(ret, uint32(val)+offset)
	}
	return ret, nil
}

// FormatBip32Path returns the textual form of a path, using ' for hardened elements
func FormatBip32Path(path []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, elem := range path {
		sb.WriteString("/")
		if elem >= hdkeychain.HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(elem-hdkeychain.HardenedKeyStart), 10))
			sb.WriteString("'")
		} else {
			sb.WriteString(strconv.FormatUint(uint64(elem), 10))
		}
	}
	return sb.String()
}

// EncodeBip32Path returns the length-prefixed, big-endian form of a path read
// by ReadBip32Path
func EncodeBip32Path(path []uint32) []byte {
	ret := make([]byte, 1, 1+4*len(path))
	ret[0] = byte(len(path))
	for _, elem := range path {
		ret = binary.BigEndian.AppendUint32(ret, elem)
	}
	return ret
}
