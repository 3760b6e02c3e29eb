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

// Package test holds helpers shared by the package tests
package test

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Uint16LE returns the little-endian encoding of v
func Uint16LE(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// Uint32LE returns the little-endian encoding of v
func Uint32LE(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// Uint64LE returns the little-endian encoding of v
func Uint64LE(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// MosaicBytes returns the raw 16 byte form of a mosaic amount: id then amount
func MosaicBytes(mosaicId uint64, amount uint64) []byte {
	ret := Uint64LE(mosaicId)
	return binary.LittleEndian.AppendUint64(ret, amount)
}

// Bip32PathBytes returns a length-prefixed, big-endian encoded BIP32 path
func Bip32PathBytes(path ...uint32) []byte {
	ret := []byte{byte(len(path))}
	for _, elem := range path {
		ret = binary.BigEndian.AppendUint32(ret, elem)
	}
	return ret
}
