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

package printer

import (
	"encoding/binary"

	"github.com/blinklabs-io/dhpreview/status"
)

const hexDigits = "0123456789ABCDEF"

// Number writes the decimal form of v. The digits are counted first and
// nothing is written unless they all fit along with the terminator
func Number(dst []byte, v uint64) (int, error) {
	digits := 0
	for shifter := v; ; {
		digits++
		shifter /= 10
		if shifter == 0 {
			break
		}
	}
	if digits+1 > len(dst) {
		return 0, status.New(status.NotEnoughData, "print number")
	}
	dst[digits] = 0
	// Right to left
	for i := digits - 1; i >= 0; i-- {
		dst[i] = '0' + byte(v%10)
		v /= 10
	}
	return digits, nil
}

// Hex writes two uppercase hex characters per byte of src. With reverse set the
// bytes are taken from last to first, which shows a little-endian integer most
// significant byte first
func Hex(dst []byte, src []byte, reverse bool) (int, error) {
	if len(src) < 1 || 2*len(src) > len(dst)-1 {
		return 0, status.New(status.NotEnoughData, "print hex")
	}
	for i := range src {
		c := src[i]
		if reverse {
			c = src[len(src)-1-i]
		}
		dst[2*i] = hexDigits[c>>4]
		dst[2*i+1] = hexDigits[c&0x0f]
	}
	dst[2*len(src)] = 0
	return 2 * len(src), nil
}

// HexToASCII writes each byte of src as two hex characters, in order
func HexToASCII(dst []byte, src []byte) (int, error) {
	if len(src) < 1 || 2*len(src) > len(dst)-1 {
		return 0, status.New(status.NotEnoughData, "print hex message")
	}
	for i, c := range src {
		dst[2*i] = nibbleToASCII(c >> 4)
		dst[2*i+1] = nibbleToASCII(c & 0x0f)
	}
	dst[2*len(src)] = 0
	return 2 * len(src), nil
}

func nibbleToASCII(v byte) byte {
	if v > 9 {
		return v + 'A' - 10
	}
	return v + '0'
}

// ASCII copies the printable characters of src. Each run of bytes outside
// [32, 126] is replaced by a single '?'
func ASCII(dst []byte, src []byte) (int, error) {
	if len(src) < 1 || len(src) > len(dst)-1 {
		return 0, status.New(status.NotEnoughData, "print ascii")
	}
	n := 0
	inRun := false
	for _, c := range src {
		if c < 32 || c > 126 {
			if !inRun {
				dst[n] = '?'
				n++
				inRun = true
			}
			continue
		}
		inRun = false
		dst[n] = c
		n++
	}
	dst[n] = 0
	return n, nil
}

// Mosaic writes "{amount} {asset} 0x{id}" with the id shown most significant
// byte first. Nothing is left in dst if any part does not fit.
func Mosaic(dst []byte, amount uint64, mosaicId uint64, asset string) (int, error) {
	n, err := Number(dst, amount)
	if err != nil {
		return 0, err
	}
	for _, part := range []string{" ", asset, " 0x"} {
		if n+len(part) > len(dst)-1 {
			clear(dst)
			return 0, status.New(status.NotEnoughData, "print mosaic")
		}
		n += copy(dst[n:], part)
	}
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], mosaicId)
	idLen, err := Hex(dst[n:], id[:], true)
	if err != nil {
		clear(dst)
		return 0, err
	}
	return n + idLen, nil
}
