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


// Package address handles DHP account addresses: the 24 byte raw form carried
// in transactions and the 39 character base32 text shown to the user.
//
// A raw address is the network type byte, the 20 byte RIPEMD-160 of the
// SHA3-256 of the account public key, and a 3 byte checksum taken from the
// SHA3-256 of the first 21 bytes.
package address

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

const (
	// RFC 4648 base32 alphabet
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	keyHashLength  = 20
	checksumLength = 3
)

type Address [dhpreview.AddressLength]byte

// NewAddressFromBytes returns an Address from its raw form. The checksum is
// not checked, use Validate for that
func NewAddressFromBytes(data []byte) (Address, error) {
	var ret Address
	if len(data) != len(ret) {
		return ret, status.Wrap(
			status.InvalidData,
			"address from bytes",
			fmt.Errorf("invalid address length %d", len(data)),
		)
	}
	copy(ret[:], data)
	return ret, nil
}

// FromPublicKey derives the address of an account public key on the network
// with the given network type byte
func FromPublicKey(publicKey []byte, networkType uint8) (Address, error) {
	if len(publicKey) != dhpreview.PublicKeyLength {
		return Address{}, status.Wrap(
			status.InvalidData,
			"address from public key",
			fmt.Errorf("invalid public key length %d", len(publicKey)),
		)
	}
	// validate key
	if _, err := new(edwards25519.Point).SetBytes(publicKey); err != nil {
		return Address{}, status.Wrap(status.InvalidData, "address from public key", err)
	}
	if !dhpreview.NetworkByNetworkType(networkType).Valid() {
		return Address{}, status.Wrap(
			status.InvalidData,
			"address from public key",
			fmt.Errorf("unknown network type 0x%02X", networkType),
		)
	}
	keySum := sha3.Sum256(publicKey)
	hasher := ripemd160.New()
	hasher.Write(keySum[:])
	var ret Address
	ret[0] = networkType
	copy(ret[1:], hasher.Sum(nil))
	sum := checksum(ret[:1+keyHashLength])
	copy(ret[1+keyHashLength:], sum[:])
	return ret, nil
}

func checksum(data []byte) [checksumLength]byte {
	var ret [checksumLength]byte
	sum := sha3.Sum256(data)
	copy(ret[:], sum[:checksumLength])
	return ret
}

// Encode writes the base32 text of a raw address into dst, which must have room
// for PrettyAddressLength characters and a NUL terminator
func Encode(dst []byte, raw []byte) (int, error) {
	if len(raw) != dhpreview.AddressLength {
		return 0, status.Wrap(
			status.InvalidData,
			"encode address",
			fmt.Errorf("invalid address length %d", len(raw)),
		)
	}
	if len(dst) < dhpreview.PrettyAddressLength+1 {
		return 0, status.New(status.NotEnoughData, "encode address")
	}
	groups, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return 0, status.Wrap(status.InvalidData, "encode address", err)
	}
	for i, g := range groups {
		dst[i] = alphabet[g]
	}
	dst[len(groups)] = 0
	return len(groups), nil
}

// Decode parses the text form of an address. Letters may be in either case and
// dashes used for grouping are ignored. The checksum is not checked, use
// Validate for that
func Decode(text string) (Address, error) {
	text = strings.ToUpper(strings.ReplaceAll(text, "-", ""))
	if len(text) != dhpreview.PrettyAddressLength {
		return Address{}, status.Wrap(
			status.InvalidData,
			"decode address",
			fmt.Errorf("invalid address text length %d", len(text)),
		)
	}
	groups := make([]byte, len(text))
	for i := range len(text) {
		idx := strings.IndexByte(alphabet, text[i])
		if idx < 0 {
			return Address{}, status.Wrap(
				status.InvalidData,
				"decode address",
				fmt.Errorf("invalid character %q at position %d", text[i], i),
			)
		}
		groups[i] = byte(idx)
	}
	data, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return Address{}, status.Wrap(status.InvalidData, "decode address", err)
	}
	return NewAddressFromBytes(data)
}

// Validate checks the network type byte and the checksum of a raw address
func Validate(raw []byte) error {
	addr, err := NewAddressFromBytes(raw)
	if err != nil {
		return err
	}
	return addr.Validate()
}

func (a Address) Validate() error {
	if !a.Network().Valid() {
		return status.Wrap(
			status.InvalidData,
			"validate address",
			fmt.Errorf("unknown network type 0x%02X", a[0]),
		)
	}
	sum := checksum(a[:1+keyHashLength])
	if subtle.ConstantTimeCompare(sum[:], a[1+keyHashLength:]) != 1 {
		return status.Wrap(
			status.InvalidData,
			"validate address",
			errors.New("checksum mismatch"),
		)
	}
	return nil
}

// NetworkType returns the leading network type byte
func (a Address) NetworkType() uint8 {
	return a[0]
}

// Network returns the network the address belongs to, or NetworkInvalid
func (a Address) Network() dhpreview.Network {
	return dhpreview.NetworkByNetworkType(a[0])
}

// KeyHash returns the RIPEMD-160 part of the address
func (a Address) KeyHash() []byte {
	return bytes.Clone(a[1 : 1+keyHashLength])
}

func (a Address) Bytes() []byte {
	return bytes.Clone(a[:])
}

// String returns the base32 text of the address
func (a Address) String() string {
	var buf [dhpreview.PrettyAddressLength + 1]byte
	n, err := Encode(buf[:], a[:])
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding address: %s", err))
	}
	return string(buf[:n])
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
