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

// Package dhpreview renders DHP transaction fields into the (label, value) pairs
// that a hardware wallet shows before it signs.
//
// The transaction bytes are untrusted. The sub-packages split the work:
//   - buffer: bounds-checked cursor over the raw command bytes
//   - field: the tagged field model produced by the transaction parser
//   - printer: overflow-checked string builders for fixed display buffers
//   - format: field name resolution and per-type value formatting
//   - review: the ordered rendering pipeline handed to the confirmation UI
//
// This package holds the network definitions and the protocol constants
// shared by all of them.
package dhpreview

const (
	MainnetNetworkType uint8 = 0x68
	TestnetNetworkType uint8 = 0x98

	MainnetCoinType uint32 = 10111
	// TestnetCoinType is the coin type used by all test networks
	TestnetCoinType uint32 = 1

	MainnetCurrencyMosaicId uint64 = 0x39E0C49FA322A459
	TestnetCurrencyMosaicId uint64 = 0x72C0212E67A08BCE

	// CurrencyDivisibility is the divisibility of the native currency on all networks
	CurrencyDivisibility uint8 = 6
	CurrencyTicker             = "DHP"
	// MicroTicker is shown next to raw amounts of mosaics with unknown divisibility
	MicroTicker = "micro"
)

// Sizes of the binary structures carried in transactions
const (
	AddressLength         = 24
	PrettyAddressLength   = 39
	PublicKeyLength       = 32
	PrivateKeyLength      = 32
	TransactionHashLength = 32
	MosaicLength          = 16
)

// Display limits of the device
const (
	MaxFieldCount   = 60
	MaxFieldNameLen = 25
	MaxFieldLen     = 128
	MaxBip32Path    = 5
	// AmountMaxSize fits the widest scaled amount: "922337203685.4775807" plus NUL
	AmountMaxSize = 21
)
