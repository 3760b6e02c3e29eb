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

package dhpreview

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Network definitions
var (
	NetworkMainnet = Network{
		Name:             "mainnet",
		NetworkType:      MainnetNetworkType,
		CoinType:         MainnetCoinType,
		CurrencyMosaicId: MainnetCurrencyMosaicId,
	}
	NetworkTestnet = Network{
		Name:             "testnet",
		NetworkType:      TestnetNetworkType,
		CoinType:         TestnetCoinType,
		CurrencyMosaicId: TestnetCurrencyMosaicId,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByNetworkType returns a predefined network by the network type byte that
// prefixes its addresses
func NetworkByNetworkType(networkType uint8) Network {
	for _, network := range networks {
		if network.NetworkType == networkType {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByCoinType returns the network selected by the coin type component of a
// BIP32 path. The hardened bit is ignored. Any coin type other than the mainnet one
// selects the testnet, which matches how the device picks its native currency
func NetworkByCoinType(coinType uint32) Network {
	if coinType&^hdkeychain.HardenedKeyStart == MainnetCoinType {
		return NetworkMainnet
	}
	return NetworkTestnet
}

// Network represents a DHP network
type Network struct {
	Name             string
	NetworkType      uint8 // leading byte of every address on the network
	CoinType         uint32
	CurrencyMosaicId uint64
}

func (n Network) String() string {
	return n.Name
}

// Valid returns true for the predefined networks
func (n Network) Valid() bool {
	return n.NetworkType != 0
}
