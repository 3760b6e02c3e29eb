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


package format

import (
	"slices"

	"github.com/blinklabs-io/dhpreview"
)

// Context carries the state of the transaction being reviewed that some
// formatters depend on. It is created once per transaction from the signing
// path and passed to every FormatField call
type Context struct {
	Path    []uint32
	Network dhpreview.Network
}

// NewContext returns a Context for the given BIP32 signing path. The network is
// taken from the coin type, the second path element: mainnet for the mainnet
// coin type and testnet for anything else, including a missing element
func NewContext(path []uint32) *Context {
	network := dhpreview.NetworkTestnet
	if len(path) > 1 {
		network = dhpreview.NetworkByCoinType(path[1])
	}
	return &Context{
		Path:    slices.Clone(path),
		Network: network,
	}
}

// NetworkContext returns a Context for a known network without a signing path
func NetworkContext(network dhpreview.Network) *Context {
	return &Context{
		Network: network,
	}
}

func (c *Context) network() dhpreview.Network {
	if c == nil || !c.Network.Valid() {
		return dhpreview.NetworkTestnet
	}
	return c.Network
}

// IsMainnet reports whether the transaction is for mainnet
func (c *Context) IsMainnet() bool {
	return c.network().NetworkType == dhpreview.MainnetNetworkType
}

// CurrencyMosaicId returns the id of the native currency mosaic on the network
// of the transaction
func (c *Context) CurrencyMosaicId() uint64 {
	return c.network().CurrencyMosaicId
}
