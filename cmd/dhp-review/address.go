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


package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/blinklabs-io/dhpreview/address"
	"github.com/spf13/cobra"
)

type addressInfo struct {
	Address string `json:"address"`
	Raw     string `json:"raw"`
	Network string `json:"network"`
}

func newAddressInfo(addr address.Address) addressInfo {
	return addressInfo{
		Address: addr.String(),
		Raw:     strings.ToUpper(hex.EncodeToString(addr[:])),
		Network: addr.Network().Name,
	}
}

func newAddressCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive and validate account addresses",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "derive <public-key-hex>",
			Short: "Derive the address of an account public key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				publicKey, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("failed to decode public key: %w", err)
				}
				ctx, err := a.cfg.renderContext()
				if err != nil {
					return err
				}
				addr, err := address.FromPublicKey(publicKey, ctx.Network.NetworkType)
				if err != nil {
					return err
				}
				a.logger.Debug("derived address", "network", ctx.Network.Name)
				return a.writeAddress(cmd, newAddressInfo(addr))
			},
		},
		&cobra.Command{
			Use:   "validate <address>",
			Short: "Check the network and checksum of an address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				addr, err := address.Decode(args[0])
				if err != nil {
					return err
				}
				if err := addr.Validate(); err != nil {
					return err
				}
				return a.writeAddress(cmd, newAddressInfo(addr))
			},
		},
	)
	return cmd
}

func (a *app) writeAddress(cmd *cobra.Command, info addressInfo) error {
	if a.useTable(cmd) {
		return writeKeyValues(
			cmd.OutOrStdout(),
			"Address", info.Address,
			"Raw", info.Raw,
			"Network", info.Network,
		)
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
}

// writeKeyValues writes alternating keys and values as aligned lines
func writeKeyValues(w io.Writer, kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", kv[i]+":", kv[i+1]); err != nil {
			return err
		}
	}
	return nil
}
