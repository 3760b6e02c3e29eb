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
	"strings"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/buffer"
	"github.com/blinklabs-io/dhpreview/format"
	"github.com/spf13/cobra"
)

type pathInfo struct {
	Path     string `json:"path"`
	Network  string `json:"network"`
	Encoding string `json:"encoding"`
}

func newPathCmd(a *app) *cobra.Command {
	var hexInput bool
	cmd := &cobra.Command{
		Use:   "path <path>",
		Short: "Parse a BIP32 path and show its device encoding",
		Long: `Path parses a BIP32 path such as m/44'/10111'/0'/0'/0' and prints the
network it signs for and the length-prefixed encoding sent to the device.
With --hex the argument is that encoding instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path []uint32
			if hexInput {
				data, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("failed to decode path encoding: %w", err)
				}
				buf := buffer.New(data)
				tmpPath := make([]uint32, dhpreview.MaxBip32Path)
				n, err := buf.ReadBip32Path(tmpPath)
				if err != nil {
					return err
				}
				if buf.Remaining() > 0 {
					return fmt.Errorf("%d trailing bytes after path", buf.Remaining())
				}
				path = tmpPath[:n]
			} else {
				var err error
				path, err = buffer.ParseBip32Path(args[0])
				if err != nil {
					return err
				}
			}
			info := pathInfo{
				Path:     buffer.FormatBip32Path(path),
				Network:  format.NewContext(path).Network.Name,
				Encoding: strings.ToUpper(hex.EncodeToString(buffer.EncodeBip32Path(path))),
			}
			if a.useTable(cmd) {
				return writeKeyValues(
					cmd.OutOrStdout(),
					"Path", info.Path,
					"Network", info.Network,
					"Encoding", info.Encoding,
				)
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
		},
	}
	cmd.Flags().BoolVar(&hexInput, "hex", false, "argument is the hex device encoding of the path")
	return cmd
}
