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
	"os"
	"strings"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/field"
	"github.com/blinklabs-io/dhpreview/review"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var hexInput, dump bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CBOR field sequence",
		Long: `Render reads a CBOR field sequence, an array of [id, dataType, data]
records, from the given file or from stdin and prints one label and value
pair per field.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				input = f
			}
			data, err := io.ReadAll(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if hexInput {
				data, err = hex.DecodeString(strings.TrimSpace(string(data)))
				if err != nil {
					return fmt.Errorf("failed to decode hex input: %w", err)
				}
			}
			ctx, err := a.cfg.renderContext()
			if err != nil {
				return err
			}
			r := review.New(
				review.WithLogger(a.logger),
				review.WithContext(ctx),
			)
			var dumpWriter io.Writer
			if dump {
				dumpWriter = cmd.ErrOrStderr()
			}
			pairs, err := reviewSequence(r, data, dumpWriter)
			if err != nil {
				word := status.WordFromError(err)
				return fmt.Errorf("%w (status 0x%04X: %s)", err, uint16(word), word)
			}
			a.logger.Info(
				"rendered field sequence",
				"network",
				r.Context().Network.Name,
				"fields",
				len(pairs),
			)
			if a.useTable(cmd) {
				return writePairs(cmd.OutOrStdout(), pairs)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pairs)
		},
	}
	cmd.Flags().BoolVar(&hexInput, "hex", false, "input is hex encoded")
	cmd.Flags().BoolVar(&dump, "dump", false, "list the raw fields on stderr before rendering")
	return cmd
}

// reviewSequence decodes and reviews a field sequence, listing the decoded
// fields to dump first when it is not nil
func reviewSequence(r *review.Reviewer, data []byte, dump io.Writer) ([]review.Pair, error) {
	if dump == nil {
		return r.ReviewSequence(data)
	}
	fields, err := field.UnmarshalSequence(data)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(dump, fields.Dump("")); err != nil {
		return nil, err
	}
	return r.Review(fields)
}

func writePairs(w io.Writer, pairs []review.Pair) error {
	for _, pair := range pairs {
		if _, err := fmt.Fprintf(
			w,
			"%-*s %s\n",
			dhpreview.MaxFieldNameLen,
			pair.Label+":",
			pair.Value,
		); err != nil {
			return err
		}
	}
	return nil
}
