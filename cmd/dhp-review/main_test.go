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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/field"
	"github.com/blinklabs-io/dhpreview/internal/test"
	"github.com/blinklabs-io/dhpreview/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func transferSequenceHex(t *testing.T) string {
	t.Helper()
	var fields field.Array
	for _, f := range []field.Field{
		{ID: field.Uint16TransactionType, DataType: field.TypeUint16, Length: 2, Data: test.Uint16LE(0x4154)},
		{ID: field.MosaicAmountId, DataType: field.TypeMosaicCurrency, Length: 16, Data: test.MosaicBytes(dhpreview.MainnetCurrencyMosaicId, 1_000_000)},
		{ID: field.Uint64TransactionFee, DataType: field.TypeDHP, Length: 8, Data: test.Uint64LE(50_000)},
	} {
		require.NoError(t, fields.Add(f))
	}
	cborData, err := field.MarshalSequence(&fields)
	require.NoError(t, err)
	return hex.EncodeToString(cborData)
}

func TestRenderJSON(t *testing.T) {
	out, err := runCmd(
		t,
		transferSequenceHex(t),
		"render", "--hex", "--network", "mainnet", "--output", "json",
	)
	require.NoError(t, err)
	var pairs []review.Pair
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	assert.Equal(
		t,
		[]review.Pair{
			{Label: "Transaction Type", Value: "Transfer"},
			{Label: "Amount", Value: "1 DHP"},
			{Label: "Fee", Value: "0.05 DHP"},
		},
		pairs,
	)
}

func TestRenderTable(t *testing.T) {
	// The signing path takes precedence over the network name
	out, err := runCmd(
		t,
		transferSequenceHex(t),
		"render", "--hex", "--network", "testnet", "--path", "m/44'/10111'/0'/0'/0'", "--output", "table",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Amount:")
	assert.Contains(t, out, "1 DHP\n")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestRenderFile(t *testing.T) {
	data, err := hex.DecodeString(transferSequenceHex(t))
	require.NoError(t, err)
	inputFile := filepath.Join(t.TempDir(), "fields.cbor")
	require.NoError(t, os.WriteFile(inputFile, data, 0o600))
	out, err := runCmd(t, "", "render", inputFile, "--output", "json")
	require.NoError(t, err)
	// Rendered for testnet, where the mainnet currency is a foreign mosaic
	assert.Contains(t, out, "1000000 micro 0x39E0C49FA322A459")
}

func TestRenderInvalid(t *testing.T) {
	_, err := runCmd(t, "818301114100", "render", "--hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 0x6702")

	_, err = runCmd(t, "zz", "render", "--hex")
	assert.Error(t, err)

	_, err = runCmd(t, transferSequenceHex(t), "render", "--hex", "--network", "nonexistent")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(
		t,
		os.WriteFile(configFile, []byte("network: mainnet\noutput: json\n"), 0o600),
	)
	out, err := runCmd(t, transferSequenceHex(t), "render", "--hex", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "1 DHP"`)

	_, err = runCmd(t, "", "path", "m/0", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = runCmd(t, "", "path", "m/0", "--output", "xml")
	assert.Error(t, err)
	_, err = runCmd(t, "", "path", "m/0", "--log-level", "loud")
	assert.Error(t, err)
}

func TestAddressDerive(t *testing.T) {
	out, err := runCmd(
		t,
		"",
		"address", "derive", strings.Repeat("66", 31), "--network", "mainnet", "--output", "json",
	)
	// 31 bytes is not a public key
	assert.Error(t, err)
	assert.Empty(t, out)

	out, err = runCmd(
		t,
		"",
		"address", "derive", "58"+strings.Repeat("66", 31), "--network", "mainnet", "--output", "json",
	)
	require.NoError(t, err)
	var info addressInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(
		t,
		addressInfo{
			Address: "NCL4ENRIVVYKE5EIDS4FAFIOIO6FI2QQZ2NJMKI",
			Raw:     "6897C23628AD70A274881CB850150E43BC546A10CE9A9629",
			Network: "mainnet",
		},
		info,
	)
}

func TestAddressValidate(t *testing.T) {
	out, err := runCmd(
		t,
		"",
		"address", "validate", "TCL4ENRIVVYKE5EIDS4FAFIOIO6FI2QQZZQ6DSQ", "--output", "table",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Network:   testnet\n")

	_, err = runCmd(t, "", "address", "validate", "TCL4ENRIVVYKE5EIDS4FAFIOIO6FI2QQZZQ6DSA")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	out, err := runCmd(t, "", "path", "m/44'/10111'/0'/0'/0'", "--output", "json")
	require.NoError(t, err)
	var info pathInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(
		t,
		pathInfo{
			Path:     "m/44'/10111'/0'/0'/0'",
			Network:  "mainnet",
			Encoding: "058000002C8000277F800000008000000080000000",
		},
		info,
	)

	out, err = runCmd(t, "", "path", "--hex", "028000002C80000001", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Path:      m/44'/1'\n")
	assert.Contains(t, out, "Network:   testnet\n")

	_, err = runCmd(t, "", "path", "--hex", "028000002C800000")
	assert.Error(t, err)
	_, err = runCmd(t, "", "path", "--hex", "018000002C00")
	assert.Error(t, err)
	_, err = runCmd(t, "", "path", "m/1/2/3/4/5/6")
	assert.Error(t, err)
}

func TestRenderDump(t *testing.T) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(transferSequenceHex(t)))
	cmd.SetArgs([]string{"render", "--hex", "--dump", "--output", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "  0: Uint16 0x30 (length 2) 5441,\n")
	assert.Contains(t, stdout.String(), `"label": "Fee"`)
}
