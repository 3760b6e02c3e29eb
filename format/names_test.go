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
	"testing"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/field"
	"github.com/stretchr/testify/assert"
)

func TestFieldName(t *testing.T) {
	testDefs := []struct {
		dataType field.DataType
		id       uint8
		expected string
	}{
		{field.TypeInt8, field.Int8MinRemovalDelta, "Min Removal"},
		{field.TypeInt8, field.Int8MinApprovalDelta, "Min Approval"},
		{field.TypeUint8, field.Uint8MessageType, "Message Type"},
		{field.TypeUint8, field.Uint8MosaicCount, "Mosaics"},
		{field.TypeUint8, field.Uint8SupplyChangeAction, "Change Direction"},
		{field.TypeUint8, field.Uint8KeyLinkType, "Action"},
		{field.TypeUint8, field.Uint8MultisigDelCount, "Address Del Num"},
		{field.TypeInt16, field.Int16ValueSizeDelta, "Value Size Delta"},
		{field.TypeUint16, field.Uint16DetailTransactionType, "Detail TX Type"},
		{field.TypeUint16, field.Uint16RestrictionType, "Restriction Flag"},
		{field.TypeUint16, field.Uint16RestrictionDirection, "Restriction Flag"},
		{field.TypeUint16, field.Uint16RestrictionOperation, "Restriction Flag"},
		{field.TypeUint32, field.Uint32VotingEndEpoch, "End point"},
		{field.TypeUint64, field.Uint64SupplyDelta, "Change Amount"},
		{field.TypeUint64, field.Uint64ParentId, "Parent ID"},
		{field.TypeHash256, field.Hash256AggregateHash, "Agg. Tx Hash"},
		{field.TypePublicKey, field.PublicKeyAccountLink, "Linked Acct. PbK"},
		{field.TypeAddress, field.StrRecipientAddress, "Recipient"},
		{field.TypeAddress, field.StrMetadataAddress, "Target Address"},
		{field.TypeMosaicCurrency, field.MosaicLockQuantity, "Lock Quantity"},
		{field.TypeDHP, field.Uint64TransactionFee, "Fee"},
		{field.TypeMessage, field.StrMetadataValue, "Value"},
		{field.TypeHexMessage, field.StrHarvesting, "Harvesting Message"},
		{field.TypeHexMessage, field.StrHarvesting3, "Harvest. Msg 3"},
		{field.TypeString, field.UnknownMosaic, "Unknown Mosaic"},
		{field.TypeString, field.StrNamespace, "Name"},
		{field.TypeUint8Addition, field.Uint8MosaicRestrictionCount, "Addition Count"},
		{field.TypeUint8Deletion, field.Uint8OperationRestrictCount, "Deletion Count"},
		// Ids only have a name together with their data type
		{field.TypeUint64, field.Uint64TransactionFee, "Unknown Field"},
		{field.TypeUint8, field.Int8MinRemovalDelta, "Unknown Field"},
		{field.TypeString, field.StrMessage, "Unknown Field"},
		{field.DataType(0x42), 0x01, "Unknown Field"},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			testDef.expected,
			FieldName(testDef.dataType, testDef.id),
			"%s 0x%02X",
			testDef.dataType,
			testDef.id,
		)
	}
}

func TestLabelsFit(t *testing.T) {
	for dt := range 256 {
		for id := range 256 {
			name := FieldName(field.DataType(dt), uint8(id))
			assert.Less(t, len(name), dhpreview.MaxFieldNameLen, name)
		}
	}
}

func TestResolveName(t *testing.T) {
	var label Label
	for i := range label {
		label[i] = 'x'
	}
	label.Resolve(field.Field{ID: field.Uint64TransactionFee, DataType: field.TypeDHP})
	assert.Equal(t, "Fee", label.String())
	assert.Equal(t, Label{'F', 'e', 'e'}, label)

	dst := make([]byte, 8)
	n := ResolveName(field.Field{ID: field.StrHarvesting, DataType: field.TypeHexMessage}, dst)
	assert.Equal(t, 7, n)
	assert.Equal(t, "Harvest\x00", string(dst))
}

func TestNewContext(t *testing.T) {
	testDefs := []struct {
		path    []uint32
		network dhpreview.Network
	}{
		{path: []uint32{0x8000002C, 0x8000277F, 0x80000000}, network: dhpreview.NetworkMainnet},
		// Hardening does not matter
		{path: []uint32{0x8000002C, 10111}, network: dhpreview.NetworkMainnet},
		{path: []uint32{0x8000002C, 0x80000001}, network: dhpreview.NetworkTestnet},
		{path: []uint32{0x8000002C}, network: dhpreview.NetworkTestnet},
		{path: nil, network: dhpreview.NetworkTestnet},
	}
	for _, testDef := range testDefs {
		ctx := NewContext(testDef.path)
		assert.Equal(t, testDef.network, ctx.Network)
		assert.Equal(t, testDef.network.CurrencyMosaicId, ctx.CurrencyMosaicId())
	}
}

func TestNilContext(t *testing.T) {
	var ctx *Context
	assert.False(t, ctx.IsMainnet())
	assert.Equal(t, dhpreview.TestnetCurrencyMosaicId, ctx.CurrencyMosaicId())
	assert.True(t, NetworkContext(dhpreview.NetworkMainnet).IsMainnet())
	assert.False(t, NetworkContext(dhpreview.NetworkInvalid).IsMainnet())
}
