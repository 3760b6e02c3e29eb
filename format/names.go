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
	"github.com/blinklabs-io/dhpreview/field"
	"github.com/blinklabs-io/dhpreview/printer"
)

const unknownFieldName = "Unknown Field"

// FieldName returns the label shown for a field with the given data type and
// id. Combinations without a label give "Unknown Field"
func FieldName(dataType field.DataType, id uint8) string {
	switch dataType {
	case field.TypeInt8:
		switch id {
		case field.Int8MinRemovalDelta:
			return "Min Removal"
		case field.Int8MinApprovalDelta:
			return "Min Approval"
		}
	case field.TypeUint8:
		switch id {
		case field.Uint8MessageType:
			return "Message Type"
		case field.Uint8MosaicCount:
			return "Mosaics"
		case field.Uint8SupplyChangeAction:
			return "Change Direction"
		case field.Uint8NamespaceRegType:
			return "Namespace Type"
		case field.Uint8AliasType:
			return "Alias Type"
		case field.Uint8Divisibility:
			return "Divisibility"
		case field.Uint8KeyLinkType:
			return "Action"
		case field.Uint8TransferableFlag:
			return "Transferable"
		case field.Uint8SupplyMutableFlag:
			return "Supply Mutable"
		case field.Uint8RestrictableFlag:
			return "Restrictable"
		case field.Uint8MultisigAddCount:
			return "Address Add Num"
		case field.Uint8MultisigDelCount:
			return "Address Del Num"
		}
	case field.TypeInt16:
		if id == field.Int16ValueSizeDelta {
			return "Value Size Delta"
		}
	case field.TypeUint16:
		switch id {
		case field.Uint16TransactionType:
			return "Transaction Type"
		case field.Uint16InnerTransactionType:
			return "Inner TX Type"
		case field.Uint16DetailTransactionType:
			return "Detail TX Type"
		case field.Uint16EntityRestrictOp:
			return "Operation Type"
		case field.Uint16RestrictionType,
			field.Uint16RestrictionDirection,
			field.Uint16RestrictionOperation:
			return "Restriction Flag"
		}
	case field.TypeUint32:
		switch id {
		case field.Uint32VotingStartEpoch:
			return "Start point"
		case field.Uint32VotingEndEpoch:
			return "End point"
		}
	case field.TypeUint64:
		switch id {
		case field.Uint64Duration:
			return "Duration"
		case field.Uint64ParentId:
			return "Parent ID"
		case field.Uint64SupplyDelta:
			return "Change Amount"
		case field.Uint64NamespaceId:
			return "Namespace ID"
		case field.Uint64MosaicId:
			return "Mosaic ID"
		case field.Uint64MetadataKey:
			return "Metadata Key"
		}
	case field.TypeHash256:
		switch id {
		case field.Hash256AggregateHash:
			return "Agg. Tx Hash"
		case field.Hash256LockHash:
			return "Tx Hash"
		}
	case field.TypePublicKey:
		switch id {
		case field.PublicKeyAccountLink:
			return "Linked Acct. PbK"
		case field.PublicKeyNodeLink:
			return "Linked Node PbK"
		case field.PublicKeyVotingLink:
			return "Linked Vot. PbK"
		case field.PublicKeyVrfLink:
			return "Linked Vrf PbK"
		}
	case field.TypeAddress:
		switch id {
		case field.StrRecipientAddress:
			return "Recipient"
		case field.StrMetadataAddress:
			return "Target Address"
		case field.StrAddress:
			return "Address"
		}
	case field.TypeMosaicCurrency:
		switch id {
		case field.MosaicAmountId:
			return "Amount"
		case field.MosaicLockQuantity:
			return "Lock Quantity"
		}
	case field.TypeDHP:
		if id == field.Uint64TransactionFee {
			return "Fee"
		}
	case field.TypeMessage:
		switch id {
		case field.StrMessage:
			return "Message"
		case field.StrMetadataValue:
			return "Value"
		}
	case field.TypeHexMessage:
		switch id {
		case field.StrHarvesting:
			return "Harvesting Message"
		case field.StrHarvesting1:
			return "Harvest. Msg 1"
		case field.StrHarvesting2:
			return "Harvest. Msg 2"
		case field.StrHarvesting3:
			return "Harvest. Msg 3"
		}
	case field.TypeString:
		switch id {
		case field.UnknownMosaic:
			return "Unknown Mosaic"
		case field.StrRecipientAddress:
			return "Recipient"
		case field.StrNamespace:
			return "Name"
		}
	case field.TypeUint8Addition:
		switch id {
		case field.Uint8AddressRestrictionCount,
			field.Uint8MosaicRestrictionCount,
			field.Uint8OperationRestrictCount:
			return "Addition Count"
		}
	case field.TypeUint8Deletion:
		switch id {
		case field.Uint8AddressRestrictionCount,
			field.Uint8MosaicRestrictionCount,
			field.Uint8OperationRestrictCount:
			return "Deletion Count"
		}
	}
	return unknownFieldName
}

// ResolveName clears dst and writes the label of f into it, cut to fit
func ResolveName(f field.Field, dst []byte) int {
	b := printer.NewBuilder(dst)
	b.WriteString(FieldName(f.DataType, f.ID))
	return b.Len()
}
