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

// Transaction types
const (
	TransactionTypeTransfer                    uint16 = 0x4154
	TransactionTypeRegisterNamespace           uint16 = 0x414E
	TransactionTypeAddressAlias                uint16 = 0x424E
	TransactionTypeMosaicAlias                 uint16 = 0x434E
	TransactionTypeMosaicDefinition            uint16 = 0x414D
	TransactionTypeMosaicSupplyChange          uint16 = 0x424D
	TransactionTypeModifyMultisigAccount       uint16 = 0x4155
	TransactionTypeAggregateComplete           uint16 = 0x4141
	TransactionTypeAggregateBonded             uint16 = 0x4241
	TransactionTypeAccountMetadata             uint16 = 0x4144
	TransactionTypeMosaicMetadata              uint16 = 0x4244
	TransactionTypeNamespaceMetadata           uint16 = 0x4344
	TransactionTypeAccountAddressRestriction   uint16 = 0x4150
	TransactionTypeAccountMosaicRestriction    uint16 = 0x4250
	TransactionTypeAccountOperationRestriction uint16 = 0x4350
	TransactionTypeMosaicAddressRestriction    uint16 = 0x4251
	TransactionTypeMosaicGlobalRestriction     uint16 = 0x4151
	TransactionTypeAccountKeyLink              uint16 = 0x414C
	TransactionTypeNodeKeyLink                 uint16 = 0x424C
	TransactionTypeVotingKeyLink               uint16 = 0x4143
	TransactionTypeVrfKeyLink                  uint16 = 0x4243
	TransactionTypeFundsLock                   uint16 = 0x4148
	TransactionTypeSecretLock                  uint16 = 0x4152
	TransactionTypeSecretProof                 uint16 = 0x4252
)

// TransactionTypeName returns the display name of a transaction type, or
// "Unknown"
func TransactionTypeName(txType uint16) string {
	switch txType {
	case TransactionTypeTransfer:
		return "Transfer"
	case TransactionTypeRegisterNamespace:
		return "Namespace Registration"
	case TransactionTypeAccountMetadata:
		return "Account Metadata"
	case TransactionTypeMosaicMetadata:
		return "Mosaic Metadata"
	case TransactionTypeNamespaceMetadata:
		return "Namespace Metadata"
	case TransactionTypeAddressAlias:
		return "Address Alias"
	case TransactionTypeMosaicAlias:
		return "Mosaic Alias"
	case TransactionTypeAccountAddressRestriction:
		return "Account Address Restriction"
	case TransactionTypeAccountMosaicRestriction:
		return "Account Mosaic Restriction"
	case TransactionTypeAccountOperationRestriction:
		return "Account Operation Restriction"
	case TransactionTypeMosaicAddressRestriction:
		return "Mosaic Address Restriction"
	case TransactionTypeMosaicGlobalRestriction:
		return "Mosaic Global Restriction"
	case TransactionTypeMosaicDefinition:
		return "Mosaic definition"
	case TransactionTypeMosaicSupplyChange:
		return "Mosaic Supply Change"
	case TransactionTypeModifyMultisigAccount:
		return "Multisig Account Modification"
	case TransactionTypeAccountKeyLink:
		return "Account Key Link"
	case TransactionTypeNodeKeyLink:
		return "Node Key Link"
	case TransactionTypeVotingKeyLink:
		return "Voting Key Link"
	case TransactionTypeVrfKeyLink:
		return "Vrf Key Link"
	case TransactionTypeAggregateComplete:
		return "Aggregate Complete"
	case TransactionTypeAggregateBonded:
		return "Aggregate Bonded"
	case TransactionTypeFundsLock:
		return "Funds Lock"
	case TransactionTypeSecretLock:
		return "Secret Lock"
	case TransactionTypeSecretProof:
		return "Secret Proof"
	default:
		return "Unknown"
	}
}
