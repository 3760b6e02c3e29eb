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

package field

// Field ids. An id only has meaning together with the data type it is used with
const (
	Int8MinRemovalDelta  uint8 = 0x01
	Int8MinApprovalDelta uint8 = 0x02

	Uint8MosaicCount             uint8 = 0x10
	Uint8NamespaceRegType        uint8 = 0x11
	Uint8AliasType               uint8 = 0x12
	Uint8MessageType             uint8 = 0x13
	Uint8SupplyChangeAction      uint8 = 0x14
	Uint8MultisigAddCount        uint8 = 0x15
	Uint8MultisigDelCount        uint8 = 0x16
	Uint8SupplyMutableFlag       uint8 = 0x17
	Uint8TransferableFlag        uint8 = 0x18
	Uint8RestrictableFlag        uint8 = 0x19
	Uint8Divisibility            uint8 = 0x1A
	Uint8KeyLinkType             uint8 = 0x1B
	Uint8AddressRestrictionCount uint8 = 0x1C
	Uint8MosaicRestrictionCount  uint8 = 0x1D
	Uint8OperationRestrictCount  uint8 = 0x1E

	Int16ValueSizeDelta uint8 = 0x20

	Uint16TransactionType       uint8 = 0x30
	Uint16InnerTransactionType  uint8 = 0x31
	Uint16DetailTransactionType uint8 = 0x32
	Uint16EntityRestrictOp      uint8 = 0x33
	Uint16RestrictionType       uint8 = 0x34
	Uint16RestrictionDirection  uint8 = 0x35
	Uint16RestrictionOperation  uint8 = 0x36

	Uint32VotingStartEpoch uint8 = 0x50
	Uint32VotingEndEpoch   uint8 = 0x51

	Uint64TransactionFee uint8 = 0x70
	Uint64Duration       uint8 = 0x71
	Uint64ParentId       uint8 = 0x72
	Uint64NamespaceId    uint8 = 0x73
	Uint64MosaicId       uint8 = 0x74
	Uint64SupplyDelta    uint8 = 0x75
	Uint64MetadataKey    uint8 = 0x76

	PublicKeyAccountLink uint8 = 0x80
	PublicKeyNodeLink    uint8 = 0x81
	PublicKeyVotingLink  uint8 = 0x82
	PublicKeyVrfLink     uint8 = 0x83

	StrRecipientAddress uint8 = 0x90
	StrMessage          uint8 = 0x91
	StrNamespace        uint8 = 0x92
	StrAddress          uint8 = 0x93
	StrMetadataValue    uint8 = 0x94
	StrMetadataAddress  uint8 = 0x95
	StrHarvesting       uint8 = 0x96
	StrHarvesting1      uint8 = 0x97
	StrHarvesting2      uint8 = 0x98
	StrHarvesting3      uint8 = 0x99

	Hash256AggregateHash uint8 = 0xB0
	Hash256LockHash      uint8 = 0xB1

	MosaicLockQuantity uint8 = 0xD0
	MosaicAmountId     uint8 = 0xD1
	UnknownMosaic      uint8 = 0xD2
)

// Message type values carried by Uint8MessageType
const (
	MessageTypePlain                uint8 = 0x00
	MessageTypeEncrypted            uint8 = 0x01
	MessageTypeHarvestingDelegation uint8 = 0xFE
)
