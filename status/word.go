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

package status

// Word is the two byte status returned to the host at the end of a command
type Word uint16

const (
	WordOK                      Word = 0x9000
	WordNoApduReceived          Word = 0x6982
	WordUnknownInstructionClass Word = 0x6E00
	WordUnknownInstruction      Word = 0x6D00
	WordWrongApduDataLength     Word = 0x6A87

	WordInvalidPkgKeyLength Word = 0x6A80
	WordInvalidBip32PathLen Word = 0x6A81
	WordInvalidP1OrP2       Word = 0x6B00
	WordWrongResponseLength Word = 0xB000
	WordAddressRejected     Word = 0x6985
	WordTransactionRejected Word = 0x6986
	WordInvalidSigningOrder Word = 0x6A82
	WordSigningDataTooLarge Word = 0x6700
	WordTooManyFields       Word = 0x6701
	WordInvalidTransaction  Word = 0x6702
	WordInvalidSigningState Word = 0x6703
	WordInternalError       Word = 0x6A83
)

var wordNames = map[Word]string{
	WordOK:                      "OK",
	WordNoApduReceived:          "no APDU received",
	WordUnknownInstructionClass: "unknown instruction class",
	WordUnknownInstruction:      "unknown instruction",
	WordWrongApduDataLength:     "wrong APDU data length",
	WordInvalidPkgKeyLength:     "invalid key package length",
	WordInvalidBip32PathLen:     "invalid BIP32 path length",
	WordInvalidP1OrP2:           "invalid P1 or P2",
	WordWrongResponseLength:     "wrong response length",
	WordAddressRejected:         "address rejected",
	WordTransactionRejected:     "transaction rejected",
	WordInvalidSigningOrder:     "invalid signing packet order",
	WordSigningDataTooLarge:     "signing data too large",
	WordTooManyFields:           "too many transaction fields",
	WordInvalidTransaction:      "invalid transaction data",
	WordInvalidSigningState:     "invalid internal signing state",
	WordInternalError:           "internal error",
}

func (w Word) String() string {
	if name, ok := wordNames[w]; ok {
		return name
	}
	return "unknown status word"
}

// Bytes returns the word as sent on the wire (SW1, SW2)
func (w Word) Bytes() [2]byte {
	return [2]byte{byte(w >> 8), byte(w)}
}

// WordFromCode maps a core outcome to the status word of a rejected transaction
func WordFromCode(code Code) Word {
	switch code {
	case Success:
		return WordOK
	case TooManyFields:
		return WordTooManyFields
	case NotEnoughData, InvalidData:
		return WordInvalidTransaction
	default:
		return WordInternalError
	}
}

// WordFromError maps an error returned by the core to a status word
func WordFromError(err error) Word {
	return WordFromCode(CodeOf(err))
}
