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

import (
	"fmt"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/status"
)

// DataType is the discriminant that tells how the bytes of a field are decoded
// and displayed
type DataType uint8

const (
	TypeInt8      DataType = 0x01
	TypeUint8     DataType = 0x02
	TypeInt16     DataType = 0x03
	TypeUint16    DataType = 0x04
	TypeUint32    DataType = 0x05
	TypeUint64    DataType = 0x06
	TypeHash256   DataType = 0x07
	TypePublicKey DataType = 0x08
	TypeString    DataType = 0x17

	// Types specific to DHP transactions
	TypeDHP            DataType = 0xA0 // native currency amount
	TypeMosaicCurrency DataType = 0xA1 // mosaic id and amount
	TypeMessage        DataType = 0xA2
	TypeAddress        DataType = 0xA3
	TypeHexMessage     DataType = 0xA4
	TypeUint8Addition  DataType = 0xA5
	TypeUint8Deletion  DataType = 0xA6
)

var dataTypeNames = map[DataType]string{
	TypeInt8:           "Int8",
	TypeUint8:          "Uint8",
	TypeInt16:          "Int16",
	TypeUint16:         "Uint16",
	TypeUint32:         "Uint32",
	TypeUint64:         "Uint64",
	TypeHash256:        "Hash256",
	TypePublicKey:      "PublicKey",
	TypeString:         "String",
	TypeDHP:            "DHP",
	TypeMosaicCurrency: "MosaicCurrency",
	TypeMessage:        "Message",
	TypeAddress:        "Address",
	TypeHexMessage:     "HexMessage",
	TypeUint8Addition:  "Uint8Addition",
	TypeUint8Deletion:  "Uint8Deletion",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(0x%02X)", uint8(t))
}

// Known reports whether t belongs to the closed set of data types
func (t DataType) Known() bool {
	_, ok := dataTypeNames[t]
	return ok
}

// Size returns the number of bytes a field of this type carries, or 0 for the
// variable length types
func (t DataType) Size() int {
	switch t {
	case TypeInt8, TypeUint8, TypeUint8Addition, TypeUint8Deletion:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeUint32:
		return 4
	case TypeUint64, TypeDHP:
		return 8
	case TypeMosaicCurrency:
		return dhpreview.MosaicLength
	case TypeHash256:
		return dhpreview.TransactionHashLength
	case TypePublicKey:
		return dhpreview.PublicKeyLength
	case TypeAddress:
		return dhpreview.AddressLength
	default:
		return 0
	}
}

// Validate returns an error for a data type outside the closed set
func (t DataType) Validate() error {
	if !t.Known() {
		return status.Wrap(
			status.InvalidData,
			"validate data type",
			fmt.Errorf("unknown data type 0x%02X", uint8(t)),
		)
	}
	return nil
}
