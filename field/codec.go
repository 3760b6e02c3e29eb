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
	"errors"
	"fmt"
	"math"

	"github.com/blinklabs-io/dhpreview/cbor"
	"github.com/blinklabs-io/dhpreview/status"
	"github.com/jinzhu/copier"
)

// record is the wire form of a field: a CBOR array of [id, dataType, data]
type record struct {
	cbor.StructAsArray
	ID       uint8
	DataType DataType
	Data     []byte
}

func (r *record) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 || data[0]&cbor.CborTypeMask != cbor.CborTypeArray {
		return errors.New("field record is not a CBOR array")
	}
	return cbor.DecodeGeneric(data, r)
}

// MarshalSequence encodes the fields of a as a CBOR array of records
func MarshalSequence(a *Array) ([]byte, error) {
	records := make([]record, 0, a.Len())
	for _, f := range a.All() {
		records = append(
			records,
			record{
				ID:       f.ID,
				DataType: f.DataType,
				Data:     f.Bytes(),
			},
		)
	}
	return cbor.Encode(records)
}

// UnmarshalSequence decodes a CBOR field sequence into a new Array. Every
// record is validated, and a sequence longer than the array capacity fails
// with status.ErrTooManyFields. The returned fields own copies of their bytes
// and stay valid after data is modified or released
func UnmarshalSequence(data []byte) (*Array, error) {
	var records []record
	n, err := cbor.Decode(data, &records)
	if err != nil {
		return nil, status.Wrap(status.InvalidData, "decode field sequence", err)
	}
	if n != len(data) {
		return nil, status.Wrap(
			status.InvalidData,
			"decode field sequence",
			fmt.Errorf("%d trailing bytes after field sequence", len(data)-n),
		)
	}
	ret := &Array{}
	for idx, rec := range records {
		var f Field
		if err := copier.Copy(&f, &rec); err != nil {
			return nil, status.Wrap(status.InvalidData, "decode field sequence", err)
		}
		if len(f.Data) > math.MaxUint16 {
			return nil, status.Wrap(
				status.InvalidData,
				"decode field sequence",
				fmt.Errorf("record %d: data length %d exceeds maximum", idx, len(f.Data)),
			)
		}
		f.Length = uint16(len(f.Data))
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		if err := ret.Add(f); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
