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

package printer

import (
	"math/big"

	"github.com/blinklabs-io/dhpreview/status"
	"github.com/shopspring/decimal"
)

// Amount writes an integer amount of the smallest asset unit as a decimal
// number with divisibility fractional digits, followed by a space and the
// asset ticker when asset is not empty.
//
// Trailing zeros of the fraction are dropped, and so is the decimal point when
// nothing follows it: 1500000 with divisibility 6 prints as "1.5", 2000000 as
// "2" and 0 as "0"
func Amount(dst []byte, amount uint64, divisibility uint8, asset string) (int, error) {
	value := decimal.NewFromBigInt(
		new(big.Int).SetUint64(amount),
		-int32(divisibility),
	)
	text := value.String()
	size := len(text)
	if asset != "" {
		size += 1 + len(asset)
	}
	if size > len(dst)-1 {
		return 0, status.New(status.NotEnoughData, "print amount")
	}
	n := copy(dst, text)
	if asset != "" {
		dst[n] = ' '
		n++
		n += copy(dst[n:], asset)
	}
	dst[n] = 0
	return n, nil
}
