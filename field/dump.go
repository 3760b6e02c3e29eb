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
	"strings"
)

// Dump returns a listing of the fields in a, one per line with the data as
// hex, for debugging field producers. Each line starts with prefix
func (a *Array) Dump(prefix string) string {
	var ret strings.Builder
	ret.WriteString(fmt.Sprintf("%s[\n", prefix))
	for idx, f := range a.All() {
		ret.WriteString(
			fmt.Sprintf(
				"%s  %d: %s 0x%02X (length %d) %X,\n",
				prefix,
				idx,
				f.DataType,
				f.ID,
				f.Length,
				f.Bytes(),
			),
		)
	}
	ret.WriteString(fmt.Sprintf("%s]\n", prefix))
	return ret.String()
}
