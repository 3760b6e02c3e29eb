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
	"iter"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/status"
)

// Array is the ordered list of fields extracted from one transaction. Its
// capacity is fixed at MaxFieldCount and the zero value is ready to use
type Array struct {
	fields [dhpreview.MaxFieldCount]Field
	n      int
}

// Add appends f, failing with status.ErrTooManyFields once the array is full
func (a *Array) Add(f Field) error {
	if a.n >= len(a.fields) {
		return status.New(status.TooManyFields, "add field")
	}
	a.fields[a.n] = f
	a.n++
	return nil
}

// Len returns the number of fields added so far
func (a *Array) Len() int {
	return a.n
}

// Cap returns the maximum number of fields the array can hold
func (a *Array) Cap() int {
	return len(a.fields)
}

// At returns the field at index i in parse order
func (a *Array) At(i int) (Field, bool) {
	if i < 0 || i >= a.n {
		return Field{}, false
	}
	return a.fields[i], true
}

// Fields returns the added fields as a slice backed by the array
func (a *Array) Fields() []Field {
	return a.fields[:a.n:a.n]
}

// All iterates over the fields in parse order
func (a *Array) All() iter.Seq2[int, Field] {
	return func(yield func(int, Field) bool) {
		for i := range a.n {
			if !yield(i, a.fields[i]) {
				return
			}
		}
	}
}

// Reset empties the array and drops the references to field data
func (a *Array) Reset() {
	clear(a.fields[:a.n])
	a.n = 0
}
