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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsSentinel(t *testing.T) {
	err := New(NotEnoughData, "seek")
	assert.ErrorIs(t, err, ErrNotEnoughData)
	assert.NotErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, "seek: not enough data", err.Error())

	wrapped := fmt.Errorf("field 3: %w", Wrap(InvalidData, "decode", errors.New("bad type")))
	assert.ErrorIs(t, wrapped, ErrInvalidData)
	assert.Equal(t, InvalidData, CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	testDefs := []struct {
		err      error
		expected Code
	}{
		{err: nil, expected: Success},
		{err: ErrNotEnoughData, expected: NotEnoughData},
		{err: ErrTooManyFields, expected: TooManyFields},
		{err: ErrInvalidData, expected: InvalidData},
		{err: errors.New("something else"), expected: InvalidData},
		{err: New(TooManyFields, "add"), expected: TooManyFields},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, CodeOf(testDef.err))
	}
}

func TestWordFromError(t *testing.T) {
	assert.Equal(t, WordOK, WordFromError(nil))
	assert.Equal(t, WordTooManyFields, WordFromError(ErrTooManyFields))
	assert.Equal(t, WordInvalidTransaction, WordFromError(ErrNotEnoughData))
	assert.Equal(t, WordInvalidTransaction, WordFromError(New(InvalidData, "x")))
	assert.Equal(t, [2]byte{0x67, 0x01}, WordTooManyFields.Bytes())
	assert.Equal(t, "too many transaction fields", WordTooManyFields.String())
	assert.Equal(t, "unknown status word", Word(0x1234).String())
}
