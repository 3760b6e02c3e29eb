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

// Package status defines the closed set of outcomes reported by the cursor,
// the string builders and the field model, and maps them to the status words
// returned to the host.
package status

import (
	"errors"
	"fmt"
)

// Code is the outcome of a parsing or printing step
type Code int8

const (
	Success       Code = 0
	NotEnoughData Code = -1
	InvalidData   Code = -2
	TooManyFields Code = -3
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case NotEnoughData:
		return "not enough data"
	case InvalidData:
		return "invalid data"
	case TooManyFields:
		return "too many fields"
	default:
		return fmt.Sprintf("unknown status code %d", int8(c))
	}
}

// Sentinel errors so callers can use errors.Is
var (
	ErrNotEnoughData = errors.New("not enough data")
	ErrInvalidData   = errors.New("invalid data")
	ErrTooManyFields = errors.New("too many fields")
)

// Error carries the code of a failed operation along with the operation name
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel error for the code
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Code)
}

// New returns an *Error for the given operation
func New(code Code, op string) error {
	return &Error{Code: code, Op: op}
}

// Wrap returns an *Error for the given operation that wraps err
func Wrap(code Code, op string, err error) error {
	return &Error{Code: code, Op: op, Err: err}
}

// CodeOf returns the code carried by err. Errors from outside this package are
// reported as InvalidData
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var statusErr *Error
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	switch {
	case errors.Is(err, ErrNotEnoughData):
		return NotEnoughData
	case errors.Is(err, ErrTooManyFields):
		return TooManyFields
	default:
		return InvalidData
	}
}

func sentinel(code Code) error {
	switch code {
	case NotEnoughData:
		return ErrNotEnoughData
	case InvalidData:
		return ErrInvalidData
	case TooManyFields:
		return ErrTooManyFields
	default:
		return nil
	}
}
