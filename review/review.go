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


// Package review runs the display side of transaction signing: it takes the
// fields extracted from a transaction and produces the ordered label and value
// pairs the user confirms before signing.
package review

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/dhpreview/field"
	"github.com/blinklabs-io/dhpreview/format"
	"github.com/blinklabs-io/dhpreview/status"
)

// Pair is one rendered screen of the review
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Reviewer struct {
	config ReviewConfig
	logger *slog.Logger
}

// New returns a Reviewer configured by the given options
func New(opts ...ReviewOption) *Reviewer {
	config := DefaultReviewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Reviewer{
		config: config,
		logger: config.Logger,
	}
}

// Context returns the rendering context used by the reviewer
func (r *Reviewer) Context() *format.Context {
	return r.config.Context
}

// Review renders every field of fields in order. Too many fields or a field
// that fails validation aborts the review. The returned error carries a
// status code, use status.WordFromError to get the status word for it. A nil
// array is reviewed as empty
func (r *Reviewer) Review(fields *field.Array) ([]Pair, error) {
	if fields == nil {
		fields = &field.Array{}
	}
	if fields.Len() > r.config.MaxFields {
		r.logger.Warn(
			"rejecting transaction with too many fields",
			"fields",
			fields.Len(),
			"max_fields",
			r.config.MaxFields,
		)
		return nil, status.New(status.TooManyFields, "review")
	}
	ret := make([]Pair, 0, fields.Len())
	var label format.Label
	var value format.Value
	for idx, f := range fields.All() {
		if err := f.Validate(); err != nil {
			r.logger.Warn(
				"rejecting invalid field",
				"index",
				idx,
				"type",
				f.DataType.String(),
				"id",
				f.ID,
				"error",
				err,
			)
			return nil, fmt.Errorf("field %d: %w", idx, err)
		}
		label.Resolve(f)
		if err := value.Format(r.config.Context, f); err != nil {
			r.logger.Warn(
				"failed to render field",
				"index",
				idx,
				"type",
				f.DataType.String(),
				"id",
				f.ID,
				"error",
				err,
			)
			return nil, fmt.Errorf("field %d: %w", idx, err)
		}
		r.logger.Debug(
			"rendered field",
			"index",
			idx,
			"type",
			f.DataType.String(),
			"id",
			f.ID,
			"label",
			label.String(),
		)
		ret = append(
			ret,
			Pair{
				Label: label.String(),
				Value: value.String(),
			},
		)
	}
	return ret, nil
}

// ReviewSequence decodes a CBOR field sequence and reviews it
func (r *Reviewer) ReviewSequence(data []byte) ([]Pair, error) {
	fields, err := field.UnmarshalSequence(data)
	if err != nil {
		r.logger.Warn("rejecting field sequence", "error", err)
		return nil, err
	}
	return r.Review(fields)
}
