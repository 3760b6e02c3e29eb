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


package review

import (
	"log/slog"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/format"
)

// ReviewConfig holds configuration for a Reviewer.
type ReviewConfig struct {
	// Logger receives per-field debug output and warnings about rejected
	// fields. Field values are never logged.
	Logger *slog.Logger
	// Context is the rendering context of the transaction. A nil Context
	// renders for testnet.
	Context *format.Context
	// MaxFields limits the number of fields accepted for one transaction.
	MaxFields int
}

// DefaultReviewConfig returns a ReviewConfig with the device limits and the
// default logger.
func DefaultReviewConfig() ReviewConfig {
	return ReviewConfig{
		Logger:    slog.Default(),
		MaxFields: dhpreview.MaxFieldCount,
	}
}

// ReviewOption is a functional option for configuring a Reviewer.
type ReviewOption func(*ReviewConfig)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) ReviewOption {
	return func(c *ReviewConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithContext sets the rendering context.
func WithContext(ctx *format.Context) ReviewOption {
	return func(c *ReviewConfig) {
		c.Context = ctx
	}
}

// WithPath sets the rendering context from the BIP32 signing path.
func WithPath(path []uint32) ReviewOption {
	return func(c *ReviewConfig) {
		c.Context = format.NewContext(path)
	}
}

// WithNetwork sets the rendering context for a network when no signing path
// is known.
func WithNetwork(network dhpreview.Network) ReviewOption {
	return func(c *ReviewConfig) {
		c.Context = format.NetworkContext(network)
	}
}

// WithMaxFields sets the maximum number of fields. Values outside
// 1..MaxFieldCount are clamped.
func WithMaxFields(maxFields int) ReviewOption {
	return func(c *ReviewConfig) {
		c.MaxFields = min(max(maxFields, 1), dhpreview.MaxFieldCount)
	}
}
