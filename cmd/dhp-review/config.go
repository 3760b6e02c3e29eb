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


package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/buffer"
	"github.com/blinklabs-io/dhpreview/format"
	"github.com/spf13/viper"
)

const (
	envPrefix = "DHP_REVIEW"

	outputAuto  = "auto"
	outputTable = "table"
	outputJSON  = "json"
)

type config struct {
	Network   string `mapstructure:"network"`
	Path      string `mapstructure:"path"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Output    string `mapstructure:"output"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("network", dhpreview.NetworkTestnet.Name)
	v.SetDefault("path", "")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")
	v.SetDefault("output", outputAuto)
	return v
}

// loadConfig reads the optional config file and returns the merged result of
// defaults, config file, environment and flags
func loadConfig(v *viper.Viper, configFile string) (*config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	switch cfg.Output {
	case outputAuto, outputTable, outputJSON:
	default:
		return nil, fmt.Errorf("invalid output format: %s", cfg.Output)
	}
	return cfg, nil
}

// renderContext returns the rendering context from the signing path when one
// is configured, and from the network name otherwise
func (c *config) renderContext() (*format.Context, error) {
	if c.Path != "" {
		path, err := buffer.ParseBip32Path(c.Path)
		if err != nil {
			return nil, err
		}
		return format.NewContext(path), nil
	}
	network := dhpreview.NetworkByName(c.Network)
	if !network.Valid() {
		return nil, fmt.Errorf("invalid network specified: %s", c.Network)
	}
	return format.NetworkContext(network), nil
}

func (c *config) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch c.LogFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.New("invalid log format: " + c.LogFormat)
	}
}
