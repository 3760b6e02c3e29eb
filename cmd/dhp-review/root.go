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
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	viper      *viper.Viper
	configFile string
	cfg        *config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		viper: newViper(),
	}
	rootCmd := &cobra.Command{
		Use:   "dhp-review",
		Short: "Render DHP transaction fields the way the wallet device shows them",
		Long: `dhp-review decodes a sequence of transaction fields and prints the
label and value screens a DHP hardware wallet shows before signing.
It also derives and validates account addresses and parses BIP32 paths.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.viper, a.configFile)
			if err != nil {
				return err
			}
			logger, err := cfg.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to a YAML config file")
	flags.String("network", "testnet", "network to render for (mainnet or testnet)")
	flags.String(
		"path",
		"",
		"BIP32 signing path, e.g. m/44'/10111'/0'/0'/0'. this overrides the --network option",
	)
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	flags.String("output", outputAuto, "output format (auto, table or json)")
	for _, key := range []string{"network", "path", "log-level", "log-format", "output"} {
		// Only fails for a nil flag
		_ = a.viper.BindPFlag(key, flags.Lookup(key))
	}
	rootCmd.AddCommand(
		newRenderCmd(a),
		newAddressCmd(a),
		newPathCmd(a),
	)
	return rootCmd
}

// useTable reports whether output should be an aligned table rather than JSON
func (a *app) useTable(cmd *cobra.Command) bool {
	switch a.cfg.Output {
	case outputTable:
		return true
	case outputJSON:
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
