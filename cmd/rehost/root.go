// Copyright 2025 walteh LLC
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
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rehost/cmd/rehost/commands"
	"github.com/walteh/rehost/cmd/rehost/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRootCmd creates the rehost command tree
func NewRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rehost",
		Short: "Move GitHub Actions workflows from hosted to self-hosted runners",
		Long: `rehost rewrites runs-on fields that name GitHub-hosted runner images
(ubuntu-latest, windows-2022, macos-14, ...) to your self-hosted runner labels.
Every modified file is backed up first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(o.Stderr, o.Debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))

			// Values already in the environment win over the env file
			if o.EnvFile != "" {
				if err := godotenv.Load(o.EnvFile); err != nil {
					return errors.Errorf("loading env file: %w", err)
				}
				logger.Debug().Str("path", o.EnvFile).Msg("loaded env file")
			}
			return nil
		},
	}

	rootCmd.SetOut(o.Stdout)
	rootCmd.SetErr(o.Stderr)

	// Add shared flags
	rootCmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (.yaml, .hcl or .json; default "+opts.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&o.EnvFile, "env-file", "", "dotenv file exposed to HCL configs through env")

	// Add commands
	rootCmd.AddCommand(
		commands.NewMigrateCmd(o),
		commands.NewCheckCmd(o),
		commands.NewCatalogCmd(o),
		newVersionCmd(o),
	)

	return rootCmd
}

// setupLogging creates the structured logger; console output already covers info level
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
