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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/rehost/cmd/rehost/opts"
)

// NewCatalogCmd creates a new catalog command
func NewCatalogCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the hosted runner labels that get migrated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.LoadConfig(cmd.Context())
			if err != nil {
				return err
			}

			cat, err := cfg.Catalog()
			if err != nil {
				return err
			}

			for _, tok := range cat.Tokens() {
				fmt.Fprintln(o.Stdout, tok)
			}
			return nil
		},
	}
}
