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

package opts

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/rehost/pkg/config"
	"github.com/walteh/rehost/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is loaded when present and no --config is given
const DefaultConfigFile = ".rehost.yaml"

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	EnvFile    string
	Stdout     io.Writer
	Stderr     io.Writer
}

// LoadConfig loads the config file, or the defaults when there is none
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	path := o.ConfigFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			zerolog.Ctx(ctx).Debug().Msg("no config file, using defaults")
			return config.Default(), nil
		}
		path = DefaultConfigFile
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Logger returns the console logger for command output
func (o *RootOpts) Logger(ctx context.Context) *log.Logger {
	return log.New(o.Stdout, *zerolog.Ctx(ctx))
}
