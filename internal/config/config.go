// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the user-tunable command defaults. Engine
// invariants (batch count bounds, validation rules) are not configurable.
package config

import (
	"fmt"
	"slices"

	"github.com/jlsalvador/simple-devtools/pkg/digest"
	"github.com/jlsalvador/simple-devtools/pkg/uuid"
)

// EnvConfigFile names the environment variable pointing at the defaults
// file, for when the -cfgfile flag is not given.
const EnvConfigFile = "SIMPLE_DEVTOOLS_CONFIG"

type UUIDDefaults struct {
	Version string `yaml:"version"`
	Style   string `yaml:"style"`
}

type HashDefaults struct {
	Algorithm string `yaml:"algorithm"`
	Format    string `yaml:"format"`
}

type Config struct {
	UUID UUIDDefaults `yaml:"uuid"`
	Hash HashDefaults `yaml:"hash"`
}

// Default returns the built-in command defaults.
func Default() *Config {
	return &Config{
		UUID: UUIDDefaults{
			Version: uuid.Version4,
			Style:   uuid.StyleStandard,
		},
		Hash: HashDefaults{
			Algorithm: digest.SHA256,
			Format:    digest.FormatLowercase,
		},
	}
}

func (c *Config) validate() error {
	if _, ok := uuid.VersionInfoFor(c.UUID.Version); !ok {
		return fmt.Errorf("%w: %q", uuid.ErrUnsupportedVersion, c.UUID.Version)
	}
	if !slices.Contains(uuid.Styles(), c.UUID.Style) {
		return fmt.Errorf("%w: %q", uuid.ErrUnsupportedStyle, c.UUID.Style)
	}
	if _, err := digest.Normalize(c.Hash.Algorithm); err != nil {
		return err
	}
	if c.Hash.Format != digest.FormatLowercase && c.Hash.Format != digest.FormatUppercase {
		return fmt.Errorf("%w: %q", digest.ErrUnsupportedFormat, c.Hash.Format)
	}
	return nil
}
