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

package uuid

import (
	"flag"
	"os"

	"github.com/jlsalvador/simple-devtools/internal/config"
	"github.com/jlsalvador/simple-devtools/pkg/common"
)

type Flags struct {
	Version   string
	Count     int
	Namespace string
	Name      string
	Style     string

	Inspect  string
	Validate string
	Format   string

	CfgFile string
}

func parseFlags() (flags Flags, err error) {
	flagSet := flag.NewFlagSet("", flag.ExitOnError)

	version := flagSet.String("version", "", "UUID version: v1, v4, or v5\nDefaults to the configured version")
	count := flagSet.Int("n", 1, "Number of UUIDs to generate (1-1000)")
	namespace := flagSet.String("namespace", "", "Namespace for v5: a UUID, a namespace keyword\n(dns, url, oid, x500), or literal text")
	name := flagSet.String("name", "", "Name for v5")
	style := flagSet.String("style", "", "Output style: standard, no-dashes, uppercase,\nor uppercase-no-dashes\nDefaults to the configured style")

	inspect := flagSet.String("inspect", "", "Introspect the given UUID and exit")
	validate := flagSet.String("validate", "", "Check the given UUID and exit")
	format := flagSet.String("format", "", "Re-render the given UUID with -style and exit")

	cfgFile := flagSet.String("cfgfile", common.GetEnv(config.EnvConfigFile, ""), "YAML file with command defaults")

	if err = flagSet.Parse(os.Args[2:]); err != nil {
		return
	}

	flags.Version = *version
	flags.Count = *count
	flags.Namespace = *namespace
	flags.Name = *name
	flags.Style = *style
	flags.Inspect = *inspect
	flags.Validate = *validate
	flags.Format = *format
	flags.CfgFile = *cfgFile

	return
}
