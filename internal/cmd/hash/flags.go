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

package hash

import (
	"flag"
	"os"

	"github.com/jlsalvador/simple-devtools/internal/config"
	cliFlag "github.com/jlsalvador/simple-devtools/pkg/cli/flag"
	"github.com/jlsalvador/simple-devtools/pkg/common"
)

type Flags struct {
	Algo  string
	Upper bool
	All   bool

	Texts  []string
	File   string
	Secret bool

	Verify string

	CfgFile string
}

func parseFlags() (flags Flags, err error) {
	flagSet := flag.NewFlagSet("", flag.ExitOnError)

	algo := flagSet.String("algo", "", "Digest algorithm: md5, sha1, sha256, sha512,\nsha3-256, or sha3-512\nDefaults to the configured algorithm")
	upper := flagSet.Bool("upper", false, "Render the digest in uppercase hex")
	all := flagSet.Bool("all", false, "Compute MD5, SHA-1, SHA-256, and SHA-512 at once")

	texts := cliFlag.StringSlice{}
	flagSet.Var(&texts, "text", "Text input\nCould be specified multiple times")
	file := flagSet.String("file", "", "Read input from file")
	secret := flagSet.Bool("secret", false, "Read input from the terminal without echo")

	verify := flagSet.String("verify", "", "Expected digest in \"algo:hex\" notation\nFails unless the computed digest matches")

	cfgFile := flagSet.String("cfgfile", common.GetEnv(config.EnvConfigFile, ""), "YAML file with command defaults")

	if err = flagSet.Parse(os.Args[2:]); err != nil {
		return
	}

	flags.Algo = *algo
	flags.Upper = *upper
	flags.All = *all
	flags.Texts = texts
	flags.File = *file
	flags.Secret = *secret
	flags.Verify = *verify
	flags.CfgFile = *cfgFile

	return
}
