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

package cmd

import (
	"fmt"

	cmdHash "github.com/jlsalvador/simple-devtools/internal/cmd/hash"
	cmdUuid "github.com/jlsalvador/simple-devtools/internal/cmd/uuid"
	cmdVersion "github.com/jlsalvador/simple-devtools/internal/cmd/version"
	"github.com/jlsalvador/simple-devtools/internal/config"
	"github.com/jlsalvador/simple-devtools/internal/version"
)

func Help() error {
	fmt.Printf(`%s v%s
Developer utilities: UUID generation and message digests.
Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>

Usage:
  %s <command> [options]

Commands:
  %s	%s
  %s	%s
  %s	%s

Examples:
  %s uuid -n 5
  %s uuid -version v5 -namespace dns -name www.example.com
  %s uuid -inspect c232ab00-9414-11ec-b3c8-9f68deced846
  %s uuid -format 936DA01F9ABD4D9D80C702AF85C822A8 -style standard
  %s hash -algo sha256 -text "Hello, World!"
  cat file.bin | %s hash -all
  %s hash -file file.bin -verify sha256:dffd6021...

Defaults may be set in a YAML file given with -cfgfile or the
%s environment variable:

  uuid:
    version: v4
    style: standard
  hash:
    algorithm: SHA-256
    format: lowercase
`,
		version.AppName, version.AppVersion,
		version.AppName,
		cmdUuid.CmdName, cmdUuid.CmdHelp,
		cmdHash.CmdName, cmdHash.CmdHelp,
		cmdVersion.CmdName, cmdVersion.CmdHelp,
		version.AppName, version.AppName, version.AppName, version.AppName,
		version.AppName, version.AppName, version.AppName,
		config.EnvConfigFile,
	)
	return nil
}
