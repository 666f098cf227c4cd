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

package main

import (
	"fmt"
	"os"

	"github.com/jlsalvador/simple-devtools/internal/cmd"
	cmdHash "github.com/jlsalvador/simple-devtools/internal/cmd/hash"
	cmdUuid "github.com/jlsalvador/simple-devtools/internal/cmd/uuid"
	cmdVersion "github.com/jlsalvador/simple-devtools/internal/cmd/version"
	"github.com/jlsalvador/simple-devtools/pkg/common"
	"github.com/jlsalvador/simple-devtools/pkg/log"
)

func main() {
	log.DefaultPrettyPrint = common.GetBool(common.GetEnv("SIMPLE_DEVTOOLS_PRETTY", "false"))

	fn := cmd.Help
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case cmdUuid.CmdName:
			fn = cmdUuid.CmdFn
		case cmdHash.CmdName:
			fn = cmdHash.CmdFn
		case cmdVersion.CmdName:
			fn = cmdVersion.CmdFn
		case "help", "-h", "--help":
			fn = cmd.Help
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			_ = cmd.Help()
			os.Exit(2)
		}
	}

	if err := fn(); err != nil {
		log.Error("err", err.Error()).Print()
		os.Exit(1)
	}
}
