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

package log

import (
	"regexp"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiFaint  = "\033[2m"
	ansiNormal = "\033[22m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGrey   = "\033[90m"
)

var regexKeys = regexp.MustCompile(`("[^"]+"\s*:)`)
var regexMsg = regexp.MustCompile(`("(?:msg|message|err|error)"\s*:\s*)("(?:\\.|[^"\\])*"|\d+)`)

// enhanceJSONForTerminal applies ANSI escape codes to make the log output
// more readable in a terminal.
func enhanceJSONForTerminal(jsonStr string, level string) string {
	var lineColor string
	switch level {
	case LevelError:
		lineColor = ansiRed
	case LevelWarn:
		lineColor = ansiYellow
	case LevelDebug:
		lineColor = ansiGrey
	}

	// Bold messages before fainting keys, since the message regexp needs
	// unmodified keys.
	enhanced := regexMsg.ReplaceAllString(jsonStr, "$1"+ansiBold+"$2"+ansiNormal)
	enhanced = regexKeys.ReplaceAllString(enhanced, ansiFaint+"$1"+ansiNormal)

	if lineColor != "" {
		enhanced = lineColor + enhanced + ansiReset

		// Some terms reset the color after bold/faint, so reapply the
		// line color.
		enhanced = strings.ReplaceAll(enhanced, ansiNormal, ansiNormal+lineColor)
	}

	return enhanced
}
