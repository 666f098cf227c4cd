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
	"errors"
	"fmt"
	"strings"
)

// Styles accepted by [Format].
const (
	StyleStandard          = "standard"
	StyleNoDashes          = "no-dashes"
	StyleUppercase         = "uppercase"
	StyleUppercaseNoDashes = "uppercase-no-dashes"
)

var ErrUnsupportedStyle = errors.New("unsupported uuid style")

// Styles lists every style accepted by [Format].
func Styles() []string {
	return []string{
		StyleStandard,
		StyleNoDashes,
		StyleUppercase,
		StyleUppercaseNoDashes,
	}
}

// Format re-renders a UUID in the given style. The input may be dashed or
// not: dashes are stripped first and re-inserted at hex offsets 8, 12, 16,
// and 20 when the style calls for them, so the round trip through any
// style is lossless.
func Format(s, style string) (string, error) {
	compact := strings.ReplaceAll(s, "-", "")

	var dashed, upper bool
	switch style {
	case StyleStandard:
		dashed = true
	case StyleNoDashes:
	case StyleUppercase:
		dashed, upper = true, true
	case StyleUppercaseNoDashes:
		upper = true
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, style)
	}

	out := compact
	if dashed && len(compact) == 32 {
		out = compact[:8] + "-" + compact[8:12] + "-" + compact[12:16] +
			"-" + compact[16:20] + "-" + compact[20:]
	}

	if upper {
		return strings.ToUpper(out), nil
	}
	return strings.ToLower(out), nil
}
