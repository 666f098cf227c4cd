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

package digest

import (
	"fmt"
	"regexp"
	"strings"
)

// Output formats for hexadecimal rendering.
const (
	FormatLowercase = "lowercase"
	FormatUppercase = "uppercase"
)

// Batch is the algorithm set computed by [SumAll].
var Batch = []string{MD5, SHA1, SHA256, SHA512}

var hexRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Sum computes the digest of input with the given algorithm and renders it
// as a hexadecimal string. An empty format defaults to [FormatLowercase].
// Empty input is valid and yields the algorithm's well-known empty digest.
func Sum(algo string, input []byte, format string) (string, error) {
	h, err := NewHasher(algo)
	if err != nil {
		return "", err
	}
	if _, err := h.Write(input); err != nil {
		return "", err
	}
	return render(h.GetHashAsString(), format)
}

// SumAll computes the digests of input for every algorithm in [Batch],
// keyed by canonical algorithm name. The call is atomic: any failure
// returns no partial results.
func SumAll(input []byte, format string) (map[string]string, error) {
	sums := make(map[string]string, len(Batch))
	for _, algo := range Batch {
		sum, err := Sum(algo, input, format)
		if err != nil {
			return nil, err
		}
		sums[algo] = sum
	}
	return sums, nil
}

// Compare reports whether a and b are the same hexadecimal digest,
// ignoring case.
func Compare(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ValidFormat reports whether hash is made of hexadecimal characters only
// and has exactly the length the algorithm produces. Unknown algorithms
// report false.
func ValidFormat(hash, algo string) bool {
	hexLen, err := HexLength(algo)
	if err != nil {
		return false
	}
	return len(hash) == hexLen && hexRe.MatchString(hash)
}

func render(sum, format string) (string, error) {
	switch format {
	case "", FormatLowercase:
		return sum, nil
	case FormatUppercase:
		return strings.ToUpper(sum), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
