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

// Package digest computes, renders, compares, and validates message
// digests over in-memory inputs.
package digest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlsalvador/simple-devtools/pkg/hasher"
)

var (
	ErrInvalidDigestFormat  = errors.New("invalid digest format")
	ErrEmptyAlgorithm       = errors.New("empty algorithm")
	ErrEmptyHash            = errors.New("empty hash")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
)

// Canonical algorithm names.
const (
	MD5     = "MD5"
	SHA1    = "SHA-1"
	SHA256  = "SHA-256"
	SHA512  = "SHA-512"
	SHA3256 = "SHA3-256"
	SHA3512 = "SHA3-512"
)

type algorithm struct {
	newHasher func() hasher.Hasher
	hexLen    int
}

var algorithms = map[string]algorithm{
	MD5:     {hasher.NewMd5, 32},
	SHA1:    {hasher.NewSha1, 40},
	SHA256:  {hasher.NewSha256, 64},
	SHA512:  {hasher.NewSha512, 128},
	SHA3256: {hasher.NewSha3_256, 64},
	SHA3512: {hasher.NewSha3_512, 128},
}

// aliases maps the lowercase spellings accepted at the API boundary
// (flags, "algo:hex" notation) to canonical algorithm names.
var aliases = map[string]string{
	"md5":      MD5,
	"sha1":     SHA1,
	"sha-1":    SHA1,
	"sha256":   SHA256,
	"sha-256":  SHA256,
	"sha512":   SHA512,
	"sha-512":  SHA512,
	"sha3256":  SHA3256,
	"sha3-256": SHA3256,
	"sha3512":  SHA3512,
	"sha3-512": SHA3512,
}

// Normalize resolves algo, case-insensitively and with or without dashes,
// into its canonical algorithm name.
func Normalize(algo string) (string, error) {
	canonical, ok := aliases[strings.ToLower(algo)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
	return canonical, nil
}

// NewHasher returns a new [hasher.Hasher] for the given algorithm.
//
// Supported algorithms:
//   - MD5
//   - SHA-1
//   - SHA-256
//   - SHA-512
//   - SHA3-256
//   - SHA3-512.
func NewHasher(algo string) (hasher.Hasher, error) {
	canonical, err := Normalize(algo)
	if err != nil {
		return nil, err
	}
	return algorithms[canonical].newHasher(), nil
}

// HexLength returns the length in hexadecimal characters of a digest
// produced by the given algorithm.
func HexLength(algo string) (int, error) {
	canonical, err := Normalize(algo)
	if err != nil {
		return 0, err
	}
	return algorithms[canonical].hexLen, nil
}

// Parse splits a digest in "algo:hex" notation into its algorithm and hex
// hash. The algorithm is not resolved against the supported set; use
// [Normalize] for that.
//
// Example:
//
//	Parse("sha256:abcd...") == "sha256", "abcd...", nil
func Parse(digest string) (algo, hex string, err error) {
	parts := strings.SplitN(digest, ":", 2)
	if len(parts) != 2 {
		return "", "", ErrInvalidDigestFormat
	}
	algo = parts[0]
	hex = parts[1]

	if algo == "" {
		return "", "", ErrEmptyAlgorithm
	}
	if hex == "" {
		return "", "", ErrEmptyHash
	}

	return algo, hex, nil
}
