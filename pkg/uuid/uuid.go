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

// Package uuid generates, formats, validates, and introspects RFC 4122
// Universally Unique Identifiers of versions 1 (time-based), 4 (random),
// and 5 (name-based, SHA-1).
package uuid

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// RandRead is the function used to read random bytes.
// It can be replaced for testing purposes.
var RandRead = rand.Read

// UUID is a 128-bit identifier as 16 raw octets.
type UUID []byte

// String renders the UUID in its canonical dashed lowercase form.
//
// The sub-slices are converted to []byte so that fmt hashes the raw
// octets instead of re-entering this method: a slice of a UUID is
// itself a UUID, and %x consults fmt.Stringer.
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x",
		[]byte(u[0:4]),
		[]byte(u[4:6]),
		[]byte(u[6:8]),
		[]byte(u[8:10]),
		[]byte(u[10:16]))
}

// setVersion stamps v into the high nibble of octet 6.
func (u UUID) setVersion(v byte) {
	u[6] = (u[6] & 0x0f) | (v << 4)
}

// setVariant stamps the RFC 4122 variant (binary 10) into the top two
// bits of octet 8.
func (u UUID) setVariant() {
	u[8] = (u[8] & 0x3f) | 0x80
}

// validRe accepts canonically dashed UUIDs of versions 1-5 carrying the
// RFC 4122 variant, in either case.
var validRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValid reports whether s is a canonically dashed UUID of versions 1-5
// with the RFC 4122 variant.
//
// Known limitation: syntactically well-formed UUIDs of versions 0 and 6-8,
// and UUIDs from other variant families, are reported invalid. The check
// is deliberately scoped to what this package generates; it is not a
// general UUID validator.
func IsValid(s string) bool {
	return validRe.MatchString(s)
}
