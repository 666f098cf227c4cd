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
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"
)

// Variant families reported by [Parse].
const (
	VariantNCS       = "NCS backward compatibility"
	VariantRFC4122   = "RFC 4122"
	VariantMicrosoft = "Microsoft backward compatibility"
	VariantReserved  = "Reserved for future use"
	VariantInvalid   = "invalid"
)

// Info is the result of introspecting a UUID string.
type Info struct {
	Version   int        `json:"version"`
	Variant   string     `json:"variant"`
	IsValid   bool       `json:"isValid"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Parse introspects a UUID string. Malformed input is not an error: it
// yields a zero-version, invalid-variant [Info], since checking validity
// is an expected use of this function.
//
// For version 1 UUIDs the embedded timestamp is recovered on a best-effort
// basis. A UUID whose time fields were not produced by this package's
// generator may decode to a nonsensical instant or to none at all; the
// field is simply omitted then, never failing the parse.
func Parse(s string) Info {
	if !IsValid(s) {
		return Info{Variant: VariantInvalid}
	}

	compact := strings.ToLower(strings.ReplaceAll(s, "-", ""))

	info := Info{
		Version: int(hexNibble(compact[12])),
		Variant: variantOf(hexNibble(compact[16])),
		IsValid: true,
	}

	if info.Version == 1 {
		if ts, ok := v1Timestamp(compact); ok {
			info.Timestamp = &ts
		}
	}

	return info
}

// variantOf classifies the nibble holding the variant bits.
func variantOf(nibble byte) string {
	switch {
	case nibble&0x8 == 0:
		return VariantNCS
	case nibble&0xc == 0x8:
		return VariantRFC4122
	case nibble&0xe == 0xc:
		return VariantMicrosoft
	default:
		return VariantReserved
	}
}

// v1Timestamp reverses the version 1 time-field packing back into the
// 60-bit tick count and converts it to wall-clock time.
func v1Timestamp(compact string) (time.Time, bool) {
	b, err := hex.DecodeString(compact)
	if err != nil || len(b) != 16 {
		return time.Time{}, false
	}

	timeLow := uint64(binary.BigEndian.Uint32(b[0:4]))
	timeMid := uint64(binary.BigEndian.Uint16(b[4:6]))
	timeHi := uint64(binary.BigEndian.Uint16(b[6:8]) & 0x0fff)

	ticks := timeHi<<48 | timeMid<<32 | timeLow
	if ticks < gregorianOffset {
		// Predates the Unix epoch; almost certainly not one of ours.
		return time.Time{}, false
	}

	ms := (ticks - gregorianOffset) / 10000
	return time.UnixMilli(int64(ms)).UTC(), true
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}
