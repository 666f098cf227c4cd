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

import "testing"

func TestVariantOf(t *testing.T) {
	// The public validator only lets RFC 4122 nibbles through, but the
	// classifier itself covers every family.
	tcs := []struct {
		nibble   byte
		expected string
	}{
		{0x0, VariantNCS},
		{0x7, VariantNCS},
		{0x8, VariantRFC4122},
		{0x9, VariantRFC4122},
		{0xa, VariantRFC4122},
		{0xb, VariantRFC4122},
		{0xc, VariantMicrosoft},
		{0xd, VariantMicrosoft},
		{0xe, VariantReserved},
		{0xf, VariantReserved},
	}

	for _, tc := range tcs {
		if got := variantOf(tc.nibble); got != tc.expected {
			t.Errorf("variantOf(%#x) = %q, want %q", tc.nibble, got, tc.expected)
		}
	}
}

func TestHexNibble(t *testing.T) {
	tcs := []struct {
		c        byte
		expected byte
	}{
		{'0', 0},
		{'9', 9},
		{'a', 10},
		{'f', 15},
	}

	for _, tc := range tcs {
		if got := hexNibble(tc.c); got != tc.expected {
			t.Errorf("hexNibble(%q) = %d, want %d", tc.c, got, tc.expected)
		}
	}
}
