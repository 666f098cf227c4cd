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

package uuid_test

import (
	"errors"
	"testing"

	u "github.com/jlsalvador/simple-devtools/pkg/uuid"
)

func TestFormat(t *testing.T) {
	const dashed = "936da01f-9abd-4d9d-80c7-02af85c822a8"
	const compact = "936da01f9abd4d9d80c702af85c822a8"

	tcs := []struct {
		name        string
		uuid        string
		style       string
		expected    string
		expectedErr error
	}{
		{"standard from dashed", dashed, u.StyleStandard, dashed, nil},
		{"standard from compact", compact, u.StyleStandard, dashed, nil},
		{"no dashes", dashed, u.StyleNoDashes, compact, nil},
		{"uppercase", dashed, u.StyleUppercase, "936DA01F-9ABD-4D9D-80C7-02AF85C822A8", nil},
		{"uppercase no dashes", compact, u.StyleUppercaseNoDashes, "936DA01F9ABD4D9D80C702AF85C822A8", nil},
		{"standard lowers the case", "936DA01F-9ABD-4D9D-80C7-02AF85C822A8", u.StyleStandard, dashed, nil},
		{"unsupported style", dashed, "snake-case", "", u.ErrUnsupportedStyle},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := u.Format(tc.uuid, tc.style)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if got != tc.expected {
				t.Errorf("Format(%q, %s) = %q, want %q", tc.uuid, tc.style, got, tc.expected)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Re-rendering through any style and back to standard must be
	// lossless.
	id, err := u.NewV4()
	if err != nil {
		t.Fatal(err)
	}
	standard := id.String()

	for _, style := range u.Styles() {
		styled, err := u.Format(standard, style)
		if err != nil {
			t.Fatalf("Format(%s) returned error: %v", style, err)
		}

		back, err := u.Format(styled, u.StyleStandard)
		if err != nil {
			t.Fatalf("Format(standard) returned error: %v", err)
		}
		if back != standard {
			t.Errorf("round trip through %s lost information: %s != %s", style, back, standard)
		}
	}
}

func TestStyles(t *testing.T) {
	if got := len(u.Styles()); got != 4 {
		t.Errorf("Styles() returned %d styles, want 4", got)
	}
}
