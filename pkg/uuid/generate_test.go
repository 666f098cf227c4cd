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
	"strings"
	"testing"

	u "github.com/jlsalvador/simple-devtools/pkg/uuid"
)

func TestGenerate(t *testing.T) {
	tcs := []struct {
		name        string
		version     string
		namespace   string
		uuidName    string
		expectedErr error
	}{
		{"v1", u.Version1, "", "", nil},
		{"v4", u.Version4, "", "", nil},
		{"v5", u.Version5, u.NamespaceDNS, "www.example.com", nil},
		{"v5 missing namespace", u.Version5, "", "www.example.com", u.ErrNamespaceRequired},
		{"v5 missing name", u.Version5, u.NamespaceDNS, "", u.ErrNameRequired},
		{"unsupported version", "v2", "", "", u.ErrUnsupportedVersion},
		{"empty version", "", "", "", u.ErrUnsupportedVersion},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := u.Generate(tc.version, tc.namespace, tc.uuidName)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr != nil {
				return
			}
			if !u.IsValid(id) {
				t.Errorf("Generate(%s) = %q is not a valid UUID", tc.version, id)
			}
		})
	}
}

func TestGenerate_UnsupportedVersionNamesValue(t *testing.T) {
	_, err := u.Generate("v9", "", "")
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
	// The message must name the rejected value.
	if got := err.Error(); !strings.Contains(got, `"v9"`) {
		t.Errorf("error %q does not name the unsupported version", got)
	}
}

func TestGenerateBulk_CountBoundaries(t *testing.T) {
	tcs := []struct {
		name        string
		count       int
		expectedErr error
	}{
		{"zero", 0, u.ErrCountOutOfRange},
		{"negative", -1, u.ErrCountOutOfRange},
		{"above maximum", u.MaxBulkCount + 1, u.ErrCountOutOfRange},
		{"minimum", 1, nil},
		{"maximum", u.MaxBulkCount, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ids, err := u.GenerateBulk(tc.count, u.Version4, "", "")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr != nil {
				if ids != nil {
					t.Errorf("expected no partial results, got %d entries", len(ids))
				}
				return
			}
			if len(ids) != tc.count {
				t.Errorf("got %d entries, want %d", len(ids), tc.count)
			}
		})
	}
}

func TestGenerateBulk_UnsupportedVersionRejectedUpfront(t *testing.T) {
	ids, err := u.GenerateBulk(10, "v3", "", "")
	if !errors.Is(err, u.ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
	if ids != nil {
		t.Errorf("expected no partial results, got %v", ids)
	}
}

func TestGenerateBulk_V4Unique(t *testing.T) {
	ids, err := u.GenerateBulk(100, u.Version4, "", "")
	if err != nil {
		t.Fatalf("GenerateBulk() returned error: %v", err)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate UUID in batch: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateBulk_V5SuffixRule(t *testing.T) {
	ids, err := u.GenerateBulk(3, u.Version5, u.NamespaceDNS, "svc")
	if err != nil {
		t.Fatalf("GenerateBulk() returned error: %v", err)
	}

	// Entry 0 uses the bare name, entry i uses "name_i" from i = 1 on.
	expectedNames := []string{"svc", "svc_1", "svc_2"}
	for i, name := range expectedNames {
		expected, err := u.NewV5(u.NamespaceDNS, name)
		if err != nil {
			t.Fatal(err)
		}
		if ids[i] != expected.String() {
			t.Errorf("entry %d = %s, want NewV5(DNS, %q) = %s", i, ids[i], name, expected)
		}
	}
}

func TestGenerateBulk_V5SingleMatchesSingle(t *testing.T) {
	ids, err := u.GenerateBulk(1, u.Version5, u.NamespaceDNS, "svc")
	if err != nil {
		t.Fatalf("GenerateBulk() returned error: %v", err)
	}

	single, err := u.NewV5(u.NamespaceDNS, "svc")
	if err != nil {
		t.Fatal(err)
	}
	if ids[0] != single.String() {
		t.Errorf("bulk of one = %s, want %s", ids[0], single)
	}
}

func BenchmarkGenerateBulk(b *testing.B) {
	for b.Loop() {
		_, _ = u.GenerateBulk(100, u.Version4, "", "")
	}
}
