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

package term_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jlsalvador/simple-devtools/pkg/cli/term"
)

func TestIsTerminal_NotAFile(t *testing.T) {
	if term.IsTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if term.IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}

	// Second call answers from the cache and must agree.
	if term.IsTerminal(f) {
		t.Error("cached answer diverges")
	}
}
