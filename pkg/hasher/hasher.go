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

// Package hasher provides thin wrappers around cryptographic digest
// primitives behind a common [Hasher] interface.
package hasher

import (
	"encoding/hex"
	"hash"
	"io"
)

// Hasher is implemented by every digest wrapper in this package.
type Hasher interface {
	io.Writer

	// GetHash returns the hash value as a byte slice.
	GetHash() []byte

	// GetHashAsString returns the hash value as a hexadecimal string.
	GetHashAsString() string
}

// digester implements [Hasher] on top of a stdlib [hash.Hash] constructor.
// The underlying hash is created lazily so the zero value is usable.
type digester struct {
	newFn func() hash.Hash
	h     hash.Hash
}

// Write writes data to the hash.
func (d *digester) Write(p []byte) (n int, err error) {
	if d.h == nil {
		d.h = d.newFn()
	}
	return d.h.Write(p)
}

// GetHash returns the hash value as a byte slice.
func (d *digester) GetHash() []byte {
	if d.h == nil {
		d.h = d.newFn()
	}
	return d.h.Sum(nil)
}

// GetHashAsString returns the hash value as a hexadecimal string.
func (d *digester) GetHashAsString() string {
	return hex.EncodeToString(d.GetHash())
}
