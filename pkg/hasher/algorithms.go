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

package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// NewMd5 creates a [Hasher] instance that uses the MD5 hashing algorithm.
//
// MD5 is offered for checksums and lookups only. It is broken for any
// security purpose.
func NewMd5() Hasher {
	return &digester{newFn: md5.New}
}

// NewSha1 creates a [Hasher] instance that uses the SHA-1 hashing algorithm.
func NewSha1() Hasher {
	return &digester{newFn: sha1.New}
}

// NewSha256 creates a [Hasher] instance that uses the SHA-256 hashing algorithm.
func NewSha256() Hasher {
	return &digester{newFn: sha256.New}
}

// NewSha512 creates a [Hasher] instance that uses the SHA-512 hashing algorithm.
func NewSha512() Hasher {
	return &digester{newFn: sha512.New}
}

// NewSha3_256 creates a [Hasher] instance that uses the SHA3-256 hashing
// algorithm.
func NewSha3_256() Hasher {
	return &digester{newFn: sha3.New256}
}

// NewSha3_512 creates a [Hasher] instance that uses the SHA3-512 hashing
// algorithm.
func NewSha3_512() Hasher {
	return &digester{newFn: sha3.New512}
}
