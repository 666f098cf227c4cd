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
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jlsalvador/simple-devtools/pkg/hasher"
)

var (
	ErrNamespaceRequired = errors.New("namespace is required for a version 5 uuid")
	ErrNameRequired      = errors.New("name is required for a version 5 uuid")
)

// Namespace UUIDs fixed by RFC 4122 appendix C.
const (
	NamespaceDNS  = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	NamespaceURL  = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	NamespaceOID  = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
	NamespaceX500 = "6ba7b814-9dad-11d1-80b4-00c04fd430c8"
)

// NewV5 derives a name-based (version 5) UUID from the SHA-1 digest of
// namespace and name. When namespace is a valid UUID its 16 raw octets are
// hashed; otherwise its literal UTF-8 bytes are. Same namespace and name
// always produce the same UUID.
func NewV5(namespace, name string) (UUID, error) {
	if namespace == "" {
		return nil, ErrNamespaceRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	h := hasher.NewSha1()
	_, _ = h.Write(namespaceBytes(namespace))
	_, _ = h.Write([]byte(name))

	// A SHA-1 digest is 20 bytes; a UUID keeps the first 16.
	u := UUID(h.GetHash()[:16])
	u.setVersion(5)
	u.setVariant()

	return u, nil
}

func namespaceBytes(namespace string) []byte {
	if !IsValid(namespace) {
		return []byte(namespace)
	}
	b, err := hex.DecodeString(strings.ReplaceAll(namespace, "-", ""))
	if err != nil {
		return []byte(namespace)
	}
	return b
}
