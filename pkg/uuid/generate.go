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
	"errors"
	"fmt"
)

// Version keys accepted by [Generate] and [GenerateBulk].
const (
	Version1 = "v1"
	Version4 = "v4"
	Version5 = "v5"
)

// MaxBulkCount is the upper bound accepted by [GenerateBulk].
const MaxBulkCount = 1000

var (
	ErrUnsupportedVersion = errors.New("unsupported uuid version")
	ErrCountOutOfRange    = errors.New("count out of range")
)

// Generate creates a new UUID of the given version, rendered canonically.
// The namespace and name parameters are only used by version 5 and are
// ignored otherwise.
func Generate(version, namespace, name string) (string, error) {
	var u UUID
	var err error

	switch version {
	case Version1:
		u, err = NewV1()
	case Version4:
		u, err = NewV4()
	case Version5:
		u, err = NewV5(namespace, name)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	if err != nil {
		return "", err
	}

	return u.String(), nil
}

// GenerateBulk creates count UUIDs of the given version. The count must be
// between 1 and [MaxBulkCount]; out-of-range values are rejected before
// any generation happens, never clamped.
//
// Versions 1 and 4 draw fresh randomness for every entry. Version 5 is
// deterministic, so distinct entries are produced by suffixing the name
// with its index: entry 0 uses the bare name, entry i uses "name_i" from
// i = 1 on. The suffix rule is a local convention without RFC backing;
// other version 5 generators will not reproduce entries past the first.
func GenerateBulk(count int, version, namespace, name string) ([]string, error) {
	if count < 1 || count > MaxBulkCount {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)",
			ErrCountOutOfRange, count, MaxBulkCount)
	}
	switch version {
	case Version1, Version4, Version5:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	ids := make([]string, 0, count)
	for i := range count {
		n := name
		if version == Version5 && i > 0 {
			n = fmt.Sprintf("%s_%d", name, i)
		}

		id, err := Generate(version, namespace, n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
