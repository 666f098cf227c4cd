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

// NewV4 generates a random (version 4) UUID. The 122 bits outside the
// version and variant fields come from a cryptographically secure random
// source.
func NewV4() (UUID, error) {
	u := make(UUID, 16)
	if _, err := RandRead(u); err != nil {
		return nil, err
	}

	u.setVersion(4)
	u.setVariant()

	return u, nil
}
