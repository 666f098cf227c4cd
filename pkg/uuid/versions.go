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

// VersionInfo describes one of the supported UUID versions.
type VersionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Secure      bool   `json:"secure"`
	Note        string `json:"note"`
}

var versions = map[string]VersionInfo{
	Version1: {
		Name:        "Version 1 (time-based)",
		Description: "Built from a 60-bit timestamp, a clock sequence, and a node identifier.",
		Secure:      false,
		Note:        "Embeds its generation time; avoid where identifiers must not leak timing.",
	},
	Version4: {
		Name:        "Version 4 (random)",
		Description: "122 bits drawn from a cryptographically secure random source.",
		Secure:      true,
		Note:        "Recommended default.",
	},
	Version5: {
		Name:        "Version 5 (name-based, SHA-1)",
		Description: "Deterministic SHA-1 digest of a namespace and a name.",
		Secure:      true,
		Note:        "The same namespace and name always yield the same UUID.",
	},
}

// VersionInfoFor returns the descriptor for one of the supported version
// keys ("v1", "v4", "v5").
func VersionInfoFor(version string) (VersionInfo, bool) {
	info, ok := versions[version]
	return info, ok
}

// Versions lists the supported version keys.
func Versions() []string {
	return []string{Version1, Version4, Version5}
}
