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

// Package common holds small helpers shared across commands.
package common

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable key, or fallback
// when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetBool parses a string value as a boolean.
// If the parsing fails, it returns false.
func GetBool(val string) bool {
	val = strings.ToLower(strings.TrimSpace(val))
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return b
}
