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

// Package term answers whether a stream is attached to a terminal.
package term

import (
	"io"
	"os"
	"sync"
)

var (
	isTerminalCache   = map[uintptr]bool{}
	isTerminalCacheMu sync.RWMutex
)

// IsTerminal checks whether the given writer is connected to a terminal.
// This function is thread-safe and efficient for repeated calls.
func IsTerminal(w io.Writer) bool {
	// The writer must be a file descriptor.
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	isTerminalCacheMu.RLock()
	v, cached := isTerminalCache[fd]
	isTerminalCacheMu.RUnlock()
	if cached {
		return v
	}

	info, err := f.Stat()
	isTTY := err == nil && (info.Mode()&os.ModeCharDevice) != 0

	isTerminalCacheMu.Lock()
	isTerminalCache[fd] = isTTY
	isTerminalCacheMu.Unlock()

	return isTTY
}
