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

// Package log provides a key-value logger with JSON output.
//
// Note: DefaultStdout, DefaultStderr and DefaultPrettyPrint should be
// configured during initialization and not modified concurrently.
//
// Example:
//
//	log.Info(
//	    "msg", "batch generated",
//	    "count", 100,
//	).Print()
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jlsalvador/simple-devtools/pkg/cli/term"
)

const (
	LevelDebug = "debug" // Output msg to [os.Stdout].
	LevelInfo  = "info"  // Output msg to [os.Stdout].
	LevelWarn  = "warn"  // Output msg to [os.Stderr].
	LevelError = "error" // Output msg to [os.Stderr].
)

const (
	FieldTimestamp = "@timestamp"
	FieldLevel     = "log.level"
)

var (
	DefaultStderr      io.Writer = os.Stderr // Sets output for LevelWarn and LevelError.
	DefaultStdout      io.Writer = os.Stdout // Sets output for LevelDebug and LevelInfo.
	DefaultPrettyPrint           = false     // Indent output as multiline JSON.
)

// For testing mockups.
var (
	isTerminalFn = term.IsTerminal
	timeNow      = time.Now
)

// Entry represents a log entry in flight.
//
// Please, use Debug(), Info(), Warn(), and Error().
type Entry struct {
	Stderr      io.Writer
	Stdout      io.Writer
	PrettyPrint bool

	level  string
	fields map[string]any
}

func newEntry(level string) *Entry {
	return &Entry{
		Stderr:      DefaultStderr,
		Stdout:      DefaultStdout,
		PrettyPrint: DefaultPrettyPrint,
		level:       level,
		fields: map[string]any{
			FieldTimestamp: timeNow().Format(time.RFC3339),
			FieldLevel:     level,
		},
	}
}

func Debug(kv ...any) *Entry { return newEntry(LevelDebug).With(kv...) }
func Info(kv ...any) *Entry  { return newEntry(LevelInfo).With(kv...) }
func Warn(kv ...any) *Entry  { return newEntry(LevelWarn).With(kv...) }
func Error(kv ...any) *Entry { return newEntry(LevelError).With(kv...) }

// With adds key-value pairs to the entry. Keys that are not strings are
// skipped.
func (e *Entry) With(kv ...any) *Entry {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e.fields[key] = kv[i+1]
	}
	return e
}

// JSON renders the entry as a single-line JSON document.
func (e *Entry) JSON() string { return jsonMarshal(e.fields, false) }

// JSONIndent renders the entry as an indented JSON document.
func (e *Entry) JSONIndent() string { return jsonMarshal(e.fields, true) }

// Print outputs the entry to stdout or stderr based on its level.
func (e *Entry) Print() {
	out := e.Stdout
	if e.level == LevelWarn || e.level == LevelError {
		out = e.Stderr
	}

	jsonStr := jsonMarshal(e.fields, e.PrettyPrint)

	if _, noColor := os.LookupEnv("NO_COLOR"); !noColor && isTerminalFn(out) {
		jsonStr = enhanceJSONForTerminal(jsonStr, e.level)
	}

	fmt.Fprintf(out, "%s\n", jsonStr)
}

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool { return isTerminalFn(w) }

func jsonMarshal(kv map[string]any, pretty bool) string {
	var b []byte
	var err error

	if pretty {
		b, err = json.MarshalIndent(kv, "", "  ")
	} else {
		b, err = json.Marshal(kv)
	}
	if err != nil {
		// Do not recurse into the logger from the logger.
		return fmt.Sprintf(`{%q:%q,"err":%q}`, FieldLevel, LevelError, err.Error())
	}

	return string(b)
}
