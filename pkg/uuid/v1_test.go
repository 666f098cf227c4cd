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
	"testing"
	"time"
)

func TestNewV1_TimestampRoundTrip(t *testing.T) {
	instant := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

	orgTimeNow := timeNow
	timeNow = func() time.Time { return instant }
	defer func() { timeNow = orgTimeNow }()

	u, err := NewV1()
	if err != nil {
		t.Fatalf("NewV1() returned error: %v", err)
	}

	info := Parse(u.String())
	if !info.IsValid {
		t.Fatalf("Parse(%s) reported invalid", u)
	}
	if info.Version != 1 {
		t.Fatalf("Parse(%s) version = %d, want 1", u, info.Version)
	}
	if info.Timestamp == nil {
		t.Fatal("Parse() did not recover a timestamp from a v1 UUID")
	}

	// The encoding is millisecond-resolution, so the instant must round
	// trip exactly.
	if !info.Timestamp.Equal(instant) {
		t.Errorf("recovered timestamp = %v, want %v", info.Timestamp, instant)
	}
}

func TestNewV1_TicksAreMonotonicWithClock(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(42 * time.Millisecond)

	orgTimeNow := timeNow
	defer func() { timeNow = orgTimeNow }()

	timeNow = func() time.Time { return earlier }
	u1, err := NewV1()
	if err != nil {
		t.Fatal(err)
	}

	timeNow = func() time.Time { return later }
	u2, err := NewV1()
	if err != nil {
		t.Fatal(err)
	}

	ts1 := Parse(u1.String()).Timestamp
	ts2 := Parse(u2.String()).Timestamp
	if ts1 == nil || ts2 == nil {
		t.Fatal("Parse() did not recover timestamps")
	}
	if !ts2.After(*ts1) {
		t.Errorf("later UUID decodes to %v, not after %v", ts2, ts1)
	}
	if got := ts2.Sub(*ts1); got != 42*time.Millisecond {
		t.Errorf("timestamp delta = %v, want 42ms", got)
	}
}

func TestV1Timestamp_PreEpochIsOmitted(t *testing.T) {
	// Hand-crafted v1 UUID whose tick count is below the Unix epoch
	// offset. Recovery must be skipped, not fail the parse.
	info := Parse("00000001-0000-1000-8000-000000000001")
	if !info.IsValid {
		t.Fatal("well-formed v1 UUID reported invalid")
	}
	if info.Timestamp != nil {
		t.Errorf("expected no timestamp, got %v", info.Timestamp)
	}
}
