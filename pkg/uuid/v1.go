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
	"encoding/binary"
	"time"
)

// gregorianOffset is the number of 100ns intervals between the Gregorian
// calendar reform (1582-10-15) and the Unix epoch (1970-01-01).
const gregorianOffset = 0x01B21DD213814000

// For testing mockups.
var timeNow = time.Now

// NewV1 generates a time-based (version 1) UUID. The 60-bit timestamp is
// the count of 100ns intervals since the Gregorian calendar reform, at
// millisecond resolution. The clock sequence is random, and the node
// identifier is random with the multicast bit set, which marks it as not
// being a hardware address (RFC 4122 §4.1.6 fallback).
func NewV1() (UUID, error) {
	ticks := uint64(timeNow().UnixMilli())*10000 + gregorianOffset

	// Split the ticks into time-low (32 bits), time-mid (16 bits), and
	// time-hi (the low 12 bits of the next 16-bit field).
	u := make(UUID, 16)
	binary.BigEndian.PutUint32(u[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(u[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(u[6:8], uint16(ticks>>48)&0x0fff)

	// Clock sequence and node identifier.
	if _, err := RandRead(u[8:16]); err != nil {
		return nil, err
	}
	u[10] |= 0x01 // multicast bit

	u.setVersion(1)
	u.setVariant()

	return u, nil
}
