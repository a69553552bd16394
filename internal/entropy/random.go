// Package entropy supplies seed material for board generation when the
// caller does not pin a seed.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Seed returns a non-negative random int64 from crypto/rand, falling
// back to the wall clock if the system source fails.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen; the clock is good enough then.
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}
