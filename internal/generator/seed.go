package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed returns a seed read from crypto/rand, falling back to the clock
// when the system source is unavailable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
