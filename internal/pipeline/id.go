package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// ULID-style job identifiers: 26 Crockford Base32 characters, 48-bit
// millisecond timestamp prefix plus 80 random bits, so ids sort by
// creation time.

var (
	idMu    sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID returns a fresh job identifier.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	// Sequence keeps ids unique within the same millisecond.
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeBase32(b)
}

// encodeBase32 packs 128 bits into 26 Base32 characters. Two zero pad bits
// in front make the total divisible by 5, matching the ULID layout.
func encodeBase32(b [16]byte) string {
	var out [26]byte
	acc := uint32(0)
	nbits := 2
	idx := 0
	for _, by := range b {
		acc = acc<<8 | uint32(by)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			out[idx] = crockford[(acc>>nbits)&31]
			idx++
		}
	}
	return string(out[:])
}
