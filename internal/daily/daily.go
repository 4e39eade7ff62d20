package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Target returns the shared target for a day: HMAC(salt, YYYY-MM-DD) mapped into [lo, hi].
func Target(date time.Time, salt string, lo, hi uint32) uint32 {
	if lo >= hi {
		return lo
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	span := uint64(hi-lo) + 1
	return lo + uint32(n%span)
}

// Source is a secret.Source that yields the target for one day.
type Source struct {
	Date time.Time
	Salt string
}

// InRange returns Target(s.Date, s.Salt, lo, hi).
func (s Source) InRange(lo, hi uint32) (uint32, error) {
	return Target(s.Date, s.Salt, lo, hi), nil
}
