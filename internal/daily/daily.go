// Package daily picks the same secret word for every player on a given
// UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps date to a slot in [0, n). The slot is the leading 64 bits
// of HMAC-SHA256 keyed by salt over DateKey(date), reduced modulo n.
// It returns 0 when n is not positive.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(leading64(dayDigest(date, salt)) % uint64(n))
}

func dayDigest(date time.Time, salt string) []byte {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return mac.Sum(nil)
}

func leading64(digest []byte) uint64 {
	return binary.BigEndian.Uint64(digest[:8])
}

// Pick returns the day's word from the dictionary's sorted order.
func Pick(d *words.Dictionary, date time.Time, salt string) (string, error) {
	if d.Len() == 0 {
		return "", words.ErrEmptyDictionary
	}
	return d.At(WordIndex(date, salt, d.Len())), nil
}
