package crypto

import "bytes"

// Candidate is one decryption attempt produced by a brute-force search.
type Candidate struct {
	Plaintext []byte
	Key       []byte
	Score     float64
}

// Better reports whether c should be preferred over o. Higher scores win;
// equal scores prefer the shorter key, then the smaller key.
func (c Candidate) Better(o Candidate) bool {
	if c.Score != o.Score {
		return c.Score > o.Score
	}
	if len(c.Key) != len(o.Key) {
		return len(c.Key) < len(o.Key)
	}
	return bytes.Compare(c.Key, o.Key) < 0
}
