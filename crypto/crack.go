package crypto

import (
	"bytes"
	"math"
	"sort"
	"sync"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// CrackXORByte finds the single byte key that makes ct look most like
// English. On equal scores the smaller key byte wins.
func CrackXORByte(ct []byte) Candidate {
	bestScore := math.Inf(-1)
	var bestKey byte
	var pt []byte
	for key := 0; key < 256; key++ {
		pt = XORByte(pt, ct, byte(key))
		if score := EnglishScore(pt); score > bestScore {
			bestScore = score
			bestKey = byte(key)
		}
	}
	return Candidate{
		Plaintext: XORByte(pt, ct, bestKey),
		Key:       []byte{bestKey},
		Score:     bestScore,
	}
}

// FindXORByte cracks every ciphertext in cts with CrackXORByte and returns the
// index and result of the one that decrypts to the most English-like text.
// The earliest ciphertext wins on equal scores.
func FindXORByte(cts [][]byte) (int, Candidate, error) {
	if len(cts) == 0 {
		return -1, Candidate{}, oops.
			Code(CodeEmptyCorpus).
			In("crypto").
			Wrap(ErrEmptyCorpus)
	}
	bestIndex := -1
	var best Candidate
	for i, ct := range cts {
		c := CrackXORByte(ct)
		if bestIndex < 0 || c.Score > best.Score {
			bestIndex = i
			best = c
		}
	}
	log.WithFields(logrus.Fields{
		"corpus_size": len(cts),
		"index":       bestIndex,
		"key":         best.Key[0],
		"score":       best.Score,
	}).Debug("found single byte XOR ciphertext")
	return bestIndex, best, nil
}

// CrackXORRepeat recovers the key and plaintext of ct, which was encrypted
// with a repeating XOR key, using DefaultBreakerConfig.
func CrackXORRepeat(ct []byte) (Candidate, error) {
	return CrackXORRepeatConfig(ct, DefaultBreakerConfig())
}

// CrackXORRepeatConfig recovers the key and plaintext of ct, which was
// encrypted with a repeating XOR key.
//
// Each key size in the configured range is ranked by
// NormalizedKeySizeDistance, smallest first. For the best few sizes, the
// ciphertext is transposed so that column j holds every byte encrypted with
// key[j], and each column is cracked with CrackXORByte. The assembled key with
// the most English-like plaintext wins; ties go to the shorter key. The
// returned key is reduced to its shortest period, so a key found as "ICEICE"
// is reported as "ICE".
func CrackXORRepeatConfig(ct []byte, cfg *BreakerConfig) (Candidate, error) {
	if err := cfg.Validate(); err != nil {
		return Candidate{}, err
	}
	maxKeySize := cfg.MaxKeySize
	if len(ct)/keySizeChunks < maxKeySize {
		maxKeySize = len(ct) / keySizeChunks
	}
	if maxKeySize < cfg.MinKeySize {
		return Candidate{}, oops.
			Code(CodeCiphertextTooShort).
			In("crypto").
			With("length", len(ct)).
			With("min_key_size", cfg.MinKeySize).
			Wrapf(ErrCiphertextTooShort, "need %d bytes to try key size %d", keySizeChunks*cfg.MinKeySize, cfg.MinKeySize)
	}

	type attempt struct {
		keySize int
		dist    int
	}
	attempts := make([]attempt, 0, maxKeySize-cfg.MinKeySize+1)
	for sz := cfg.MinKeySize; sz <= maxKeySize; sz++ {
		dist, err := NormalizedKeySizeDistance(ct, sz)
		if err != nil {
			return Candidate{}, err
		}
		attempts = append(attempts, attempt{keySize: sz, dist: dist})
	}
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].dist < attempts[j].dist
	})
	if len(attempts) > cfg.Candidates {
		attempts = attempts[:cfg.Candidates]
	}

	results := make([]Candidate, len(attempts))
	errs := make([]error, len(attempts))
	crack := func(i int) {
		results[i], errs[i] = crackWithKeySize(ct, attempts[i].keySize)
	}
	if cfg.Parallel {
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				crack(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range attempts {
			crack(i)
		}
	}

	var best Candidate
	for i := range results {
		if errs[i] != nil {
			return Candidate{}, errs[i]
		}
		log.WithFields(logrus.Fields{
			"key_size": attempts[i].keySize,
			"distance": attempts[i].dist,
			"score":    results[i].Score,
		}).Debug("cracked repeating XOR key size")
		if i == 0 || results[i].Better(best) {
			best = results[i]
		}
	}
	best.Key = keyPeriod(best.Key)

	log.WithFields(logrus.Fields{
		"key_size": len(best.Key),
		"score":    best.Score,
	}).Debug("recovered repeating XOR key")
	return best, nil
}

func crackWithKeySize(ct []byte, keySize int) (Candidate, error) {
	columns := make([][]byte, keySize)
	for i, b := range ct {
		columns[i%keySize] = append(columns[i%keySize], b)
	}
	key := make([]byte, keySize)
	for i, col := range columns {
		key[i] = CrackXORByte(col).Key[0]
	}
	pt, err := XORRepeat(nil, ct, key)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{Plaintext: pt, Key: key, Score: EnglishScore(pt)}, nil
}

// keyPeriod returns the shortest prefix of key that repeats to form key.
func keyPeriod(key []byte) []byte {
	for p := 1; p < len(key); p++ {
		if len(key)%p != 0 {
			continue
		}
		if bytes.Equal(key[p:], key[:len(key)-p]) {
			return key[:p]
		}
	}
	return key
}
