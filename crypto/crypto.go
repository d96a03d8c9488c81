// Package crypto implements statistical attacks on XOR ciphers and ECB/CBC
// modes of operation built by hand on top of a single-block cipher.
package crypto

import (
	"math/bits"

	"github.com/samber/oops"
)

// XOR stores x ^ y in buf and returns it. buf is reused if it has enough
// capacity; otherwise a new slice is allocated. x and y must have the same
// length.
func XOR(buf, x, y []byte) ([]byte, error) {
	if len(x) != len(y) {
		return nil, lengthMismatch("xor", x, y)
	}
	buf = grow(buf, len(x))
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf, nil
}

// XORByte stores x ^ y for every byte of x in buf and returns it.
func XORByte(buf, x []byte, y byte) []byte {
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ y
	}
	return buf
}

// XORRepeat XORs x with key, repeating key as needed.
func XORRepeat(buf, x, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, oops.
			Code(CodeEmptyKey).
			In("crypto").
			With("data_length", len(x)).
			Wrap(ErrEmptyKey)
	}
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ key[i%len(key)]
	}
	return buf, nil
}

func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// englishFreqs holds the relative frequency of lowercase letters and space in
// English text. All other bytes, including uppercase letters, score zero.
var englishFreqs = [256]float64{
	'a': 0.0651738,
	'b': 0.0124248,
	'c': 0.0217339,
	'd': 0.0349835,
	'e': 0.1041442,
	'f': 0.0197881,
	'g': 0.0158610,
	'h': 0.0492888,
	'i': 0.0558094,
	'j': 0.0009033,
	'k': 0.0050529,
	'l': 0.0331490,
	'm': 0.0202124,
	'n': 0.0564513,
	'o': 0.0596302,
	'p': 0.0137645,
	'q': 0.0008606,
	'r': 0.0497563,
	's': 0.0515760,
	't': 0.0729357,
	'u': 0.0225134,
	'v': 0.0082903,
	'w': 0.0171272,
	'x': 0.0013692,
	'y': 0.0145984,
	'z': 0.0007836,
	' ': 0.1918182,
}

// EnglishScore returns how English-like b looks. Higher is better.
func EnglishScore(b []byte) float64 {
	score := 0.
	for _, c := range b {
		score += englishFreqs[c]
	}
	return score
}

// HammingDistance returns the number of differing bits between x and y.
func HammingDistance(x, y []byte) (int, error) {
	if len(x) != len(y) {
		return 0, lengthMismatch("hamming_distance", x, y)
	}
	n := 0
	for i := range x {
		n += bits.OnesCount8(x[i] ^ y[i])
	}
	return n, nil
}

// keySizeChunks is the number of leading chunks compared when estimating a
// repeating key's size.
const keySizeChunks = 4

// NormalizedKeySizeDistance splits b into keySize-byte chunks, averages the
// Hamming distance between every pair of the first four, and divides by
// keySize. Both divisions truncate. Smaller values suggest keySize is the
// period of a repeating key.
func NormalizedKeySizeDistance(b []byte, keySize int) (int, error) {
	if keySize < 1 {
		return 0, oops.
			Code(CodeInvalidKeySize).
			In("crypto").
			With("key_size", keySize).
			Wrap(ErrInvalidKeySize)
	}
	if len(b) < keySizeChunks*keySize {
		return 0, oops.
			Code(CodeCiphertextTooShort).
			In("crypto").
			With("length", len(b)).
			With("key_size", keySize).
			Wrapf(ErrCiphertextTooShort, "need %d bytes for key size %d", keySizeChunks*keySize, keySize)
	}

	total, pairs := 0, 0
	for i := 0; i < keySizeChunks; i++ {
		for j := i + 1; j < keySizeChunks; j++ {
			d, err := HammingDistance(b[i*keySize:(i+1)*keySize], b[j*keySize:(j+1)*keySize])
			if err != nil {
				return 0, err
			}
			total += d
			pairs++
		}
	}
	return total / pairs / keySize, nil
}
