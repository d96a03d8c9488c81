package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptokit/cryptopals/crypto"
)

func TestMT19937(t *testing.T) {
	src := crypto.NewMT19937()
	src.Seed(5489)
	assert.Equal(t, uint32(3499211612), src.Uint32())
}

func TestMT19937Unseeded(t *testing.T) {
	assert.Panics(t, func() { crypto.NewMT19937().Uint32() })
}

func TestMT19937StreamRead(t *testing.T) {
	src := crypto.NewMT19937()
	src.Seed(5489)
	w := src.Uint32()

	b := make([]byte, 6)
	n, err := crypto.NewMT19937Stream(5489).Read(b)
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}, b[:4])

	// Reading in pieces yields the same bytes as one read.
	s := crypto.NewMT19937Stream(5489)
	pieces := make([]byte, 6)
	s.Read(pieces[:1])
	s.Read(pieces[1:5])
	s.Read(pieces[5:])
	assert.Equal(t, b, pieces)
}
