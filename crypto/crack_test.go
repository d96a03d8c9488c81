package crypto_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptokit/cryptopals/crypto"
)

var iceLyric = []byte("Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal")

func TestCrackXORByte(t *testing.T) {
	ct, err := hex.DecodeString("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	require.NoError(t, err)
	got := crypto.CrackXORByte(ct)
	assert.Equal(t, "Cooking MC's like a pound of bacon", string(got.Plaintext))
	assert.Equal(t, []byte{0x58}, got.Key)
	assert.InDelta(t, crypto.EnglishScore(got.Plaintext), got.Score, 1e-12)
}

func TestCrackXORByteTieBreak(t *testing.T) {
	// Every key scores zero on an empty ciphertext, so the smallest key wins.
	got := crypto.CrackXORByte(nil)
	assert.Equal(t, []byte{0}, got.Key)
	assert.Equal(t, 0., got.Score)
}

func TestFindXORByte(t *testing.T) {
	want := []byte("now that the party is jumping\n")
	cts := make([][]byte, 20)
	for i := range cts {
		cts[i] = randomBytes(uint32(100+i), len(want))
	}
	cts[13] = crypto.XORByte(nil, want, 0x35)

	i, got, err := crypto.FindXORByte(cts)
	require.NoError(t, err)
	assert.Equal(t, 13, i)
	assert.Equal(t, want, got.Plaintext)
	assert.Equal(t, []byte{0x35}, got.Key)
}

func TestFindXORByteEmpty(t *testing.T) {
	_, _, err := crypto.FindXORByte(nil)
	requireCode(t, err, crypto.CodeEmptyCorpus, crypto.ErrEmptyCorpus)
}

func TestCrackXORRepeat(t *testing.T) {
	for _, repeat := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("lyric x%d", repeat), func(t *testing.T) {
			pt := bytes.Repeat(iceLyric, repeat)
			ct, err := crypto.XORRepeat(nil, pt, []byte("ICE"))
			require.NoError(t, err)

			got, err := crypto.CrackXORRepeat(ct)
			require.NoError(t, err)
			assert.Equal(t, "ICE", string(got.Key))
			assert.Equal(t, pt, got.Plaintext)
		})
	}
}

func TestCrackXORRepeatParallel(t *testing.T) {
	pt := iceLyric
	ct, err := crypto.XORRepeat(nil, pt, []byte("ICE"))
	require.NoError(t, err)

	seq, err := crypto.CrackXORRepeatConfig(ct, crypto.DefaultBreakerConfig())
	require.NoError(t, err)
	par, err := crypto.CrackXORRepeatConfig(ct, crypto.DefaultBreakerConfig().WithParallel(true))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestCrackXORRepeatTooShort(t *testing.T) {
	_, err := crypto.CrackXORRepeat([]byte("1234567"))
	requireCode(t, err, crypto.CodeCiphertextTooShort, crypto.ErrCiphertextTooShort)
}

func TestCrackXORRepeatInvalidConfig(t *testing.T) {
	_, err := crypto.CrackXORRepeatConfig(bytes.Repeat(iceLyric, 3), crypto.DefaultBreakerConfig().WithCandidates(0))
	requireCode(t, err, crypto.CodeInvalidConfig, crypto.ErrInvalidConfig)
}

func TestCandidateBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b crypto.Candidate
		want bool
	}{
		{
			name: "higher score",
			a:    crypto.Candidate{Key: []byte("B"), Score: 2},
			b:    crypto.Candidate{Key: []byte("A"), Score: 1},
			want: true,
		},
		{
			name: "lower score",
			a:    crypto.Candidate{Key: []byte("A"), Score: 1},
			b:    crypto.Candidate{Key: []byte("B"), Score: 2},
			want: false,
		},
		{
			name: "tie prefers shorter key",
			a:    crypto.Candidate{Key: []byte("ICE"), Score: 1},
			b:    crypto.Candidate{Key: []byte("ICEICE"), Score: 1},
			want: true,
		},
		{
			name: "tie prefers smaller key",
			a:    crypto.Candidate{Key: []byte{0x01}, Score: 1},
			b:    crypto.Candidate{Key: []byte{0x02}, Score: 1},
			want: true,
		},
		{
			name: "identical",
			a:    crypto.Candidate{Key: []byte{0x01}, Score: 1},
			b:    crypto.Candidate{Key: []byte{0x01}, Score: 1},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Better(tt.b))
		})
	}
}
