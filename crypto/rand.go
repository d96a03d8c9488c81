package crypto

import (
	"fmt"
)

// MT19937 is the 32-bit Mersenne Twister. It is predictable and must not be
// used where real randomness is needed; here it gives oracles and test
// corpora a reproducible source of bytes.
type MT19937 struct {
	MT    [mtN]uint32
	Index int
}

const (
	mtW = 32
	mtN = 624
	mtM = 397
	mtR = 31
	mtA = 0x9908B0DF
	mtU = 11
	mtD = 0xFFFFFFFF
	mtS = 7
	mtB = 0x9D2C5680
	mtT = 15
	mtC = 0xEFC60000
	mtL = 18
	mtF = 1812433253

	mtLowerMask uint32 = (1 << mtR) - 1
	mtUpperMask uint32 = ^mtLowerMask
)

// NewMT19937 returns a generator that must be seeded before use.
func NewMT19937() *MT19937 {
	return &MT19937{Index: mtN + 1}
}

// Seed resets the generator state from seed.
func (src *MT19937) Seed(seed uint32) {
	src.Index = mtN
	src.MT[0] = seed
	for i := 1; i < mtN; i++ {
		src.MT[i] = mtF*(src.MT[i-1]^(src.MT[i-1]>>(mtW-2))) + uint32(i)
	}
}

// Uint32 returns the next output. It panics if Seed was never called.
func (src *MT19937) Uint32() uint32 {
	if src.Index >= mtN {
		if src.Index > mtN {
			panic("generator was never seeded")
		}
		src.twist()
	}

	y := src.MT[src.Index]
	y ^= (y >> mtU) & mtD
	y ^= (y << mtS) & mtB
	y ^= (y << mtT) & mtC
	y ^= y >> mtL
	src.Index++
	return y
}

func (src *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		x := src.MT[i]&mtUpperMask + src.MT[(i+1)%mtN]&mtLowerMask
		xA := x >> 1
		if x%2 != 0 {
			xA ^= mtA
		}
		src.MT[i] = src.MT[(i+mtM)%mtN] ^ xA
	}
	src.Index = 0
}

// MT19937Stream turns the output of a seeded MT19937 into bytes, low byte
// first. It can be used as a cipher.Stream or as an io.Reader.
type MT19937Stream struct {
	src  MT19937
	w, b uint32
}

// NewMT19937Stream returns a stream whose output is fully determined by seed.
func NewMT19937Stream(seed uint32) *MT19937Stream {
	src := NewMT19937()
	src.Seed(seed)
	return &MT19937Stream{src: *src}
}

// XORKeyStream XORs each byte of src with the next keystream byte and
// stores the result in dst.
func (ms *MT19937Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}

	for i := range src {
		if ms.b == 0 {
			ms.w = ms.src.Uint32()
			ms.b = 4
		}
		dst[i] = src[i] ^ byte(ms.w)
		ms.w >>= 8
		ms.b--
	}
}

// Read fills p with keystream bytes. It never fails.
func (ms *MT19937Stream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	ms.XORKeyStream(p, p)
	return len(p), nil
}
