package crypto

import (
	"fmt"

	"github.com/samber/oops"
)

// PadLength returns the length of n bytes after PKCS#7 padding to blockSize.
// A full block of padding is added when n is already a multiple. It panics
// if blockSize is outside [1, 255].
func PadLength(n, blockSize int) int {
	checkPadBlockSize(blockSize)
	return n + blockSize - n%blockSize
}

func checkPadBlockSize(blockSize int) {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("block size out of range: %d", blockSize))
	}
}

// Pad stores src followed by PKCS#7 padding in buf and returns it. buf may
// share memory with src. It panics if blockSize is outside [1, 255].
func Pad(buf, src []byte, blockSize int) []byte {
	n := PadLength(len(src), blockSize)
	p := n - len(src)
	buf = grow(buf, n)
	copy(buf, src)
	for i := len(src); i < n; i++ {
		buf[i] = byte(p)
	}
	return buf
}

// IsPadded reports whether b ends with valid PKCS#7 padding for blockSize.
func IsPadded(b []byte, blockSize int) bool {
	if len(b) == 0 {
		return false
	}
	p := int(b[len(b)-1])
	if p == 0 || p > blockSize || p > len(b) {
		return false
	}
	for _, c := range b[len(b)-p:] {
		if int(c) != p {
			return false
		}
	}
	return true
}

// Unpad strips PKCS#7 padding from b. If b is not validly padded it is
// returned unchanged; use CheckedUnpad to treat that as an error. The result
// shares memory with b.
func Unpad(b []byte, blockSize int) []byte {
	if !IsPadded(b, blockSize) {
		return b
	}
	return b[:len(b)-int(b[len(b)-1])]
}

// CheckedUnpad strips PKCS#7 padding from b, failing if the padding is
// invalid.
func CheckedUnpad(b []byte, blockSize int) ([]byte, error) {
	if !IsPadded(b, blockSize) {
		var last int
		if len(b) > 0 {
			last = int(b[len(b)-1])
		}
		return nil, oops.
			Code(CodeInvalidPadding).
			In("crypto").
			With("length", len(b)).
			With("block_size", blockSize).
			With("last_byte", last).
			Wrap(ErrInvalidPadding)
	}
	return b[:len(b)-int(b[len(b)-1])], nil
}
