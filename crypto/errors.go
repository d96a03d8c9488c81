package crypto

import (
	"errors"

	"github.com/samber/oops"
)

// Error codes attached to every failure returned by this package. They can be
// read back with oops.OopsError.Code.
const (
	CodeLengthMismatch     = "LENGTH_MISMATCH"
	CodeEmptyKey           = "EMPTY_KEY"
	CodeInvalidPadding     = "INVALID_PADDING"
	CodeAmbiguousECB       = "AMBIGUOUS_ECB_DETECTION"
	CodeCiphertextTooShort = "CIPHERTEXT_TOO_SHORT"
	CodeInvalidKeySize     = "INVALID_KEY_SIZE"
	CodeInvalidKey         = "INVALID_KEY"
	CodeInvalidIV          = "INVALID_IV"
	CodeInvalidBlockLength = "INVALID_BLOCK_LENGTH"
	CodeEmptyCorpus        = "EMPTY_CORPUS"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeRandomSource       = "RANDOM_SOURCE_FAILED"
)

var (
	// ErrLengthMismatch is returned when two buffers that must have the same
	// length do not.
	ErrLengthMismatch = errors.New("buffers have different length")

	// ErrEmptyKey is returned by repeating-key XOR when the key is empty.
	ErrEmptyKey = errors.New("key is empty")

	// ErrInvalidPadding is returned by strict unpadding when the trailing bytes
	// are not valid PKCS#7 padding.
	ErrInvalidPadding = errors.New("bad padding")

	// ErrAmbiguousECB is returned when a corpus does not contain exactly one
	// ciphertext with repeated blocks.
	ErrAmbiguousECB = errors.New("ambiguous ECB detection")

	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrInvalidKeySize     = errors.New("invalid key size")
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidIV          = errors.New("invalid iv")
	ErrInvalidBlockLength = errors.New("length not a multiple of block size")
	ErrEmptyCorpus        = errors.New("empty corpus")
	ErrInvalidConfig      = errors.New("invalid config")
)

func lengthMismatch(op string, x, y []byte) error {
	return oops.
		Code(CodeLengthMismatch).
		In("crypto").
		With("op", op).
		With("len_x", len(x)).
		With("len_y", len(y)).
		Wrap(ErrLengthMismatch)
}
