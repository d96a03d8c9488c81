package crypto

import (
	"crypto/aes"

	"github.com/samber/oops"
)

// Block is a cipher that transforms exactly one block at a time. It is the
// only thing the mode implementations in this package need from a cipher.
// crypto/cipher.Block satisfies it.
type Block interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// NewAES returns the AES block cipher for a 16, 24 or 32 byte key.
func NewAES(key []byte) (Block, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, oops.
			Code(CodeInvalidKey).
			In("crypto").
			With("key_length", len(key)).
			Wrapf(ErrInvalidKey, "%v", err)
	}
	return c, nil
}
