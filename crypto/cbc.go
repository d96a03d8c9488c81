package crypto

import (
	"crypto/cipher"
	"fmt"

	"github.com/samber/oops"
)

type cbcEncrypter struct {
	c  Block
	cb []byte
}

// NewCBCEncrypter returns a BlockMode that encrypts in CBC mode by chaining
// single-block calls to c. iv must be one block long.
func NewCBCEncrypter(c Block, iv []byte) (cipher.BlockMode, error) {
	if err := checkIV(c, iv); err != nil {
		return nil, err
	}
	return &cbcEncrypter{
		c:  c,
		cb: append([]byte(nil), iv...),
	}, nil
}

func (cr *cbcEncrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcEncrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	tmp := make([]byte, bs)
	for i := 0; i < n; i += bs {
		sb := src[i : i+bs]
		// Lengths always match here.
		tmp, _ = XOR(tmp, sb, cr.cb)
		db := dst[i : i+bs]
		cr.c.Encrypt(db, tmp)
		copy(cr.cb, db)
	}
}

type cbcDecrypter struct {
	c  Block
	cb []byte
}

// NewCBCDecrypter returns a BlockMode that decrypts in CBC mode by chaining
// single-block calls to c. iv must be one block long.
func NewCBCDecrypter(c Block, iv []byte) (cipher.BlockMode, error) {
	if err := checkIV(c, iv); err != nil {
		return nil, err
	}
	return &cbcDecrypter{
		c:  c,
		cb: append([]byte(nil), iv...),
	}, nil
}

func (cr *cbcDecrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcDecrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	// Each block only depends on the previous ciphertext block, so decrypt
	// back to front; that way dst may alias src.
	dec := make([]byte, bs)
	next := make([]byte, bs)
	if n > 0 {
		copy(next, src[n-bs:])
	}
	for i := n - bs; i >= 0; i -= bs {
		prev := cr.cb
		if i > 0 {
			prev = src[i-bs : i]
		}
		cr.c.Decrypt(dec, src[i:i+bs])
		// Lengths always match here.
		dec, _ = XOR(dec, dec, prev)
		copy(dst[i:i+bs], dec)
	}
	if n > 0 {
		copy(cr.cb, next)
	}
}

func checkIV(c Block, iv []byte) error {
	if len(iv) != c.BlockSize() {
		return oops.
			Code(CodeInvalidIV).
			In("crypto").
			With("iv_length", len(iv)).
			With("block_size", c.BlockSize()).
			Wrapf(ErrInvalidIV, "iv length is not block size")
	}
	return nil
}

// EncryptCBC pads pt with PKCS#7 and encrypts it in CBC mode under iv.
func EncryptCBC(c Block, pt, iv []byte) ([]byte, error) {
	enc, err := NewCBCEncrypter(c, iv)
	if err != nil {
		return nil, err
	}
	ct := Pad(nil, pt, c.BlockSize())
	enc.CryptBlocks(ct, ct)
	return ct, nil
}

// DecryptCBC decrypts ct in CBC mode under iv. If unpad is set, PKCS#7
// padding is removed when present and left alone otherwise.
func DecryptCBC(c Block, ct, iv []byte, unpad bool) ([]byte, error) {
	pt, err := decryptCBC(c, ct, iv)
	if err != nil {
		return nil, err
	}
	if unpad {
		pt = Unpad(pt, c.BlockSize())
	}
	return pt, nil
}

// DecryptCBCChecked decrypts ct in CBC mode under iv and removes PKCS#7
// padding, failing if the padding is invalid.
func DecryptCBCChecked(c Block, ct, iv []byte) ([]byte, error) {
	pt, err := decryptCBC(c, ct, iv)
	if err != nil {
		return nil, err
	}
	return CheckedUnpad(pt, c.BlockSize())
}

func decryptCBC(c Block, ct, iv []byte) ([]byte, error) {
	dec, err := NewCBCDecrypter(c, iv)
	if err != nil {
		return nil, err
	}
	if err := checkBlocks(ct, c.BlockSize()); err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	dec.CryptBlocks(pt, ct)
	return pt, nil
}
