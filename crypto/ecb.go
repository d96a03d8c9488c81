package crypto

import (
	"crypto/cipher"
	"fmt"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// AESBlockSize is the block size of AES in bytes.
const AESBlockSize = 16

type ecbCrypter struct {
	blockSize int
	crypt     func(dst, src []byte)
}

// NewECBEncrypter returns a BlockMode that encrypts each block of its input
// independently with c.
func NewECBEncrypter(c Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Encrypt,
	}
}

// NewECBDecrypter returns a BlockMode that decrypts each block of its input
// independently with c.
func NewECBDecrypter(c Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Decrypt,
	}
}

func (cr *ecbCrypter) BlockSize() int {
	return cr.blockSize
}

func (cr *ecbCrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.blockSize
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", n, bs))
	}

	for i := 0; i < n; i += bs {
		cr.crypt(dst[i:i+bs], src[i:i+bs])
	}
}

// EncryptECB pads pt with PKCS#7 and encrypts it in ECB mode.
func EncryptECB(c Block, pt []byte) []byte {
	ct := Pad(nil, pt, c.BlockSize())
	NewECBEncrypter(c).CryptBlocks(ct, ct)
	return ct
}

// DecryptECB decrypts ct in ECB mode. If unpad is set, PKCS#7 padding is
// removed when present.
func DecryptECB(c Block, ct []byte, unpad bool) ([]byte, error) {
	if err := checkBlocks(ct, c.BlockSize()); err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewECBDecrypter(c).CryptBlocks(pt, ct)
	if unpad {
		pt = Unpad(pt, c.BlockSize())
	}
	return pt, nil
}

func checkBlocks(b []byte, blockSize int) error {
	if len(b)%blockSize != 0 {
		return oops.
			Code(CodeInvalidBlockLength).
			In("crypto").
			With("length", len(b)).
			With("block_size", blockSize).
			Wrap(ErrInvalidBlockLength)
	}
	return nil
}

// DetectECB reports whether any two full blocks of ct are identical, which
// is how ECB leaks repeated plaintext blocks.
func DetectECB(ct []byte, blockSize int) bool {
	if blockSize < 1 {
		return false
	}
	blocks := make(map[string]struct{})
	s := string(ct)
	for i := 0; i+blockSize <= len(s); i += blockSize {
		b := s[i : i+blockSize]
		if _, ok := blocks[b]; ok {
			return true
		}
		blocks[b] = struct{}{}
	}
	return false
}

// DetectECBCorpus returns the index of the only ciphertext in cts that
// DetectECB flags. It fails if no ciphertext or more than one is flagged.
func DetectECBCorpus(cts [][]byte, blockSize int) (int, error) {
	var found []int
	for i, ct := range cts {
		if DetectECB(ct, blockSize) {
			found = append(found, i)
		}
	}
	if len(found) != 1 {
		log.WithFields(logrus.Fields{
			"corpus_size": len(cts),
			"matches":     found,
		}).Warn("ECB detection did not find exactly one ciphertext")
		return -1, oops.
			Code(CodeAmbiguousECB).
			In("crypto").
			With("corpus_size", len(cts)).
			With("matches", found).
			Wrapf(ErrAmbiguousECB, "found %d ciphertexts with repeated blocks, want 1", len(found))
	}
	log.WithFields(logrus.Fields{
		"corpus_size": len(cts),
		"index":       found[0],
	}).Debug("detected ECB ciphertext")
	return found[0], nil
}
