package crypto

import (
	"io"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// EncryptionOracle encrypts pt under a random AES-128 key after surrounding
// it with 5 to 10 random bytes on each side. It picks ECB or CBC (with a
// random IV) with equal probability and returns the mode it used. All
// randomness is read from r, so a seeded reader makes the result
// reproducible. The returned Mode is meaningless when err is non-nil.
func EncryptionOracle(r io.Reader, pt []byte) ([]byte, Mode, error) {
	// key, then one byte each for the mode, prefix length and suffix length.
	header := make([]byte, AESBlockSize+3)
	if err := readRandom(r, header); err != nil {
		return nil, 0, err
	}
	key := header[:AESBlockSize]
	mode := Mode(header[AESBlockSize] & 1)
	headLen := int(header[AESBlockSize+1])%6 + 5
	tailLen := int(header[AESBlockSize+2])%6 + 5

	buf := make([]byte, headLen+len(pt)+tailLen)
	if err := readRandom(r, buf[:headLen]); err != nil {
		return nil, 0, err
	}
	copy(buf[headLen:], pt)
	if err := readRandom(r, buf[headLen+len(pt):]); err != nil {
		return nil, 0, err
	}

	c, err := NewAES(key)
	if err != nil {
		return nil, 0, err
	}
	var ct []byte
	switch mode {
	case ModeECB:
		ct = EncryptECB(c, buf)
	default:
		iv := make([]byte, AESBlockSize)
		if err := readRandom(r, iv); err != nil {
			return nil, 0, err
		}
		if ct, err = EncryptCBC(c, buf, iv); err != nil {
			return nil, 0, err
		}
	}
	log.WithFields(logrus.Fields{
		"mode":     mode.String(),
		"head_len": headLen,
		"tail_len": tailLen,
	}).Debug("encryption oracle")
	return ct, mode, nil
}

// DetectMode guesses which mode produced ct by looking for repeated blocks.
// It is reliable when the plaintext contains at least two identical aligned
// blocks, for example a long run of a single byte.
func DetectMode(ct []byte) Mode {
	if DetectECB(ct, AESBlockSize) {
		return ModeECB
	}
	return ModeCBC
}

func readRandom(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return oops.
			Code(CodeRandomSource).
			In("oracle").
			With("want", len(b)).
			Wrap(err)
	}
	return nil
}
