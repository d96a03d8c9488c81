package crypto

// Mode identifies a block cipher mode of operation.
type Mode int

const (
	// ModeECB encrypts every block independently.
	ModeECB Mode = iota
	// ModeCBC chains every block to the previous ciphertext block, starting
	// from an IV.
	ModeCBC
)

// String returns the conventional name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	default:
		return "unknown"
	}
}
