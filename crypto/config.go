package crypto

import "github.com/samber/oops"

// BreakerConfig controls the search performed by CrackXORRepeatConfig.
// It follows the builder pattern for optional configuration and validation.
type BreakerConfig struct {
	// MinKeySize is the smallest repeating key length tried.
	// Default: 2
	MinKeySize int

	// MaxKeySize is the largest repeating key length tried. Key sizes that
	// do not fit four times into the ciphertext are skipped.
	// Default: 40
	MaxKeySize int

	// Candidates is how many of the most probable key sizes are fully
	// cracked and scored.
	// Default: 3
	Candidates int

	// Parallel cracks the candidate key sizes concurrently. Results are
	// identical to the sequential search.
	// Default: false
	Parallel bool
}

// DefaultBreakerConfig returns a BreakerConfig with the standard search
// bounds.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		MinKeySize: 2,
		MaxKeySize: 40,
		Candidates: 3,
	}
}

// WithKeySizes sets the inclusive range of key sizes to try.
func (c *BreakerConfig) WithKeySizes(minSize, maxSize int) *BreakerConfig {
	c.MinKeySize = minSize
	c.MaxKeySize = maxSize
	return c
}

// WithCandidates sets how many key sizes are cracked in full.
func (c *BreakerConfig) WithCandidates(n int) *BreakerConfig {
	c.Candidates = n
	return c
}

// WithParallel enables or disables concurrent cracking of key sizes.
func (c *BreakerConfig) WithParallel(parallel bool) *BreakerConfig {
	c.Parallel = parallel
	return c
}

// Validate checks that the configuration describes a non-empty search.
func (c *BreakerConfig) Validate() error {
	if c.MinKeySize < 1 {
		return oops.
			Code(CodeInvalidConfig).
			In("config").
			With("min_key_size", c.MinKeySize).
			Wrapf(ErrInvalidConfig, "min key size must be at least 1")
	}
	if c.MaxKeySize < c.MinKeySize {
		return oops.
			Code(CodeInvalidConfig).
			In("config").
			With("min_key_size", c.MinKeySize).
			With("max_key_size", c.MaxKeySize).
			Wrapf(ErrInvalidConfig, "max key size must not be less than min key size")
	}
	if c.Candidates < 1 {
		return oops.
			Code(CodeInvalidConfig).
			In("config").
			With("candidates", c.Candidates).
			Wrapf(ErrInvalidConfig, "candidates must be at least 1")
	}
	return nil
}
