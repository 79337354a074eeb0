package totp

import "fmt"

// Default configuration values per RFC 6238 and common authenticator apps.
const (
	// DefaultDigits is the default code width.
	DefaultDigits uint32 = 6
	// DefaultSkew is the default number of time steps accepted on each side
	// of the current step during verification.
	DefaultSkew uint8 = 1
	// DefaultPeriod is the default time-step duration in seconds.
	DefaultPeriod uint64 = 30
)

// maxDigits is the largest code width whose modulus 10^digits still fits
// in a uint32.
const maxDigits = 9

// Config holds the TOTP generation and verification parameters. It is an
// immutable value: copy it freely and share it across goroutines without
// synchronization.
type Config struct {
	// Digits is the number of decimal digits in the code, between 1 and 9.
	Digits uint32
	// Skew is the number of time steps checked before and after the current
	// step during verification (tolerance for clock skew between prover
	// and verifier).
	Skew uint8
	// Period is the time-step duration in seconds.
	Period uint64
}

// DefaultConfig returns the configuration used by the package-level
// Generate and Verify functions: 6 digits, skew 1, 30 second period.
func DefaultConfig() Config {
	return Config{Digits: DefaultDigits, Skew: DefaultSkew, Period: DefaultPeriod}
}

// New returns a validated Config with the provided parameters.
// It returns ErrInvalidPeriod for a zero period, ErrInvalidDigits for zero
// digits, and ErrOverflow for more than 9 digits (10^digits would exceed
// the 32-bit code range).
func New(digits uint32, skew uint8, period uint64) (Config, error) {
	cfg := Config{Digits: digits, Skew: skew, Period: period}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks the configuration invariants. It is re-run at the head of
// GenerateAt and VerifyAt so a hand-built Config cannot reach a division by
// zero or a wrapped modulus.
func (c Config) validate() error {
	if c.Period == 0 {
		return ErrInvalidPeriod
	}
	if c.Digits == 0 {
		return ErrInvalidDigits
	}
	if c.Digits > maxDigits {
		return fmt.Errorf("%w: 10^%d exceeds the 32-bit code range", ErrOverflow, c.Digits)
	}
	return nil
}
