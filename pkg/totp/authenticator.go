package totp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AuthConfig holds Authenticator configuration.
type AuthConfig struct {
	// Key is the raw shared secret. Any length is accepted, including
	// empty, per the HMAC specification. The Authenticator keeps its own
	// copy, so the caller may zero the original buffer after construction.
	Key []byte
	// Digits specifies the number of decimal digits in the code (1-9).
	// Default: 6
	Digits uint32
	// Skew specifies the number of time steps to check before and after
	// the current step during verification.
	// Default: 1
	Skew uint8
	// Period specifies the time-step duration in seconds.
	// Default: 30
	Period uint64
	// Now supplies the current time, overridable for testing.
	// Default: time.Now
	Now func() time.Time
}

// Authenticator generates and validates display-formatted TOTP codes.
// It wraps the integer core with the zero-padding and decimal parsing that
// user-facing flows need: codes are fixed-width strings such as "081804"
// rather than bare integers.
//
// It is safe for concurrent use.
type Authenticator struct {
	key []byte
	cfg Config
	now func() time.Time
}

// NewAuthenticator creates a new TOTP authenticator.
// Zero Digits, Skew, and Period fields take the RFC 6238 defaults; the
// resulting configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	// Apply defaults. A zero Skew takes the default too, so explicit
	// zero-skew verification has to go through Config.VerifyAt directly.
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}
	if cfg.Skew == 0 {
		cfg.Skew = DefaultSkew
	}
	if cfg.Period == 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	core, err := New(cfg.Digits, cfg.Skew, cfg.Period)
	if err != nil {
		return nil, err
	}

	key := make([]byte, len(cfg.Key))
	copy(key, cfg.Key)

	return &Authenticator{
		key: key,
		cfg: core,
		now: cfg.Now,
	}, nil
}

// Config returns the validated core configuration in use.
func (a *Authenticator) Config() Config {
	if a == nil {
		return Config{}
	}
	return a.cfg
}

// Generate returns the code for the current time, zero-padded to the
// configured width.
func (a *Authenticator) Generate() (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	code, err := a.cfg.GenerateAt(a.key, a.unix())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", int(a.cfg.Digits), code), nil
}

// Authenticate validates a code against the current time with skew
// tolerance. It returns nil if the code matches, ErrInvalidCode if it is
// malformed or does not match, and the context's error if ctx is done.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}
	if len(code) != int(a.cfg.Digits) {
		return fmt.Errorf("%w: expected %d digits", ErrInvalidCode, a.cfg.Digits)
	}

	token, err := strconv.ParseUint(code, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: code must be decimal digits", ErrInvalidCode)
	}

	ok, err := a.cfg.VerifyAt(a.key, a.unix(), uint32(token))
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}

	return nil
}

// unix returns the clock reading clamped to the Unix epoch.
func (a *Authenticator) unix() uint64 {
	secs := a.now().Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}
