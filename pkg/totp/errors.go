package totp

import "errors"

// Common errors returned by the totp package.
var (
	// ErrInvalidPeriod indicates a configuration with a zero time-step period.
	ErrInvalidPeriod = errors.New("totp: period must be greater than zero")
	// ErrInvalidDigits indicates a configuration requesting a zero-width code.
	ErrInvalidDigits = errors.New("totp: digits must be at least 1")
	// ErrOverflow indicates arithmetic that would exceed the native integer
	// width: more than 9 code digits, or a verification window probing
	// counters beyond the 64-bit range.
	ErrOverflow = errors.New("totp: arithmetic overflow")
	// ErrShortDigest indicates the signer produced a digest too small for
	// RFC 4226 dynamic truncation.
	ErrShortDigest = errors.New("totp: digest too short for truncation")
	// ErrInvalidCode indicates the provided code is malformed or does not
	// match any code in the verification window.
	ErrInvalidCode = errors.New("totp: invalid code")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("totp: authenticator is nil")
)
