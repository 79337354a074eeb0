// Package totp implements TOTP (RFC 6238) code generation and verification
// on HMAC-SHA1 (RFC 2104/RFC 4226 dynamic truncation).
//
// TOTP (Time-based One-Time Password) derives short-lived numeric codes
// from a shared secret and the current time, commonly used with
// authenticator apps like Google Authenticator, Authy, etc. Only SHA-1 is
// supported, which is what the overwhelming majority of authenticator apps
// implement.
//
// # Defaults
//
// The package-level functions use the conventional parameters: 6 digit
// codes, a 30 second time step, and a skew of 1 (one step of clock drift
// tolerated on each side during verification):
//
//	code, err := totp.Generate(key, uint64(time.Now().Unix()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := totp.Verify(key, uint64(time.Now().Unix()), code)
//
// # Custom Parameters
//
// Non-default parameters go through a validated Config value:
//
//	cfg, err := totp.New(8, 0, 60) // 8 digits, no skew, 60 second step
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := cfg.GenerateAt(key, uint64(time.Now().Unix()))
//
// Digits must be between 1 and 9: a 10 digit code would overflow the
// 32-bit code range and is rejected with ErrOverflow before any
// arithmetic runs.
//
// # Code Formatting
//
// Generate and GenerateAt return unpadded integers in [0, 10^digits).
// Codes shown to users are conventionally zero-padded to the configured
// width (287082 displays as "287082", but 81804 displays as "081804").
// The Authenticator wrapper handles this, along with decimal parsing and
// context support for validation flows:
//
//	auth, err := totp.NewAuthenticator(totp.AuthConfig{Key: key})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from the user's authenticator app
//	if err := auth.Authenticate(ctx, "287082"); err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	}
//
// # Secret Handling
//
// Keys are opaque byte sequences of any length, including empty, per the
// HMAC specification. The package never retains, logs, or writes key
// material: GenerateAt and VerifyAt only read the key for the duration of
// the call, and the Authenticator works on a private copy so callers can
// zero their own buffer after construction. Secret provisioning, base32
// encoding, and QR rendering are out of scope; pair this package with a
// provisioning layer if you need them.
//
// # Thread Safety
//
// Config is an immutable value and the Authenticator holds no mutable
// state. All functions and methods are safe for concurrent use without
// synchronization.
package totp
