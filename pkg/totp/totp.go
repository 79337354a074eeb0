package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math"
)

// Generate returns the TOTP code for key at the given Unix time using the
// default configuration (6 digits, skew 1, 30 second period).
//
// The returned code is an unpadded integer in [0, 10^6). Callers displaying
// codes to users are responsible for zero-padding to the configured width;
// see Authenticator for a wrapper that does this.
func Generate(key []byte, unix uint64) (uint32, error) {
	return DefaultConfig().GenerateAt(key, unix)
}

// Verify reports whether token matches the TOTP code for key at the given
// Unix time using the default configuration. With the default skew of 1,
// codes from the previous and next 30 second step are also accepted.
func Verify(key []byte, unix uint64, token uint32) (bool, error) {
	return DefaultConfig().VerifyAt(key, unix, token)
}

// GenerateAt returns the TOTP code for key at the given Unix time.
//
// The code is derived per RFC 6238: the time counter unix/Period is encoded
// as an 8-byte big-endian message, signed with HMAC-SHA1 under key, and
// reduced to Digits decimal digits by RFC 4226 dynamic truncation. The same
// (key, unix, Config) always yields the same code.
//
// Any key length is accepted, including empty, per the HMAC specification.
// The key is only read for the duration of the call; ownership stays with
// the caller.
func (c Config) GenerateAt(key []byte, unix uint64) (uint32, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	return c.generate(key, unix)
}

// VerifyAt reports whether token matches any code in the verification
// window around the given Unix time: 2*Skew+1 time steps centered on
// unix/Period, probed in increasing order with a short-circuit on the
// first match. Each comparison is constant-time.
//
// When unix is within Skew*Period of the epoch, the window start saturates
// at counter zero; probes before the epoch are skipped, never wrapped
// around to far-future counters.
func (c Config) VerifyAt(key []byte, unix uint64, token uint32) (bool, error) {
	if err := c.validate(); err != nil {
		return false, err
	}

	counter := unix / c.Period
	skew := uint64(c.Skew)

	first := uint64(0)
	if counter > skew {
		first = counter - skew
	}
	last := counter + skew
	if last < counter {
		return false, fmt.Errorf("%w: verification window exceeds the counter range", ErrOverflow)
	}

	for probe := first; probe <= last; probe++ {
		if probe > math.MaxUint64/c.Period {
			return false, fmt.Errorf("%w: probe time exceeds the 64-bit range", ErrOverflow)
		}
		code, err := c.generate(key, probe*c.Period)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeEq(int32(code), int32(token)) == 1 {
			return true, nil
		}
	}

	return false, nil
}

// generate computes the code for a validated configuration.
func (c Config) generate(key []byte, unix uint64) (uint32, error) {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], unix/c.Period)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// RFC 4226 dynamic truncation: the low nibble of the final digest byte
	// selects a 4-byte window. With SHA-1's 20-byte digest the window is
	// always in bounds (offset at most 15), but the bound is checked rather
	// than assumed.
	offset := int(sum[len(sum)-1] & 0x0f)
	if offset+4 > len(sum) {
		return 0, fmt.Errorf("%w: %d bytes", ErrShortDigest, len(sum))
	}

	trunc := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
	return trunc % pow10(c.Digits), nil
}

// pow10 returns 10^n. The caller guarantees n <= maxDigits.
func pow10(n uint32) uint32 {
	p := uint32(1)
	for i := uint32(0); i < n; i++ {
		p *= 10
	}
	return p
}
