package totp

import (
	"errors"
	"testing"
)

// TestNew tests configuration construction
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		digits  uint32
		skew    uint8
		period  uint64
		wantErr error
	}{
		{"defaults", 6, 1, 30, nil},
		{"one digit", 1, 0, 30, nil},
		{"nine digits", 9, 0, 30, nil},
		{"wide skew", 6, 255, 30, nil},
		{"one second period", 6, 1, 1, nil},
		{"zero digits", 0, 1, 30, ErrInvalidDigits},
		{"ten digits", 10, 1, 30, ErrOverflow},
		{"huge digits", 100, 1, 30, ErrOverflow},
		{"zero period", 6, 1, 0, ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.digits, tt.skew, tt.period)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Digits != tt.digits || cfg.Skew != tt.skew || cfg.Period != tt.period {
				t.Errorf("New(%d, %d, %d) = %+v, fields do not round-trip",
					tt.digits, tt.skew, tt.period, cfg)
			}
		})
	}
}

// TestDefaultConfig tests the default parameter values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Digits != 6 {
		t.Errorf("default digits = %d, want 6", cfg.Digits)
	}
	if cfg.Skew != 1 {
		t.Errorf("default skew = %d, want 1", cfg.Skew)
	}
	if cfg.Period != 30 {
		t.Errorf("default period = %d, want 30", cfg.Period)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

// TestPow10 tests the power table used for truncation
func TestPow10(t *testing.T) {
	want := uint32(1)
	for n := uint32(0); n <= 9; n++ {
		if got := pow10(n); got != want {
			t.Errorf("pow10(%d) = %d, want %d", n, got, want)
		}
		want *= 10
	}
}
