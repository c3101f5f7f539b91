package config

import "github.com/pkg/errors"

// SeparatorByte converts the user-facing separator spelling into the wire
// byte. Accepted forms: a single ASCII character (commonly "|") or the
// name "SOH" for the protocol-standard control byte.
func SeparatorByte(s string) (byte, error) {
	if s == "SOH" || s == "soh" {
		return 0x01, nil
	}
	if len(s) != 1 {
		return 0, errors.Errorf("separator must be one byte or SOH, got %q", s)
	}
	return s[0], nil
}
