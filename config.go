package fixwire

// DefaultSeparator is the standard FIX field separator, the SOH control
// byte. Tests and tools commonly substitute '|'.
const DefaultSeparator byte = 0x01

// Config is the framing policy consumed by decoders and encoders. It is a
// pure value with no side effects.
type Config struct {
	// Separator is the single-byte field terminator.
	Separator byte
	// VerifyChecksum controls whether the declared CheckSum <10> value is
	// compared against the recomputed sum. Structural validation of the
	// checksum field happens regardless.
	VerifyChecksum bool
	// MaxMessageBytes caps how large a single message the StreamDecoder
	// will buffer. Zero means no cap. One-shot decoding ignores it since
	// the caller already holds the full buffer.
	MaxMessageBytes int
}

// DefaultConfig returns the protocol-standard policy: SOH separator,
// checksum verification on, no message size cap.
func DefaultConfig() Config {
	return Config{
		Separator:      DefaultSeparator,
		VerifyChecksum: true,
	}
}

// Option configures a decoder or encoder at construction time.
type Option func(*Config)

// WithSeparator returns an Option that sets the field separator byte.
func WithSeparator(sep byte) Option {
	return func(c *Config) {
		c.Separator = sep
	}
}

// WithChecksumVerification returns an Option that enables or disables
// comparison of the declared checksum against the recomputed sum.
func WithChecksumVerification(enabled bool) Option {
	return func(c *Config) {
		c.VerifyChecksum = enabled
	}
}

// WithMaxMessageBytes returns an Option that caps the size of a single
// streamed message. A message whose computed total size exceeds the cap is
// rejected with ErrLength instead of growing the stream buffer.
func WithMaxMessageBytes(n int) Option {
	return func(c *Config) {
		c.MaxMessageBytes = n
	}
}
