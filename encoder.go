package fixwire

import (
	"bytes"
	"strconv"

	"github.com/danmuck/fixwire/internal/checksum"
)

// Encoder frames outbound payloads: it wraps a payload in BeginString,
// BodyLength and CheckSum fields so the result decodes back through a
// Decoder with the same policy. Like Decoder it is stateless and safe for
// concurrent use.
type Encoder struct {
	cfg Config
}

// NewEncoder returns an Encoder with DefaultConfig modified by opts.
func NewEncoder(opts ...Option) *Encoder {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder{cfg: cfg}
}

// Config returns the framing policy the encoder was built with.
func (e *Encoder) Config() Config {
	return e.cfg
}

// Encode appends one complete framed message to dst and returns the
// extended buffer. beginString must be non-empty and free of the
// separator and '='; payload must be a non-empty sequence of
// separator-terminated fields, exactly the bytes a decoded frame would
// report as Payload. BodyLength is len(payload) and CheckSum is computed
// over every preceding byte, separators included.
func (e *Encoder) Encode(dst, beginString, payload []byte) ([]byte, error) {
	sep := e.cfg.Separator
	if len(beginString) == 0 ||
		bytes.IndexByte(beginString, sep) >= 0 ||
		bytes.IndexByte(beginString, '=') >= 0 {
		return dst, ErrInvalid
	}
	if len(payload) == 0 || payload[len(payload)-1] != sep {
		return dst, ErrInvalid
	}

	start := len(dst)
	dst = append(dst, '8', '=')
	dst = append(dst, beginString...)
	dst = append(dst, sep, '9', '=')
	dst = strconv.AppendUint(dst, uint64(len(payload)), 10)
	dst = append(dst, sep)
	dst = append(dst, payload...)

	digits := checksum.Format(checksum.Compute(dst[start:]))
	dst = append(dst, '1', '0', '=')
	dst = append(dst, digits[:]...)
	dst = append(dst, sep)

	// A frame below the structural minimum would never decode again.
	if len(dst)-start < minMessageLen {
		return dst[:start], ErrLength
	}
	return dst, nil
}
