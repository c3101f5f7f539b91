package fixwire

import (
	"github.com/danmuck/fixwire/internal/checksum"
)

const (
	// minMessageLen is the shortest structurally legal message, e.g.
	// "8=?|9=5|35=?|10=183|".
	minMessageLen = 20
	// checksumFieldLen is len("10=") + three digits + the separator.
	checksumFieldLen = 7
)

// Decoder validates complete in-memory buffers and produces zero-copy
// frame views. It is stateless: safe for concurrent and repeated use on
// independent inputs.
type Decoder struct {
	cfg Config
}

// NewDecoder returns a Decoder with DefaultConfig modified by opts.
func NewDecoder(opts ...Option) *Decoder {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decoder{cfg: cfg}
}

// Config returns the framing policy the decoder was built with.
func (d *Decoder) Config() Config {
	return d.cfg
}

// Buffered wraps the decoder's policy in a StreamDecoder for incremental
// consumption of a continuous byte stream.
func (d *Decoder) Buffered() *StreamDecoder {
	return &StreamDecoder{dec: *d}
}

// Decode validates data as one complete message and returns a view over
// it. The frame aliases data; no bytes are copied. Decode returns
// ErrLength, ErrInvalid or ErrCheckSum and never panics, whatever the
// input.
func (d *Decoder) Decode(data []byte) (RawFrame, error) {
	if len(data) < minMessageLen {
		return RawFrame{}, ErrLength
	}
	info, err := scanHeader(data, d.cfg.Separator)
	if err != nil {
		return RawFrame{}, err
	}
	if err := verifyBodyLength(data, info); err != nil {
		return RawFrame{}, err
	}
	if err := verifyChecksumField(data, d.cfg.Separator); err != nil {
		return RawFrame{}, err
	}
	if d.cfg.VerifyChecksum {
		if err := verifyChecksum(data); err != nil {
			return RawFrame{}, err
		}
	}
	bsStart, bsEnd := info.beginStringRange()
	start := info.startOfBody()
	return RawFrame{
		data:             data,
		beginStringStart: bsStart,
		beginStringEnd:   bsEnd,
		payloadStart:     start,
		payloadEnd:       start + int(info.bodyLength),
	}, nil
}

// verifyBodyLength checks that the declared BodyLength accounts for every
// byte between the header and the checksum field. The comparison is done
// in uint64 so a wrapped or absurd declared value cannot overflow anything
// here; it simply fails to match.
func verifyBodyLength(data []byte, info headerInfo) error {
	endOfBody := len(data) - checksumFieldLen
	start := info.startOfBody()
	if start > endOfBody {
		return ErrLength
	}
	if info.bodyLength != uint64(endOfBody-start) {
		return ErrLength
	}
	return nil
}

// verifyChecksumField checks that the trailing seven bytes are exactly
// "10=" followed by three decimal digits and the separator.
func verifyChecksumField(data []byte, separator byte) error {
	tail := data[len(data)-checksumFieldLen:]
	if tail[0] != '1' || tail[1] != '0' || tail[2] != '=' || tail[6] != separator {
		return ErrInvalid
	}
	if _, ok := checksum.Parse(tail[3:6]); !ok {
		return ErrInvalid
	}
	return nil
}

func verifyChecksum(data []byte) error {
	tail := data[len(data)-checksumFieldLen:]
	declared, _ := checksum.Parse(tail[3:6])
	if declared != checksum.Compute(data[:len(data)-checksumFieldLen]) {
		return ErrCheckSum
	}
	return nil
}
