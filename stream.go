package fixwire

import "math"

// streamState is the explicit completion state of a StreamDecoder. Once
// failed, the decoder stays failed until Clear; target-known is recorded
// separately from buffer length so the smallest legal message is still
// reported as complete.
type streamState uint8

const (
	stateSizing streamState = iota
	stateTargetKnown
	stateFailed
)

// StreamDecoder turns a push-driven supply of bytes into a sequence of
// validated frames without the caller knowing message boundaries in
// advance. It owns one growable buffer and serves exactly one logical
// stream; it performs no locking, no I/O and never blocks. Share across
// goroutines only with external synchronization.
//
// The consumption loop, repeated per message:
//
//	region := dec.SupplyBuffer()   // fill completely with stream bytes
//	frame, err := dec.CurrentFrame()
//	// err != nil: sticky failure, recover via Clear
//	// frame == nil: not enough bytes yet, supply again
//	// frame != nil: consume, then Clear before the next message
type StreamDecoder struct {
	dec    Decoder
	buf    []byte
	target int
	state  streamState
	err    error
}

// NewStreamDecoder returns a StreamDecoder with DefaultConfig modified by
// opts.
func NewStreamDecoder(opts ...Option) *StreamDecoder {
	return NewDecoder(opts...).Buffered()
}

// Config returns the framing policy the decoder was built with.
func (d *StreamDecoder) Config() Config {
	return d.dec.cfg
}

// SupplyBuffer returns the region of the internal buffer the caller must
// fill completely with the next stream bytes before calling again. While
// fewer than the structural minimum of bytes are buffered, the region
// reaches exactly that minimum. Once the header can be scanned, the buffer
// grows to the computed total message size and the newly added region is
// returned; previously filled bytes are never handed out again. An empty
// region means no more bytes are needed: either a frame is complete or a
// sticky error was recorded, both reported by CurrentFrame.
func (d *StreamDecoder) SupplyBuffer() []byte {
	if d.state == stateFailed {
		return nil
	}
	cur := len(d.buf)
	if cur < minMessageLen {
		d.buf = grow(d.buf, minMessageLen)
		return d.buf[cur:]
	}
	if d.state == stateTargetKnown {
		return nil
	}
	info, err := scanHeader(d.buf, d.dec.cfg.Separator)
	if err != nil {
		d.fail(err)
		return nil
	}
	start := uint64(info.startOfBody())
	if info.bodyLength > uint64(math.MaxInt)-start-checksumFieldLen {
		d.fail(ErrLength)
		return nil
	}
	total := int(start + info.bodyLength + checksumFieldLen)
	if total < cur {
		// Shrinking would discard stream bytes already received; the
		// declared length cannot be honored.
		d.fail(ErrLength)
		return nil
	}
	if limit := d.dec.cfg.MaxMessageBytes; limit > 0 && total > limit {
		d.fail(ErrLength)
		return nil
	}
	d.target = total
	d.state = stateTargetKnown
	d.buf = grow(d.buf, total)
	return d.buf[cur:]
}

// CurrentFrame reports the decoded message once the buffer has grown to
// its computed total size. It returns (nil, nil) while still sizing, a
// frame aliasing the internal buffer once the buffered message validates,
// or the sticky error recorded during sizing or validation. The sticky
// error is returned on every call until Clear; the caller decides whether
// to resynchronize or abort the stream.
func (d *StreamDecoder) CurrentFrame() (*RawFrame, error) {
	if d.state == stateFailed {
		return nil, d.err
	}
	if d.state != stateTargetKnown {
		return nil, nil
	}
	frame, err := d.dec.Decode(d.buf[:d.target])
	if err != nil {
		d.fail(err)
		return nil, err
	}
	return &frame, nil
}

// Clear discards all buffered bytes and any sticky error, returning the
// decoder to its initial state for the next message. The backing array is
// retained, so a steady stream of similar-sized messages stops allocating.
func (d *StreamDecoder) Clear() {
	d.buf = d.buf[:0]
	d.target = 0
	d.state = stateSizing
	d.err = nil
}

func (d *StreamDecoder) fail(err error) {
	d.state = stateFailed
	d.err = err
}

// grow extends buf to length n, reallocating only when capacity runs out.
// New bytes are zero; the caller overwrites them.
func grow(buf []byte, n int) []byte {
	if n <= cap(buf) {
		return buf[:n]
	}
	out := make([]byte, n)
	copy(out, buf)
	return out
}
