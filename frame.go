package fixwire

// RawFrame is an immutable zero-copy view over one structurally validated
// FIX message. It aliases the buffer it was decoded from; the caller must
// not mutate that buffer while the frame is in use. Frames produced by
// StreamDecoder.CurrentFrame alias the stream buffer and are invalidated
// by the next Clear.
type RawFrame struct {
	data             []byte
	beginStringStart int
	beginStringEnd   int
	payloadStart     int
	payloadEnd       int
}

// Bytes returns the complete raw message, including the BeginString,
// BodyLength and CheckSum fields.
func (f *RawFrame) Bytes() []byte {
	return f.data
}

// BeginString returns the value of the BeginString <8> field, e.g.
// "FIX.4.2".
func (f *RawFrame) BeginString() []byte {
	return f.data[f.beginStringStart:f.beginStringEnd]
}

// Payload returns every field strictly between BodyLength <9> and the
// trailing CheckSum <10>, separators included. Its length equals the
// validated BodyLength value. Header fields other than BeginString and
// BodyLength are part of the payload; payload and body are not synonyms.
func (f *RawFrame) Payload() []byte {
	return f.data[f.payloadStart:f.payloadEnd]
}

// PayloadOffset returns the absolute offset of Payload within Bytes.
func (f *RawFrame) PayloadOffset() int {
	return f.payloadStart
}
