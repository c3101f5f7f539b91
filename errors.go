package fixwire

import "errors"

var (
	// ErrLength reports a buffer shorter than the structural minimum or a
	// BodyLength value that disagrees with the bytes actually present.
	ErrLength = errors.New("fixwire: message length out of bounds")
	// ErrInvalid reports missing or malformed structural fields: the first
	// two fields cannot be located, or the trailing checksum field is not
	// well-formed.
	ErrInvalid = errors.New("fixwire: malformed structural fields")
	// ErrCheckSum reports a well-formed checksum field whose declared value
	// does not match the recomputed mod-256 sum.
	ErrCheckSum = errors.New("fixwire: checksum mismatch")
)
