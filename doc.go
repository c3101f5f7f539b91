// Package fixwire owns the FIX tag=value framing contract.
//
// Ownership boundary:
// - header scanning for BeginString <8> and BodyLength <9>
// - structural validation of BodyLength and the trailing CheckSum <10>
// - zero-copy frame views over validated message bytes
// - incremental framing of continuous byte streams
//
// Field-level parsing, dictionaries and the session state machine belong
// to downstream consumers; they receive only validated frame boundaries
// from here and never re-derive them.
package fixwire
