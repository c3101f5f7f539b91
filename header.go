package fixwire

// headerInfo records the delimiter positions of the first two fields of a
// candidate message (BeginString <8>, BodyLength <9>) together with the
// BodyLength value accumulated while scanning. It is rebuilt on every
// decode attempt and never retained across calls.
type headerInfo struct {
	equalSign [2]int
	fieldSep  [2]int
	eqFound   [2]bool
	// bodyLength uses wrapping decimal accumulation with no digit
	// validation. Malformed bytes corrupt the value but cannot panic or
	// overflow; the later length check rejects the frame.
	bodyLength uint64
}

// scanHeader walks data byte-by-byte until both leading fields have been
// terminated or data is exhausted. Each field must contain an equal sign
// and end with the separator; presence is tracked with explicit flags so a
// delimiter at offset zero is still a delimiter.
func scanHeader(data []byte, separator byte) (headerInfo, error) {
	var info headerInfo
	fieldIdx := 0
	for i := 0; i < len(data) && fieldIdx < 2; i++ {
		switch b := data[i]; b {
		case '=':
			info.equalSign[fieldIdx] = i
			info.eqFound[fieldIdx] = true
			info.bodyLength = 0
		case separator:
			info.fieldSep[fieldIdx] = i
			fieldIdx++
		default:
			info.bodyLength = info.bodyLength*10 + uint64(b-'0')
		}
	}
	if fieldIdx < 2 || !info.eqFound[0] || !info.eqFound[1] {
		return headerInfo{}, ErrInvalid
	}
	return info, nil
}

// startOfBody is the offset one past the BodyLength field's separator.
func (h headerInfo) startOfBody() int {
	return h.fieldSep[1] + 1
}

func (h headerInfo) beginStringRange() (start, end int) {
	return h.equalSign[0] + 1, h.fieldSep[0]
}
