// Package checksum implements the mod-256 sum carried by the FIX
// CheckSum <10> field and its three-digit wire representation.
package checksum

// Compute returns the mod-256 sum of data. Separator bytes count like any
// other byte.
func Compute(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}

// Format renders sum as the zero-padded three-digit decimal value used on
// the wire, e.g. 91 -> "091".
func Format(sum uint8) [3]byte {
	return [3]byte{
		'0' + sum/100,
		'0' + sum/10%10,
		'0' + sum%10,
	}
}

// Parse reads a declared checksum value. ok is false unless digits is
// exactly three decimal digits encoding a value below 256.
func Parse(digits []byte) (uint8, bool) {
	if len(digits) != 3 {
		return 0, false
	}
	v := 0
	for _, b := range digits {
		if b < '0' || b > '9' {
			return 0, false
		}
		v = v*10 + int(b-'0')
	}
	if v > 255 {
		return 0, false
	}
	return uint8(v), true
}
