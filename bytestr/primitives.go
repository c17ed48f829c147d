package bytestr

import "bytes"

// Length returns the number of bytes preceding the first NUL in b.
// If b holds no terminator, the end of the slice terminates the scan.
func Length(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// Compare orders string payloads lexicographically by bytes. It returns 0 iff
// a and b are byte-equal, a negative value iff a precedes b and a positive
// value otherwise.
//
// An absent payload is the minimum: nil precedes every present payload and
// two absent payloads compare equal.
func Compare(a, b *Str) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return bytes.Compare(a.Bytes(), b.Bytes())
}
