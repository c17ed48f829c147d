package bytestr

import "strings"

// Str is a NUL-terminated byte string payload.
//
// A Str exclusively owns its buffer. After Destroy it reads as the empty
// string.
type Str struct {
	buf []byte // payload bytes, then NUL; nil once destroyed
}

// New creates a payload holding a copy of s. As with every NUL-terminated
// string, the payload ends at the first NUL byte of s.
func New(s string) *Str {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &Str{buf: buf}
}

// FromBytes creates a payload holding a copy of the bytes of b preceding the
// first NUL.
func FromBytes(b []byte) *Str {
	n := Length(b)
	buf := make([]byte, n+1)
	copy(buf, b[:n])
	return &Str{buf: buf}
}

// Len returns the payload length in bytes, not counting the terminator.
func (s *Str) Len() int {
	if s == nil {
		return 0
	}
	return Length(s.buf)
}

// Bytes returns the payload bytes without terminator. The slice aliases the
// payload's buffer and must not be modified.
func (s *Str) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf[:Length(s.buf)]
}

// String returns the payload as a Go string.
func (s *Str) String() string {
	return string(s.Bytes())
}

// IsReleased reports whether s has been destroyed.
func (s *Str) IsReleased() bool {
	return s != nil && s.buf == nil
}

// Summary is the tree summary of string payloads.
type Summary struct {
	Items uint64 // number of payloads
	Bytes uint64 // payload bytes, not counting terminators
}

// Summary returns the summary of a single payload.
func (s *Str) Summary() Summary {
	if s == nil {
		return Summary{}
	}
	return Summary{Items: 1, Bytes: uint64(s.Len())}
}

// Joined returns the length of the newline-separated concatenation of all
// payloads summarized by sum.
func (sum Summary) Joined() uint64 {
	return sum.Bytes + sum.Items
}

// Monoid aggregates string summaries in B+ tree nodes.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Items: left.Items + right.Items,
		Bytes: left.Bytes + right.Bytes,
	}
}
