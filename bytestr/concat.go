package bytestr

import (
	"bytes"
	"fmt"
)

// Concatenation accumulates string payloads, each followed by a newline.
// The zero value is an empty, unbounded accumulator ready to use.
type Concatenation struct {
	buf   bytes.Buffer
	limit int // maximum length in bytes, 0 for unbounded
}

// NewConcatenation creates an unbounded accumulator with room for capacity
// bytes pre-allocated.
func NewConcatenation(capacity int) *Concatenation {
	c := &Concatenation{}
	if capacity > 0 {
		c.buf.Grow(capacity)
	}
	return c
}

// NewBoundedConcatenation creates an accumulator which will never hold more
// than limit bytes. Appends exceeding the limit fail with
// ErrCapacityExceeded and leave the accumulator unchanged.
func NewBoundedConcatenation(limit int) *Concatenation {
	c := &Concatenation{limit: limit}
	if limit > 0 {
		c.buf.Grow(limit)
	} else {
		c.limit = -1 // no room at all
	}
	return c
}

// Presize grows the accumulator to hold all payloads summarized by sum.
func (c *Concatenation) Presize(sum Summary) {
	n := int(sum.Joined())
	if c.limit != 0 && n > c.capacity() {
		n = c.capacity()
	}
	if n > 0 {
		c.buf.Grow(n)
	}
}

// Append adds the bytes of s and a newline.
func (c *Concatenation) Append(s *Str) error {
	b := s.Bytes()
	if c.limit != 0 && c.buf.Len()+len(b)+1 > c.capacity() {
		tracer().Debugf("concatenation: %d+%d bytes exceed limit %d", c.buf.Len(), len(b)+1, c.capacity())
		return fmt.Errorf("%w: need %d bytes, have %d", ErrCapacityExceeded,
			len(b)+1, c.capacity()-c.buf.Len())
	}
	c.buf.Write(b)
	c.buf.WriteByte('\n')
	return nil
}

func (c *Concatenation) capacity() int {
	if c.limit < 0 {
		return 0
	}
	return c.limit
}

// Len returns the number of bytes accumulated so far.
func (c *Concatenation) Len() int {
	return c.buf.Len()
}

// Bytes returns the accumulated bytes. The slice aliases the accumulator.
func (c *Concatenation) Bytes() []byte {
	return c.buf.Bytes()
}

func (c *Concatenation) String() string {
	return c.buf.String()
}

// Reset empties the accumulator, keeping its storage and limit.
func (c *Concatenation) Reset() {
	c.buf.Reset()
}
