package bytestr

import (
	"fmt"

	"github.com/npillmayer/elements"
)

// Adapter implements the element contracts for string payloads.
type Adapter struct{}

var _ elements.Adapter[*Str] = Adapter{}
var _ elements.Folder[*Str, *Concatenation] = Adapter{}

// Compare orders payloads by bytes, see Compare.
func (Adapter) Compare(a, b *Str) int {
	return Compare(a, b)
}

// Destroy releases the storage of s. Absent and already released payloads
// are left alone.
func (Adapter) Destroy(s *Str) {
	if s == nil || s.buf == nil {
		return
	}
	clear(s.buf)
	s.buf = nil
}

// Fold appends the bytes of s to acc, followed by a single newline.
func (Adapter) Fold(s *Str, acc *Concatenation) error {
	if s == nil {
		return fmt.Errorf("%w: string payload is nil", elements.ErrAbsentInput)
	}
	if acc == nil {
		return fmt.Errorf("%w: accumulator is nil", elements.ErrAbsentInput)
	}
	return acc.Append(s)
}
