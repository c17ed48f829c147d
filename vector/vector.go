package vector

import (
	"fmt"
	"strings"
)

// Vector is a numeric vector payload. Its length is the length of its element
// buffer; an empty vector may have no buffer at all.
//
// A Vector exclusively owns its buffer. The zero value is an empty vector.
type Vector struct {
	elems    []float64
	released bool
}

// New creates a vector holding a copy of values.
func New(values ...float64) *Vector {
	if len(values) == 0 {
		return &Vector{}
	}
	return &Vector{elems: append([]float64(nil), values...)}
}

// Empty creates a vector of length 0 without a buffer.
func Empty() *Vector {
	return &Vector{}
}

// Len returns the number of elements of v, 0 for an absent vector.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

// At returns element i.
func (v *Vector) At(i int) float64 {
	return v.elems[i]
}

// Set overwrites element i.
func (v *Vector) Set(i int, x float64) {
	v.elems[i] = x
}

// Values returns a copy of the elements of v.
func (v *Vector) Values() []float64 {
	if v.Len() == 0 {
		return nil
	}
	return append([]float64(nil), v.elems...)
}

// IsReleased reports whether v has been destroyed.
func (v *Vector) IsReleased() bool {
	return v != nil && v.released
}

func (v *Vector) String() string {
	if v == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(']')
	return b.String()
}

// Summary is the tree summary of vector payloads.
type Summary struct {
	Items    uint64 // number of vectors
	Elements uint64 // total number of elements
}

// Summary returns the summary of a single vector.
func (v *Vector) Summary() Summary {
	if v == nil {
		return Summary{}
	}
	return Summary{Items: 1, Elements: uint64(len(v.elems))}
}

// Monoid aggregates vector summaries in B+ tree nodes.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Items:    left.Items + right.Items,
		Elements: left.Elements + right.Elements,
	}
}
