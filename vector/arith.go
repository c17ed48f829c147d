package vector

import (
	"math"
	"math/big"
)

// NormPrecision is the mantissa precision, in bits, squared norms are
// accumulated with.
const NormPrecision = 128

// Norm is a squared Euclidean norm in extended precision.
// The zero Norm is 0. A vector holding a NaN element has a NaN norm.
type Norm struct {
	f   *big.Float
	nan bool
}

func (n Norm) value() *big.Float {
	if n.f == nil {
		return new(big.Float).SetPrec(NormPrecision)
	}
	return n.f
}

// IsNaN reports whether n is the norm of a vector holding a NaN element.
func (n Norm) IsNaN() bool {
	return n.nan
}

// Cmp compares n and m and returns -1, 0 or +1. NaN norms order before every
// other norm and compare equal to each other.
func (n Norm) Cmp(m Norm) int {
	switch {
	case n.nan && m.nan:
		return 0
	case n.nan:
		return -1
	case m.nan:
		return 1
	}
	return n.value().Cmp(m.value())
}

// Sign returns 0 or +1, as squared norms are never negative. NaN norms have
// sign 0.
func (n Norm) Sign() int {
	if n.nan {
		return 0
	}
	return n.value().Sign()
}

// Float64 returns the float64 nearest to n. Norms beyond the float64 range
// round to +Inf.
func (n Norm) Float64() float64 {
	if n.nan {
		return math.NaN()
	}
	f, _ := n.value().Float64()
	return f
}

func (n Norm) String() string {
	if n.nan {
		return "NaN"
	}
	return n.value().Text('g', 10)
}

// SquaredNorm returns the sum of squares of the elements of v. Absent and
// empty vectors have norm 0. Infinite elements yield an infinite norm, NaN
// elements a NaN norm.
func SquaredNorm(v *Vector) Norm {
	sum := new(big.Float).SetPrec(NormPrecision)
	if v.Len() == 0 {
		return Norm{f: sum}
	}
	x := new(big.Float).SetPrec(NormPrecision)
	for _, e := range v.elems {
		if math.IsNaN(e) {
			return Norm{nan: true}
		}
		x.SetFloat64(e)
		x.Mul(x, x)
		sum.Add(sum, x)
	}
	return Norm{f: sum}
}

// CompareVectors compares a and b element-wise. It returns the difference
// a[i]-b[i] of the first differing elements, or, if one vector is a prefix of
// the other, the difference of their lengths. Absent vectors compare like
// empty ones.
func CompareVectors(a, b *Vector) float64 {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if a.elems[i] != b.elems[i] {
			return a.elems[i] - b.elems[i]
		}
	}
	return float64(a.Len() - b.Len())
}

// Copy makes dst a deep copy of src: dst gets the length of src and a freshly
// allocated buffer holding src's elements. The previous buffer of dst is
// dropped. Copy returns false and does nothing if either vector is absent.
func Copy(src, dst *Vector) bool {
	if src == nil || dst == nil {
		return false
	}
	if src == dst {
		return true
	}
	if len(src.elems) == 0 {
		dst.elems = nil
	} else {
		dst.elems = append(make([]float64, 0, len(src.elems)), src.elems...)
	}
	dst.released = false
	return true
}

// Clone returns a deep copy of v, or nil for an absent vector.
func Clone(v *Vector) *Vector {
	if v == nil {
		return nil
	}
	c := Empty()
	Copy(v, c)
	return c
}
