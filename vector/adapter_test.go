package vector

import (
	"math"
	"testing"

	"github.com/npillmayer/elements/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare1By1(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector
		want int
	}{
		{"Equal", New(1, 2), New(1, 2), 0},
		{"Less", New(1, 2), New(1, 3), -1},
		{"Greater", New(2), New(1, 100), 1},
		{"TinyDifference", New(1), New(1 + 1e-15), -1},
		{"SubUnitDifference", New(0.3), New(0.1), 1},
		{"HugeDifference", New(math.MaxFloat64), New(-math.MaxFloat64), 1},
		{"PrefixShorter", New(1, 2), New(1, 2, 0), -1},
		{"NaNFirst", New(math.NaN()), New(0), -1},
		{"NaNEqual", New(math.NaN(), 1), New(math.NaN(), 1), 0},
		{"NaNThenDiffer", New(math.NaN(), 1), New(math.NaN(), 2), -1},
		{"NilFirst", nil, Empty(), -1},
		{"NilBoth", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare1By1(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare1By1(tt.b, tt.a))
		})
	}
}

func TestReleaseIsGuarded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elements")
	defer teardown()
	//
	v := New(1, 2, 3)
	Adapter{}.Destroy(v)
	assert.True(t, v.IsReleased())
	assert.Equal(t, 0, v.Len())
	Adapter{}.Destroy(v)
	assert.True(t, v.IsReleased())
	Adapter{}.Destroy(nil)
}

func TestTreeOrdersVectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elements")
	defer teardown()
	//
	tree, err := FromVectors(New(3), New(1, 1), New(1), New(2, -5), New(0.5))
	require.NoError(t, err)
	require.NoError(t, tree.Check())

	var got []string
	tree.ForEach(func(v *Vector) bool {
		got = append(got, v.String())
		return true
	})
	assert.Equal(t, []string{"[0.5]", "[1]", "[1 1]", "[2 -5]", "[3]"}, got)
	assert.Equal(t, Summary{Items: 5, Elements: 7}, tree.Summary())

	_, err = tree.Insert(New(1, 1))
	assert.ErrorIs(t, err, btree.ErrDuplicateItem)

	found, ok := tree.Find(New(2, -5))
	require.True(t, ok)
	assert.Equal(t, []float64{2, -5}, found.Values())
}

func TestTreeReleaseReleasesVectors(t *testing.T) {
	vs := []*Vector{New(1), New(2), New(3)}
	tree, err := FromVectors(vs...)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Release())
	for _, v := range vs {
		assert.True(t, v.IsReleased())
	}
	assert.True(t, tree.IsEmpty())
}
