// Package core_test contains unit tests for Interval, Point and the
// iteration-order descriptors.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/stretchr/testify/require"
)

// TestNewIntervalErrors ensures constructors reject impossible shapes.
func TestNewIntervalErrors(t *testing.T) {
	cases := []struct {
		name     string
		min, max []int
		err      error
	}{
		{"LengthMismatch", []int{0, 0}, []int{1}, core.ErrDimensionMismatch},
		{"Empty", []int{}, []int{}, core.ErrBadShape},
		{"MinAboveMax", []int{0, 5}, []int{3, 4}, core.ErrBadShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewInterval(tc.min, tc.max)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := core.NewIntervalFromDims()
	require.ErrorIs(t, err, core.ErrBadShape) // no axes

	_, err = core.NewIntervalFromDims(4, 0)
	require.ErrorIs(t, err, core.ErrBadShape) // zero extent
}

// TestIntervalAccessors checks min/max/dimension/size on a shifted box.
func TestIntervalAccessors(t *testing.T) {
	iv, err := core.NewInterval([]int{-2, 3}, []int{2, 5})
	require.NoError(t, err)

	require.Equal(t, 2, iv.NumDimensions())
	require.Equal(t, -2, iv.Min(0))
	require.Equal(t, 5, iv.Max(1))
	require.Equal(t, 5, iv.Dimension(0))
	require.Equal(t, 3, iv.Dimension(1))
	require.Equal(t, 15, iv.Size())
	require.Equal(t, []int{5, 3}, iv.Dims())
	require.False(t, iv.IsZeroMin())
	require.Equal(t, "[-2..2, 3..5]", iv.String())

	// Returned corners are copies.
	mins := iv.Mins()
	mins[0] = 100
	require.Equal(t, -2, iv.Min(0))
}

// TestIntervalContains covers inside, boundary, outside and wrong-length positions.
func TestIntervalContains(t *testing.T) {
	iv, err := core.NewIntervalFromDims(4, 3)
	require.NoError(t, err)

	require.True(t, iv.Contains([]int{0, 0}))
	require.True(t, iv.Contains([]int{3, 2}))
	require.False(t, iv.Contains([]int{4, 0}))
	require.False(t, iv.Contains([]int{-1, 1}))
	require.False(t, iv.Contains([]int{1}))

	require.True(t, iv.ContainsLocalizable(core.PointOf(2, 1)))
	require.False(t, iv.ContainsLocalizable(core.PointOf(2, 3)))
}

// TestIntervalTranslateIntersect verifies derived intervals.
func TestIntervalTranslateIntersect(t *testing.T) {
	iv, err := core.NewIntervalFromDims(10, 10)
	require.NoError(t, err)

	moved, err := iv.Translate([]int{5, -5})
	require.NoError(t, err)
	require.Equal(t, "[5..14, -5..4]", moved.String())
	require.True(t, moved.EqualDimensions(iv))
	require.False(t, moved.Equal(iv))

	_, err = iv.Translate([]int{1})
	require.ErrorIs(t, err, core.ErrDimensionMismatch)

	overlap, err := iv.Intersect(moved)
	require.NoError(t, err)
	require.Equal(t, "[5..9, 0..4]", overlap.String())

	far, err := iv.Translate([]int{50, 50})
	require.NoError(t, err)
	_, err = iv.Intersect(far)
	require.ErrorIs(t, err, core.ErrBadShape)
}

// TestIntervalDimensionIndexPanics documents that indexing past N is fatal.
func TestIntervalDimensionIndexPanics(t *testing.T) {
	iv, err := core.NewIntervalFromDims(2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { _ = iv.Min(2) })
}

// TestValidatePositionAndSameShape covers the small validators.
func TestValidatePositionAndSameShape(t *testing.T) {
	require.NoError(t, core.ValidatePosition([]int{1, 2}, 2))
	require.ErrorIs(t, core.ValidatePosition([]int{1}, 2), core.ErrDimensionMismatch)

	a, _ := core.NewIntervalFromDims(3, 4)
	b, _ := core.NewInterval([]int{10, 10}, []int{12, 13})
	c, _ := core.NewIntervalFromDims(4, 3)
	require.NoError(t, core.SameShape(bounded{a}, bounded{b}))
	require.ErrorIs(t, core.SameShape(bounded{a}, bounded{c}), core.ErrDimensionMismatch)
}

type bounded struct{ iv core.Interval }

func (b bounded) Bounds() core.Interval { return b.iv }
