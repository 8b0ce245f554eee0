package labeling_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/labeling"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestBridge(t *testing.T) {
	src, err := img.WrapSlice(islands, 4, 3)
	require.NoError(t, err)
	r, err := labeling.Components[uint8](src)
	require.NoError(t, err)

	path, cost, err := r.Bridge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.Len(t, path, 3)

	first, last := path[0].Coords(), path[len(path)-1].Coords()
	require.Equal(t, int32(1), r.LabelAt(first...))
	require.Equal(t, int32(2), r.LabelAt(last...))
	require.Equal(t, int32(0), r.LabelAt(path[1].Coords()...))

	// Same component: zero cost, single sample.
	path, cost, err = r.Bridge(2, 2)
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Len(t, path, 1)

	_, _, err = r.Bridge(1, 5)
	require.ErrorIs(t, err, labeling.ErrLabelRange)
}

// TestBridgeWideGap crosses three background samples on a line.
func TestBridgeWideGap(t *testing.T) {
	src, err := img.WrapSlice([]uint8{1, 0, 0, 0, 1}, 5)
	require.NoError(t, err)
	r, err := labeling.Components[uint8](src)
	require.NoError(t, err)

	path, cost, err := r.Bridge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, cost)
	require.Equal(t, [][]int{{0}, {1}, {2}, {3}, {4}}, coords(path))
}
