package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/stretchr/testify/require"
)

// TestFromRealRounding checks integer rounding and float pass-through.
func TestFromRealRounding(t *testing.T) {
	require.Equal(t, uint8(3), core.FromReal[uint8](2.5))
	require.Equal(t, uint8(2), core.FromReal[uint8](2.49))
	require.Equal(t, int16(-3), core.FromReal[int16](-2.5))
	require.Equal(t, float32(2.5), core.FromReal[float32](2.5))
	require.Equal(t, 0.125, core.FromReal[float64](0.125))
	require.Equal(t, core.BitOn, core.FromReal[core.Bit](1))
}

// TestIsIntegerType distinguishes truncating kinds.
func TestIsIntegerType(t *testing.T) {
	require.True(t, core.IsIntegerType[uint16]())
	require.True(t, core.IsIntegerType[core.Bit]())
	require.False(t, core.IsIntegerType[float32]())
	require.False(t, core.IsIntegerType[float64]())
}

// TestBit covers the two-valued helper type.
func TestBit(t *testing.T) {
	require.True(t, core.BitOf(true).Bool())
	require.False(t, core.BitOf(false).Bool())
	require.Equal(t, 1.0, core.ToReal(core.BitOn))
}
