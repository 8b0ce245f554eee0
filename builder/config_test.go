package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfigDefaultsAndOrder(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, defaultAmplitude, cfg.amplitude)
	require.False(t, cfg.clamp)
	require.Equal(t, 300.0, cfg.bound(300))

	// Last option wins.
	cfg = newBuilderConfig(WithAmplitude(2), WithAmplitude(5), WithClamp(0, 255))
	require.Equal(t, 5.0, cfg.amplitude)
	require.Equal(t, 255.0, cfg.bound(300))
	require.Equal(t, 0.0, cfg.bound(-1))

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

func TestWithSeedIsReproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	require.Equal(t, a, b)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithAmplitude(0) })
	require.Panics(t, func() { WithAmplitude(-1) })
	require.Panics(t, func() { WithClamp(2, 1) })
}
