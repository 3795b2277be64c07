package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/style"
)

const testDPI = 72

func newRegistry(t *testing.T) *cache.Registry {
	t.Helper()
	reg, err := cache.NewRegistry(cache.Config{})
	require.NoError(t, err)
	return reg
}

func TestFitInvalidTargets(t *testing.T) {
	reg := newRegistry(t)
	s := style.Default()
	text := []rune("Hello")

	assert.Equal(t, 0, Fit(reg, text, s, 0, 100, testDPI))
	assert.Equal(t, 0, Fit(reg, text, s, 100, -5, testDPI))
	assert.Equal(t, -1, Fit(reg, nil, s, 100, 100, testDPI))

	s.FontSize = 0
	assert.Equal(t, -1, Fit(reg, text, s, 100, 100, testDPI))
}

func TestFitFits(t *testing.T) {
	reg := newRegistry(t)
	s := style.Default()
	text := []rune("Fit this")

	for _, target := range [][2]int{{80, 30}, {200, 60}, {300, 300}} {
		size := Fit(reg, text, s, target[0], target[1], testDPI)
		require.Positive(t, size, "target %v", target)

		w, h, ok := measure(reg, text, s, size, testDPI)
		require.True(t, ok)
		assert.LessOrEqual(t, w, target[0], "width at size %d", size)
		assert.LessOrEqual(t, h, target[1], "height at size %d", size)
	}
}

func TestFitMonotonic(t *testing.T) {
	reg := newRegistry(t)
	s := style.Default()
	text := []rune("Monotonic")

	prev := 0
	for _, scale := range []int{1, 2, 4, 8} {
		size := Fit(reg, text, s, 50*scale, 20*scale, testDPI)
		assert.GreaterOrEqual(t, size, prev, "scale %d", scale)
		prev = size
	}
}

func TestFitStartingSizeIrrelevant(t *testing.T) {
	reg := newRegistry(t)
	text := []rune("Start")

	small := style.Default().WithSize(6)
	large := style.Default().WithSize(90)
	a := Fit(reg, text, small, 150, 50, testDPI)
	b := Fit(reg, text, large, 150, 50, testDPI)
	assert.InDelta(t, a, b, 1)
}

func TestFitBounds(t *testing.T) {
	reg := newRegistry(t)
	s := style.Default()

	assert.LessOrEqual(t, Fit(reg, []rune("x"), s, 100000, 100000, testDPI), MaxSize)
	assert.Equal(t, 0, Fit(reg, []rune("Too long to fit"), s, 1, 1, testDPI))
}
