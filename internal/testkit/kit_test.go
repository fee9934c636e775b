package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gochance/omega"
	"gochance/randvar"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.Min, 1e-12)
	assert.InDelta(t, 5.0, s.Max, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.LessOrEqual(t, s.Q25, s.Median)
	assert.LessOrEqual(t, s.Median, s.Q75)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}

func TestDraw(t *testing.T) {
	u := omega.NewSeeded(3)
	x := randvar.NewUnitUniform(u)

	values, err := Draw(u, x, 100)
	require.NoError(t, err)
	require.Len(t, values, 100)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestHistogram(t *testing.T) {
	data := []float64{0.1, 0.1, 0.2, 0.5, 0.9, 1.5, -0.5}
	out := Histogram(data, 4, 0, 1)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "one line per bin")
	assert.Contains(t, out, "#")

	// Degenerate inputs render nothing.
	assert.Empty(t, Histogram(nil, 4, 0, 1))
	assert.Empty(t, Histogram(data, 0, 0, 1))
	assert.Empty(t, Histogram(data, 4, 1, 1))
}
