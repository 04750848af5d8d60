package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Zero(t, Mean(nil))
}

func TestVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, Variance(x), 1e-9)
	assert.InDelta(t, 2.0, Std(x), 1e-9)
	assert.Zero(t, Variance(nil))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = MinMax(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	assert.Zero(t, Median(nil))

	// Input stays untouched.
	x := []float64{5, 1, 3}
	Median(x)
	assert.Equal(t, []float64{5, 1, 3}, x)
}
