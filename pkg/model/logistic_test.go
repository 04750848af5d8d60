package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableData builds a one-feature set where y = 1 iff x > 0, with a
// comfortable margin around zero.
func separableData() ([][]float64, []int) {
	var X [][]float64
	var y []int
	for i := 0; i < 40; i++ {
		v := 0.5 + float64(i)*0.1
		X = append(X, []float64{v})
		y = append(y, 1)
		X = append(X, []float64{-v})
		y = append(y, 0)
	}
	return X, y
}

func TestLogisticSeparable(t *testing.T) {
	X, y := separableData()
	m := NewLogisticRegression(0.5, 200, 16, 42)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict(X)
	assert.GreaterOrEqual(t, Accuracy(y, pred), 0.95)

	proba := m.PredictProba(X)
	for i, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0, "row %d", i)
		assert.LessOrEqual(t, p, 1.0, "row %d", i)
	}
	// A large positive input should score well above a large negative one.
	high := m.PredictProba([][]float64{{4.0}})[0]
	low := m.PredictProba([][]float64{{-4.0}})[0]
	assert.Greater(t, high, low)
}

func TestLogisticDeterministicSeed(t *testing.T) {
	X, y := separableData()

	a := NewLogisticRegression(0.1, 50, 16, 7)
	require.NoError(t, a.Fit(X, y))
	b := NewLogisticRegression(0.1, 50, 16, 7)
	require.NoError(t, b.Fit(X, y))

	assert.Empty(t, cmp.Diff(a.W, b.W))
	assert.Empty(t, cmp.Diff(a.PredictProba(X), b.PredictProba(X)))
}

func TestLogisticFitErrors(t *testing.T) {
	m := NewLogisticRegression(0.1, 10, 0, 1)
	assert.Error(t, m.Fit(nil, nil))
	assert.Error(t, m.Fit([][]float64{{1}}, []int{1, 0}))
}
