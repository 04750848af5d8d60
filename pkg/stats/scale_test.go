package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
	}
	s := NewStandardScaler()
	Y := s.FitTransform(X)

	for j := 0; j < 2; j++ {
		col := make([]float64, len(Y))
		for i := range Y {
			col[i] = Y[i][j]
		}
		assert.InDelta(t, 0.0, Mean(col), 1e-9)
		assert.InDelta(t, 1.0, Std(col), 1e-9)
	}

	// Input rows are not mutated.
	assert.Equal(t, []float64{1, 10}, X[0])
}

func TestStandardScalerConstantColumn(t *testing.T) {
	X := [][]float64{{5, 1}, {5, 2}, {5, 3}}
	s := NewStandardScaler()
	require.NoError(t, s.Fit(X))

	// Zero-variance columns divide by 1 instead of blowing up.
	Y := s.Transform(X)
	for i := range Y {
		assert.Equal(t, 0.0, Y[i][0])
	}
}

func TestStandardScalerUnfitted(t *testing.T) {
	X := [][]float64{{1, 2}}
	s := NewStandardScaler()
	assert.Equal(t, X, s.Transform(X))
}

func TestStandardScalerTrainTest(t *testing.T) {
	train := [][]float64{{0}, {10}}
	test := [][]float64{{5}}
	s := NewStandardScaler()
	require.NoError(t, s.Fit(train))

	// Test rows are scaled with the training statistics.
	got := s.Transform(test)
	assert.InDelta(t, 0.0, got[0][0], 1e-9)
}
