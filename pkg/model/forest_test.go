package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForestSeparable(t *testing.T) {
	X, y := separableData()
	rf := NewRandomForest(
		WithNEstimators(25),
		WithForestMaxDepth(4),
		WithForestRandomState(42),
	)
	require.NoError(t, rf.Fit(X, y))
	require.Len(t, rf.Trees, 25)

	pred := rf.Predict(X)
	assert.GreaterOrEqual(t, Accuracy(y, pred), 0.95)

	proba := rf.PredictProba(X)
	for i, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0, "row %d", i)
		assert.LessOrEqual(t, p, 1.0, "row %d", i)
	}
}

func TestRandomForestDeterministicSeed(t *testing.T) {
	X, y := separableData()

	a := NewRandomForest(WithNEstimators(10), WithForestRandomState(7))
	require.NoError(t, a.Fit(X, y))
	b := NewRandomForest(WithNEstimators(10), WithForestRandomState(7))
	require.NoError(t, b.Fit(X, y))

	assert.Empty(t, cmp.Diff(a.PredictProba(X), b.PredictProba(X)))
}

func TestRandomForestNoBootstrap(t *testing.T) {
	X, y := thresholdData()
	rf := NewRandomForest(
		WithNEstimators(5),
		WithBootstrap(false),
		WithForestRandomState(1),
	)
	require.NoError(t, rf.Fit(X, y))
	// Without bootstrap every tree sees the full separable set.
	assert.Equal(t, y, rf.Predict(X))
}

func TestRandomForestFitErrors(t *testing.T) {
	rf := NewRandomForest(WithNEstimators(2))
	assert.Error(t, rf.Fit(nil, nil))
	assert.Error(t, rf.Fit([][]float64{{1}}, []int{1, 0}))
}

func TestClassifierInterface(t *testing.T) {
	var _ Classifier = &LogisticRegression{}
	var _ Classifier = &DecisionTree{}
	var _ Classifier = &RandomForest{}
}
