package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thresholdData() ([][]float64, []int) {
	X := [][]float64{
		{0.1, 5}, {0.2, 3}, {0.3, 9}, {0.4, 1},
		{0.6, 2}, {0.7, 8}, {0.8, 4}, {0.9, 6},
	}
	y := []int{0, 0, 0, 0, 1, 1, 1, 1}
	return X, y
}

func TestDecisionTreeSimpleSplit(t *testing.T) {
	X, y := thresholdData()
	tree := NewDecisionTree(WithMaxDepth(3), WithRandomState(1))
	require.NoError(t, tree.Fit(X, y))

	assert.Equal(t, y, tree.Predict(X))

	proba := tree.PredictProba([][]float64{{0.05, 0}, {0.95, 0}})
	assert.Equal(t, 0.0, proba[0])
	assert.Equal(t, 1.0, proba[1])
}

func TestDecisionTreeCriteria(t *testing.T) {
	X, y := thresholdData()
	for _, criterion := range []string{"gini", "entropy"} {
		tree := NewDecisionTree(WithCriterion(criterion), WithRandomState(1))
		require.NoError(t, tree.Fit(X, y))
		assert.Equal(t, y, tree.Predict(X), criterion)
	}
}

func TestDecisionTreeMinSamples(t *testing.T) {
	X, y := thresholdData()
	// With the whole set below the split minimum the tree is a single leaf.
	tree := NewDecisionTree(WithMinSamplesSplit(100))
	require.NoError(t, tree.Fit(X, y))

	proba := tree.PredictProba(X)
	for _, p := range proba {
		assert.Equal(t, 0.5, p)
	}
}

func TestDecisionTreeFitErrors(t *testing.T) {
	tree := NewDecisionTree()
	assert.Error(t, tree.Fit(nil, nil))
	assert.Error(t, tree.Fit([][]float64{{1}}, []int{1, 0}))
}

func TestDecisionTreeImpurity(t *testing.T) {
	assert.Equal(t, 0.0, giniImpurity(0, 4))
	assert.Equal(t, 0.0, giniImpurity(4, 4))
	assert.Equal(t, 0.5, giniImpurity(2, 4))
	assert.Equal(t, 0.0, entropyImpurity(0, 4))
	assert.InDelta(t, 1.0, entropyImpurity(2, 4), 1e-9)
}
