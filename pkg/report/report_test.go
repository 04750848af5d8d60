package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociationsRanking(t *testing.T) {
	// Feature 0 equals the label, feature 1 is constant, feature 2 is noise.
	X := [][]float64{
		{1, 7, 0.3},
		{0, 7, 0.9},
		{1, 7, 0.2},
		{0, 7, 0.6},
		{1, 7, 0.8},
		{0, 7, 0.1},
	}
	y := []int{1, 0, 1, 0, 1, 0}
	got := Associations(X, y, []string{"exact", "constant", "noise"})
	require.Len(t, got, 3)

	assert.Equal(t, "exact", got[0].Name)
	assert.InDelta(t, 1.0, got[0].Corr, 1e-9)
	assert.Equal(t, 0.0, got[0].Min)
	assert.Equal(t, 1.0, got[0].Max)

	// Constant covariates rank last with zero correlation and a collapsed
	// value range.
	assert.Equal(t, "constant", got[2].Name)
	assert.Zero(t, got[2].Corr)
	assert.Equal(t, 7.0, got[2].Min)
	assert.Equal(t, 7.0, got[2].Max)
}

func TestAssociationsEmpty(t *testing.T) {
	assert.Nil(t, Associations(nil, nil, nil))
}

func TestPrevalence(t *testing.T) {
	assert.Equal(t, 0.25, Prevalence([]int{1, 0, 0, 0}))
	assert.Zero(t, Prevalence(nil))
}

func TestSummarize(t *testing.T) {
	got := Summarize("Biopsy", []int{1, 0, 0, 1, 0})
	assert.Equal(t, TargetSummary{
		Target:     "Biopsy",
		Rows:       5,
		Positives:  2,
		Prevalence: 0.4,
	}, got)
}
