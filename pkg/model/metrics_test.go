package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryPredFromProba(t *testing.T) {
	proba := []float64{0.9, 0.5, 0.49, 0.1}
	got := BinaryPredFromProba(proba, 0.5)
	// A score exactly at the threshold counts as positive.
	assert.Equal(t, []int{1, 1, 0, 0}, got)
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.75, Accuracy([]int{1, 0, 1, 0}, []int{1, 0, 0, 0}))
	assert.Zero(t, Accuracy(nil, nil))
}

func TestConfusionAt(t *testing.T) {
	y := []int{1, 1, 1, 0, 0, 0, 0, 0, 0, 0}
	scores := []float64{0.9, 0.8, 0.3, 0.6, 0.4, 0.2, 0.1, 0.05, 0.7, 0.15}

	c := ConfusionAt(y, scores, 0.5)
	assert.Equal(t, Confusion{TP: 2, FP: 2, TN: 5, FN: 1}, c)
	assert.InDelta(t, 0.7, c.Accuracy(), 1e-9)
	assert.InDelta(t, 2.0/3.0, c.Sensitivity(), 1e-9)
	assert.InDelta(t, 5.0/7.0, c.Specificity(), 1e-9)
}

func TestConfusionUndefinedRates(t *testing.T) {
	noPositives := ConfusionAt([]int{0, 0}, []float64{0.9, 0.1}, 0.5)
	assert.True(t, math.IsNaN(noPositives.Sensitivity()))
	assert.False(t, math.IsNaN(noPositives.Specificity()))

	noNegatives := ConfusionAt([]int{1, 1}, []float64{0.9, 0.1}, 0.5)
	assert.True(t, math.IsNaN(noNegatives.Specificity()))
	assert.False(t, math.IsNaN(noNegatives.Sensitivity()))
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := []int{1, 1, 1, 0, 0, 0}
	yPred := []int{1, 1, 0, 1, 0, 0}
	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	assert.InDelta(t, 2.0/3.0, prec, 1e-9)
	assert.InDelta(t, 2.0/3.0, rec, 1e-9)
	assert.InDelta(t, 2.0/3.0, f1, 1e-9)
}
