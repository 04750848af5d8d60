package model

import "math"

// BinaryPredFromProba thresholds probability scores into 0/1 labels.
// A score exactly equal to the threshold counts as positive.
func BinaryPredFromProba(proba []float64, threshold float64) []int {
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= threshold {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
	return out
}

// Accuracy is the fraction of matching labels (binary, labels 0/1).
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// Confusion holds the 2x2 confusion counts at one decision threshold.
type Confusion struct {
	TP, FP, TN, FN int
}

// ConfusionAt thresholds the cached scores (score >= t is positive) and
// counts them against the ground-truth labels.
func ConfusionAt(y []int, scores []float64, t float64) Confusion {
	var c Confusion
	for i, s := range scores {
		pred := s >= t
		actual := y[i] == 1
		switch {
		case pred && actual:
			c.TP++
		case pred && !actual:
			c.FP++
		case !pred && actual:
			c.FN++
		default:
			c.TN++
		}
	}
	return c
}

// Accuracy is (TP+TN)/total, or NaN for an empty confusion.
func (c Confusion) Accuracy() float64 {
	total := c.TP + c.TN + c.FP + c.FN
	if total == 0 {
		return math.NaN()
	}
	return float64(c.TP+c.TN) / float64(total)
}

// Sensitivity is TP/(TP+FN), or NaN when there are no actual positives.
func (c Confusion) Sensitivity() float64 {
	if c.TP+c.FN == 0 {
		return math.NaN()
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// Specificity is TN/(TN+FP), or NaN when there are no actual negatives.
func (c Confusion) Specificity() float64 {
	if c.TN+c.FP == 0 {
		return math.NaN()
	}
	return float64(c.TN) / float64(c.TN+c.FP)
}

// PrecisionRecallF1 computes precision, recall and F1 (binary, labels 0/1).
func PrecisionRecallF1(yTrue, yPred []int) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == 1 && yTrue[i] == 1 {
			tp++
		}
		if yPred[i] == 1 && yTrue[i] == 0 {
			fp++
		}
		if yPred[i] == 0 && yTrue[i] == 1 {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}
