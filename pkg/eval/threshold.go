// Package eval sweeps classification thresholds over a trained binary
// classifier and locates the sensitivity/specificity crossover, a balanced
// operating point under class imbalance where accuracy alone is misleading.
package eval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/model"
)

// Scorer is the one capability a sweep needs from a trained classifier.
// Scoring must not mutate the model's parameters.
type Scorer interface {
	PredictProba(X [][]float64) []float64
}

// EvaluationSet is a labeled set of feature rows (labels 0/1). It is not
// mutated by a sweep.
type EvaluationSet struct {
	X [][]float64
	Y []int
}

// MetricRow holds the threshold-dependent metrics at one decision threshold.
// Sensitivity or Specificity is NaN when undefined at that row.
type MetricRow struct {
	Threshold   float64
	Accuracy    float64
	Sensitivity float64
	Specificity float64
}

// MetricTable has one row per grid threshold, in grid order.
type MetricTable []MetricRow

// Nearest returns the row whose threshold is closest to t.
func (mt MetricTable) Nearest(t float64) MetricRow {
	if len(mt) == 0 {
		return MetricRow{}
	}
	best := mt[0]
	for _, row := range mt[1:] {
		if math.Abs(row.Threshold-t) < math.Abs(best.Threshold-t) {
			best = row
		}
	}
	return best
}

// Crossover is the point where sensitivity and specificity are equal within
// tolerance. Threshold is the mean of all contributing thresholds; Found is
// false when no grid threshold qualifies, and the caller must apply its own
// fallback policy.
type Crossover struct {
	Threshold    float64
	Contributing []float64
	Found        bool
}

// DefaultTolerance is the default |sensitivity - specificity| bound.
const DefaultTolerance = 0.01

// UniformGrid returns thresholds lo, lo+step, ... up to and including hi
// (within a half-step rounding guard).
func UniformGrid(lo, hi, step float64) []float64 {
	var grid []float64
	for t := lo; t <= hi+step/2; t += step {
		grid = append(grid, t)
	}
	return grid
}

// SweepThresholds scores the evaluation set once, then computes accuracy,
// sensitivity and specificity at every grid threshold (score >= t counts
// positive) and locates the crossover. The output is deterministic for fixed
// scores, grid and tolerance, and the call holds no shared state, so
// concurrent sweeps over different models are safe.
func SweepThresholds(s Scorer, set EvaluationSet, grid []float64, tolerance float64) (MetricTable, Crossover, error) {
	if err := validateGrid(grid, tolerance); err != nil {
		return nil, Crossover{}, err
	}
	if err := validateSet(set); err != nil {
		return nil, Crossover{}, err
	}

	// Scores are computed exactly once; thresholds only move the decision
	// boundary, never the probability estimates.
	scores := s.PredictProba(set.X)

	table := make(MetricTable, 0, len(grid))
	for _, t := range grid {
		c := model.ConfusionAt(set.Y, scores, t)
		table = append(table, MetricRow{
			Threshold:   t,
			Accuracy:    c.Accuracy(),
			Sensitivity: c.Sensitivity(),
			Specificity: c.Specificity(),
		})
	}

	var cross Crossover
	for _, row := range table {
		if math.IsNaN(row.Sensitivity) || math.IsNaN(row.Specificity) {
			continue
		}
		if math.Abs(row.Sensitivity-row.Specificity) < tolerance {
			cross.Contributing = append(cross.Contributing, row.Threshold)
		}
	}
	if len(cross.Contributing) > 0 {
		sum := 0.0
		for _, t := range cross.Contributing {
			sum += t
		}
		cross.Threshold = sum / float64(len(cross.Contributing))
		cross.Found = true
	}
	return table, cross, nil
}

func validateGrid(grid []float64, tolerance float64) error {
	if len(grid) == 0 {
		return errors.Wrap(ErrInvalidGrid, "empty grid")
	}
	if tolerance < 0 {
		return errors.Wrapf(ErrInvalidGrid, "negative tolerance %v", tolerance)
	}
	prev := 0.0
	for i, t := range grid {
		if t <= 0 || t >= 1 {
			return errors.Wrapf(ErrInvalidGrid, "threshold %v outside (0,1)", t)
		}
		if i > 0 && t <= prev {
			return errors.Wrapf(ErrInvalidGrid, "grid not strictly increasing at index %d", i)
		}
		prev = t
	}
	return nil
}

func validateSet(set EvaluationSet) error {
	if len(set.X) == 0 {
		return errors.Wrap(ErrDegenerateSet, "empty evaluation set")
	}
	if len(set.Y) != len(set.X) {
		return errors.Wrapf(ErrDegenerateSet, "%d rows but %d labels", len(set.X), len(set.Y))
	}
	pos := 0
	for _, y := range set.Y {
		if y == 1 {
			pos++
		}
	}
	if pos == 0 || pos == len(set.Y) {
		return errors.Wrap(ErrDegenerateSet, "all labels belong to one class")
	}
	return nil
}
