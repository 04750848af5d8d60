// Package report summarizes targets and covariates and renders the
// threshold-vs-metric curves produced by pkg/eval.
package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/stats"
)

// Association is the point-biserial correlation between one covariate and a
// binary target, along with the covariate's observed value range.
type Association struct {
	Name     string
	Corr     float64
	Min, Max float64
}

// Associations ranks covariates by the absolute value of their correlation
// with the target. Constant covariates report zero.
func Associations(X [][]float64, y []int, names []string) []Association {
	if len(X) == 0 {
		return nil
	}
	yf := make([]float64, len(y))
	for i, v := range y {
		yf[i] = float64(v)
	}
	out := make([]Association, 0, len(names))
	col := make([]float64, len(X))
	for j, name := range names {
		for i := range X {
			col[i] = X[i][j]
		}
		corr := stat.Correlation(col, yf, nil)
		if math.IsNaN(corr) {
			corr = 0
		}
		min, max := stats.MinMax(col)
		out = append(out, Association{Name: name, Corr: corr, Min: min, Max: max})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return math.Abs(out[a].Corr) > math.Abs(out[b].Corr)
	})
	return out
}

// Prevalence is the positive rate of a binary label vector.
func Prevalence(y []int) float64 {
	if len(y) == 0 {
		return 0
	}
	pos := 0
	for _, v := range y {
		pos += v
	}
	return float64(pos) / float64(len(y))
}

// TargetSummary describes one diagnostic target column.
type TargetSummary struct {
	Target     string
	Rows       int
	Positives  int
	Prevalence float64
}

// Summarize builds a TargetSummary for one target's labels.
func Summarize(target string, y []int) TargetSummary {
	pos := 0
	for _, v := range y {
		pos += v
	}
	return TargetSummary{
		Target:     target,
		Rows:       len(y),
		Positives:  pos,
		Prevalence: Prevalence(y),
	}
}
