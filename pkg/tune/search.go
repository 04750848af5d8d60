// Package tune searches random-forest hyperparameters with k-fold
// cross-validation. Candidates are ranked by mean validation sensitivity at
// the 0.5 threshold: with positive rates under 5%, accuracy rewards the
// classifier that never finds a positive.
package tune

import (
	"context"
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/model"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/sampling"
)

// Params is one random-forest hyperparameter configuration.
type Params struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
}

// Grid lists the candidate values per hyperparameter. The search space is
// the cartesian product of the non-empty lists.
type Grid struct {
	NEstimators     []int
	MaxDepth        []int
	MinSamplesSplit []int
	MaxFeatures     []int
}

// Result is the cross-validated score of one candidate.
type Result struct {
	Params          Params
	MeanSensitivity float64
	MeanAccuracy    float64
}

func orDefault(vals []int, def int) []int {
	if len(vals) == 0 {
		return []int{def}
	}
	return vals
}

func (g Grid) candidates() []Params {
	var out []Params
	for _, ne := range orDefault(g.NEstimators, 100) {
		for _, md := range orDefault(g.MaxDepth, 0) {
			for _, ms := range orDefault(g.MinSamplesSplit, 2) {
				for _, mf := range orDefault(g.MaxFeatures, 0) {
					out = append(out, Params{ne, md, ms, mf})
				}
			}
		}
	}
	return out
}

// GridSearch cross-validates every candidate in the grid and returns the
// best plus all per-candidate results. Candidates run concurrently; the
// context cancels outstanding trials.
func GridSearch(ctx context.Context, X [][]float64, y []int, g Grid, k int, seed int64) (Result, []Result, error) {
	return search(ctx, X, y, g.candidates(), k, seed)
}

// RandomSearch samples n candidates uniformly from the grid's space and
// cross-validates those.
func RandomSearch(ctx context.Context, X [][]float64, y []int, g Grid, n, k int, seed int64) (Result, []Result, error) {
	if n <= 0 {
		return Result{}, nil, errors.Errorf("tune: sample count must be positive, got %d", n)
	}
	rnd := rand.New(rand.NewSource(seed))
	ne := orDefault(g.NEstimators, 100)
	md := orDefault(g.MaxDepth, 0)
	ms := orDefault(g.MinSamplesSplit, 2)
	mf := orDefault(g.MaxFeatures, 0)
	seen := map[Params]bool{}
	var picked []Params
	for len(picked) < n && len(seen) < len(ne)*len(md)*len(ms)*len(mf) {
		p := Params{
			NEstimators:     ne[rnd.Intn(len(ne))],
			MaxDepth:        md[rnd.Intn(len(md))],
			MinSamplesSplit: ms[rnd.Intn(len(ms))],
			MaxFeatures:     mf[rnd.Intn(len(mf))],
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		picked = append(picked, p)
	}
	return search(ctx, X, y, picked, k, seed)
}

func search(ctx context.Context, X [][]float64, y []int, candidates []Params, k int, seed int64) (Result, []Result, error) {
	if len(candidates) == 0 {
		return Result{}, nil, errors.New("tune: empty candidate list")
	}
	if k < 2 {
		return Result{}, nil, errors.Errorf("tune: need at least 2 folds, got %d", k)
	}
	if len(X) < k {
		return Result{}, nil, errors.Errorf("tune: %d rows cannot fill %d folds", len(X), k)
	}

	results := make([]Result, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	for ci, p := range candidates {
		ci, p := ci, p
		g.Go(func() error {
			r, err := crossValidate(ctx, X, y, p, k, seed)
			if err != nil {
				return err
			}
			results[ci] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if better(r, best) {
			best = r
		}
	}
	return best, results, nil
}

// better ranks by mean sensitivity, then mean accuracy. A candidate whose
// sensitivity was defined on at least one fold beats one where it never was.
func better(a, b Result) bool {
	if math.IsNaN(b.MeanSensitivity) {
		return !math.IsNaN(a.MeanSensitivity)
	}
	if math.IsNaN(a.MeanSensitivity) {
		return false
	}
	if a.MeanSensitivity != b.MeanSensitivity {
		return a.MeanSensitivity > b.MeanSensitivity
	}
	return a.MeanAccuracy > b.MeanAccuracy
}

// crossValidate trains one candidate on each fold complement (oversampled to
// parity) and scores it on the held-out fold.
func crossValidate(ctx context.Context, X [][]float64, y []int, p Params, k int, seed int64) (Result, error) {
	folds := sampling.KFold(len(X), k, seed)
	var sumSens, sumAcc float64
	defined := 0

	for fi, fold := range folds {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		inFold := make(map[int]bool, len(fold))
		for _, i := range fold {
			inFold[i] = true
		}
		var XTrain, XVal [][]float64
		var yTrain, yVal []int
		for i := range X {
			if inFold[i] {
				XVal = append(XVal, X[i])
				yVal = append(yVal, y[i])
			} else {
				XTrain = append(XTrain, X[i])
				yTrain = append(yTrain, y[i])
			}
		}

		XTrain, yTrain = sampling.Oversample(XTrain, yTrain, seed+int64(fi))

		rf := model.NewRandomForest(
			model.WithNEstimators(p.NEstimators),
			model.WithForestMaxDepth(p.MaxDepth),
			model.WithForestMinSamplesSplit(p.MinSamplesSplit),
			model.WithForestMaxFeatures(p.MaxFeatures),
			model.WithForestRandomState(seed+int64(fi)),
		)
		if err := rf.Fit(XTrain, yTrain); err != nil {
			return Result{}, errors.Wrap(err, "tune: fold training")
		}

		c := model.ConfusionAt(yVal, rf.PredictProba(XVal), 0.5)
		sens := c.Sensitivity()
		if !math.IsNaN(sens) {
			sumSens += sens
			defined++
		}
		sumAcc += c.Accuracy()
	}

	r := Result{Params: p, MeanAccuracy: sumAcc / float64(k)}
	if defined > 0 {
		r.MeanSensitivity = sumSens / float64(defined)
	} else {
		r.MeanSensitivity = math.NaN()
	}
	return r, nil
}
