package model

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// RandomForest for binary classification. Trees are trained concurrently on
// bootstrap samples; probabilities are the average of leaf fractions.
type RandomForest struct {
	// Hyperparameters / options
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
	Bootstrap       bool
	RandomState     int64

	Trees []*DecisionTree
}

// ForestOption is functional config for RandomForest.
type ForestOption func(*RandomForest)

func WithNEstimators(n int) ForestOption { return func(rf *RandomForest) { rf.NEstimators = n } }
func WithBootstrap(b bool) ForestOption  { return func(rf *RandomForest) { rf.Bootstrap = b } }
func WithForestMaxDepth(d int) ForestOption {
	return func(rf *RandomForest) { rf.MaxDepth = d }
}
func WithForestMinSamplesSplit(n int) ForestOption {
	return func(rf *RandomForest) { rf.MinSamplesSplit = n }
}
func WithForestMaxFeatures(k int) ForestOption {
	return func(rf *RandomForest) { rf.MaxFeatures = k }
}
func WithForestRandomState(seed int64) ForestOption {
	return func(rf *RandomForest) { rf.RandomState = seed }
}

// NewRandomForest initializes the forest with sensible defaults.
func NewRandomForest(opts ...ForestOption) *RandomForest {
	rf := &RandomForest{
		NEstimators:     100,
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MaxFeatures:     0,
		Bootstrap:       true,
		RandomState:     time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(rf)
	}
	return rf
}

// Fit trains the forest. Each tree gets its own seed and its own bootstrap
// sample of row indices, so training is deterministic for a fixed RandomState.
func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("randomforest: empty X")
	}
	n := len(X)
	if len(y) != n {
		return errors.New("randomforest: X and y length mismatch")
	}

	rf.Trees = make([]*DecisionTree, rf.NEstimators)
	var g errgroup.Group
	for i := 0; i < rf.NEstimators; i++ {
		idx := i
		g.Go(func() error {
			treeRand := rand.New(rand.NewSource(rf.RandomState + int64(idx)))

			sampleIndices := make([]int, n)
			for j := 0; j < n; j++ {
				if rf.Bootstrap {
					sampleIndices[j] = treeRand.Intn(n)
				} else {
					sampleIndices[j] = j
				}
			}

			tree := NewDecisionTree(
				WithMaxDepth(rf.MaxDepth),
				WithMinSamplesSplit(rf.MinSamplesSplit),
				WithMaxFeatures(rf.MaxFeatures),
				WithRandomState(rf.RandomState+int64(idx)),
			)
			if err := tree.FitIndices(X, y, sampleIndices); err != nil {
				return err
			}
			rf.Trees[idx] = tree
			return nil
		})
	}
	return g.Wait()
}

// Predict returns the majority vote of all trees.
func (rf *RandomForest) Predict(X [][]float64) []int {
	n := len(X)
	votes := make([]int, n)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, tree := range rf.Trees {
		wg.Add(1)
		go func(t *DecisionTree) {
			defer wg.Done()
			preds := t.Predict(X)
			mu.Lock()
			for i, p := range preds {
				votes[i] += p
			}
			mu.Unlock()
		}(tree)
	}
	wg.Wait()

	out := make([]int, n)
	for i, v := range votes {
		if 2*v >= len(rf.Trees) {
			out[i] = 1
		}
	}
	return out
}

// PredictProba returns p(y=1) per row, averaged over all trees.
func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	n := len(X)
	sums := make([]float64, n)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, tree := range rf.Trees {
		wg.Add(1)
		go func(t *DecisionTree) {
			defer wg.Done()
			probas := t.PredictProba(X)
			mu.Lock()
			for i, p := range probas {
				sums[i] += p
			}
			mu.Unlock()
		}(tree)
	}
	wg.Wait()

	for i := range sums {
		sums[i] /= float64(len(rf.Trees))
	}
	return sums
}
