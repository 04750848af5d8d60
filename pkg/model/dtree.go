package model

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"time"
)

// DecisionTree is a CART-style binary classifier. Leaves keep the positive
// class fraction so the tree can emit probabilities.
type DecisionTree struct {
	// Hyperparameters / options
	MaxDepth        int    // maximum depth (root depth = 0). 0 => no limit
	MinSamplesSplit int    // minimum samples to attempt a split
	MinSamplesLeaf  int    // minimum samples required in each leaf
	Criterion       string // "gini" (default) or "entropy"
	MaxFeatures     int    // 0 => all features, >0 => features sampled per split
	RandomState     int64  // seed for feature subsampling

	root *dtNode
}

type dtNode struct {
	isLeaf    bool
	feature   int
	threshold float64 // x <= threshold => left
	left      *dtNode
	right     *dtNode

	// leaf data
	n     int
	proba float64 // fraction of positives
}

// TreeOption is functional config for DecisionTree.
type TreeOption func(*DecisionTree)

func WithMaxDepth(d int) TreeOption        { return func(t *DecisionTree) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption { return func(t *DecisionTree) { t.MinSamplesSplit = n } }
func WithMinSamplesLeaf(n int) TreeOption  { return func(t *DecisionTree) { t.MinSamplesLeaf = n } }
func WithCriterion(c string) TreeOption    { return func(t *DecisionTree) { t.Criterion = c } }
func WithMaxFeatures(k int) TreeOption     { return func(t *DecisionTree) { t.MaxFeatures = k } }
func WithRandomState(seed int64) TreeOption {
	return func(t *DecisionTree) { t.RandomState = seed }
}

// NewDecisionTree returns a classifier with sensible defaults.
func NewDecisionTree(opts ...TreeOption) *DecisionTree {
	t := &DecisionTree{
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Criterion:       "gini",
		MaxFeatures:     0,
		RandomState:     time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Fit trains the tree on X (n x p) and binary labels y.
func (t *DecisionTree) Fit(X [][]float64, y []int) error {
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	return t.FitIndices(X, y, idx)
}

// FitIndices trains on the subset of rows named by idx. Duplicate indices are
// allowed, which is what bootstrap sampling produces.
func (t *DecisionTree) FitIndices(X [][]float64, y []int, idx []int) error {
	if len(X) == 0 || len(idx) == 0 {
		return errors.New("dtree: empty training set")
	}
	if len(y) != len(X) {
		return errors.New("dtree: X and y length mismatch")
	}
	rnd := rand.New(rand.NewSource(t.RandomState))
	t.root = t.buildNode(X, y, idx, 0, rnd)
	return nil
}

// Predict returns 0/1 labels using a 0.5 probability threshold.
func (t *DecisionTree) Predict(X [][]float64) []int {
	return BinaryPredFromProba(t.PredictProba(X), 0.5)
}

// PredictProba returns p(y=1) per row from the leaf class fractions.
func (t *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = t.predictRow(row)
	}
	return out
}

func (t *DecisionTree) predictRow(x []float64) float64 {
	node := t.root
	for node != nil && !node.isLeaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return 0
	}
	return node.proba
}

func (t *DecisionTree) buildNode(X [][]float64, y []int, idx []int, depth int, rnd *rand.Rand) *dtNode {
	n := len(idx)
	pos := 0
	for _, i := range idx {
		pos += y[i]
	}
	leaf := &dtNode{isLeaf: true, n: n, proba: float64(pos) / float64(n)}

	if pos == 0 || pos == n { // pure
		return leaf
	}
	if n < t.MinSamplesSplit {
		return leaf
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		return leaf
	}

	feature, threshold, ok := t.bestSplit(X, y, idx, rnd)
	if !ok {
		return leaf
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	if len(leftIdx) == 0 || len(rightIdx) == 0 {
		return leaf
	}
	return &dtNode{
		feature:   feature,
		threshold: threshold,
		left:      t.buildNode(X, y, leftIdx, depth+1, rnd),
		right:     t.buildNode(X, y, rightIdx, depth+1, rnd),
	}
}

// bestSplit scans candidate thresholds per feature and returns the split with
// the lowest weighted impurity.
func (t *DecisionTree) bestSplit(X [][]float64, y []int, idx []int, rnd *rand.Rand) (int, float64, bool) {
	p := len(X[0])
	features := make([]int, p)
	for j := range features {
		features[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(i, j int) { features[i], features[j] = features[j], features[i] })
		features = features[:t.MaxFeatures]
	}

	impurity := giniImpurity
	if t.Criterion == "entropy" {
		impurity = entropyImpurity
	}

	type pair struct {
		v   float64
		lab int
	}
	n := len(idx)
	bestScore := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	pairs := make([]pair, n)
	for _, f := range features {
		for k, i := range idx {
			pairs[k] = pair{v: X[i][f], lab: y[i]}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })

		totalPos := 0
		for _, pr := range pairs {
			totalPos += pr.lab
		}
		leftPos := 0
		for k := 0; k < n-1; k++ {
			leftPos += pairs[k].lab
			if pairs[k].v == pairs[k+1].v {
				continue
			}
			nl, nr := k+1, n-k-1
			if nl < t.MinSamplesLeaf || nr < t.MinSamplesLeaf {
				continue
			}
			score := (float64(nl)*impurity(leftPos, nl) + float64(nr)*impurity(totalPos-leftPos, nr)) / float64(n)
			if score < bestScore {
				bestScore = score
				bestFeature = f
				bestThreshold = (pairs[k].v + pairs[k+1].v) / 2
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

func giniImpurity(pos, n int) float64 {
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}

func entropyImpurity(pos, n int) float64 {
	p := float64(pos) / float64(n)
	if p == 0 || p == 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}
