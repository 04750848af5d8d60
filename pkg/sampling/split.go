// Package sampling provides data partitioning and class balancing.
//
// Balancing is applied to training partitions only; evaluation partitions
// keep the natural class ratio.
package sampling

import (
	"math/rand"
	"sort"
)

// StratifiedSplit splits X, y into train and test sets by ratio, preserving
// the class ratio in both partitions. Classes are processed in sorted label
// order so a fixed seed always yields the same partitions.
func StratifiedSplit(X [][]float64, y []int, testRatio float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []int) {
	rnd := rand.New(rand.NewSource(seed))
	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}
	labels := make([]int, 0, len(byClass))
	for label := range byClass {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	for _, label := range labels {
		idx := byClass[label]
		rnd.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		nTest := int(float64(len(idx)) * testRatio)
		for k, i := range idx {
			if k < nTest {
				XTest = append(XTest, X[i])
				yTest = append(yTest, y[i])
			} else {
				XTrain = append(XTrain, X[i])
				yTrain = append(yTrain, y[i])
			}
		}
	}
	return
}

// KFold yields k folds of shuffled row indices for cross-validation.
func KFold(n, k int, seed int64) [][]int {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	folds := make([][]int, k)
	for i := 0; i < n; i++ {
		folds[i%k] = append(folds[i%k], indices[i])
	}
	return folds
}
