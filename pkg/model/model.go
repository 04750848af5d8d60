// Package model implements the binary classifiers compared by the workflow:
// logistic regression and a random forest of CART trees, plus the confusion
// metrics used to score them.
package model

// Classifier is a supervised binary classifier over 0/1 labels.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
	// PredictProba returns p(y=1) for each row, in [0,1].
	PredictProba(X [][]float64) []float64
}
