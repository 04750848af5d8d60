package model

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/optim"
)

// LogisticRegression (binary) with sigmoid, trained by mini-batch gradient
// descent. The struct holds the model parameters and hyperparameters.
type LogisticRegression struct {
	W         []float64 // weights
	b         float64   // bias
	Lr        float64
	Epochs    int
	BatchSize int
	Seed      int64
}

// NewLogisticRegression initializes a new logistic regression model with the
// given hyperparameters. Weights are sized on the first call to Fit.
func NewLogisticRegression(lr float64, epochs, batchSize int, seed int64) *LogisticRegression {
	return &LogisticRegression{Lr: lr, Epochs: epochs, BatchSize: batchSize, Seed: seed}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// PredictProba returns p(y=1) for each input row in X.
// Rows are scored in parallel across CPU cores.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(X) {
			end = len(X)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				row := X[i]
				sum := m.b
				for j, v := range row {
					sum += m.W[j] * v
				}
				out[i] = sigmoid(sum)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// Predict returns class labels based on a 0.5 probability threshold.
func (m *LogisticRegression) Predict(X [][]float64) []int {
	return BinaryPredFromProba(m.PredictProba(X), 0.5)
}

// Fit trains the model with mini-batch gradient descent on the binary
// cross-entropy loss.
func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("logistic: empty X")
	}
	if len(y) != len(X) {
		return errors.New("logistic: X and y length mismatch")
	}
	nFeatures := len(X[0])
	rnd := rand.New(rand.NewSource(m.Seed))
	m.W = make([]float64, nFeatures)
	// Small random init to break symmetry.
	for i := range m.W {
		m.W[i] = rnd.NormFloat64() * 0.01
	}
	m.b = 0
	batchSize := m.BatchSize
	if batchSize <= 0 {
		batchSize = len(X)
	}
	opt := optim.NewSGD(m.Lr)

	for ep := 0; ep < m.Epochs; ep++ {
		for start := 0; start < len(X); start += batchSize {
			end := start + batchSize
			if end > len(X) {
				end = len(X)
			}
			bX, bY := X[start:end], y[start:end]
			if nFeatures != len(bX[0]) {
				return errors.New("logistic: feature count mismatch between model and batch data")
			}

			p := m.PredictProba(bX)

			// Gradient of the BCE loss w.r.t. weights and bias.
			gW := make([]float64, nFeatures)
			gb := 0.0
			n := float64(len(bX))
			for i, row := range bX {
				d := (p[i] - float64(bY[i])) / n
				for j, xij := range row {
					gW[j] += d * xij
				}
				gb += d
			}

			opt.Step(m.W, gW)
			m.b -= m.Lr * gb
		}
	}
	return nil
}
