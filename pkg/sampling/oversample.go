package sampling

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Oversample duplicates minority-class rows at random until both classes are
// the same size. Rows are shared with the input, not copied.
func Oversample(X [][]float64, y []int, seed int64) ([][]float64, []int) {
	rnd := rand.New(rand.NewSource(seed))
	var pos, neg []int
	for i, label := range y {
		if label == 1 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	minority, majority := pos, neg
	if len(neg) < len(pos) {
		minority, majority = neg, pos
	}

	Xb := append([][]float64{}, X...)
	yb := append([]int{}, y...)
	for len(minority) > 0 && len(yb) < 2*len(majority) {
		i := minority[rnd.Intn(len(minority))]
		Xb = append(Xb, X[i])
		yb = append(yb, y[i])
	}
	return Xb, yb
}

// SMOTE appends synthetic minority rows interpolated between each sampled
// minority row and one of its k nearest minority neighbors, until both
// classes are the same size.
func SMOTE(X [][]float64, y []int, k int, seed int64) ([][]float64, []int, error) {
	if k < 1 {
		return nil, nil, errors.Errorf("sampling: smote k must be >= 1, got %d", k)
	}
	rnd := rand.New(rand.NewSource(seed))
	var minority []int
	posCount := 0
	for _, label := range y {
		if label == 1 {
			posCount++
		}
	}
	minorityLabel := 1
	if posCount > len(y)-posCount {
		minorityLabel = 0
	}
	for i, label := range y {
		if label == minorityLabel {
			minority = append(minority, i)
		}
	}
	if len(minority) < 2 {
		return nil, nil, errors.New("sampling: smote needs at least two minority rows")
	}
	if k > len(minority)-1 {
		k = len(minority) - 1
	}

	// Nearest minority neighbors per minority row.
	neighbors := make([][]int, len(minority))
	for a, i := range minority {
		type dist struct {
			idx int
			d   float64
		}
		ds := make([]dist, 0, len(minority)-1)
		for b, j := range minority {
			if a == b {
				continue
			}
			ds = append(ds, dist{idx: j, d: euclidean(X[i], X[j])})
		}
		sort.Slice(ds, func(p, q int) bool { return ds[p].d < ds[q].d })
		nn := make([]int, k)
		for p := 0; p < k; p++ {
			nn[p] = ds[p].idx
		}
		neighbors[a] = nn
	}

	need := len(y) - 2*len(minority)
	Xb := append([][]float64{}, X...)
	yb := append([]int{}, y...)
	for s := 0; s < need; s++ {
		a := rnd.Intn(len(minority))
		i := minority[a]
		j := neighbors[a][rnd.Intn(k)]
		u := rnd.Float64()
		row := make([]float64, len(X[i]))
		for f := range row {
			row[f] = X[i][f] + u*(X[j][f]-X[i][f])
		}
		Xb = append(Xb, row)
		yb = append(yb, minorityLabel)
	}
	return Xb, yb, nil
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
