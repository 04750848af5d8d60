package stats

// StandardScaler centers and scales feature columns with statistics taken
// from the training partition: fit once on the training rows, then
// Transform both partitions so the evaluation rows never leak into the fit.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit records the per-column mean and standard deviation of X. A column
// with zero spread keeps a unit scale, so Transform centers it at zero
// instead of dividing by zero.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return nil
	}
	nCols := len(X[0])
	s.Mean = make([]float64, nCols)
	s.Std = make([]float64, nCols)
	col := make([]float64, len(X))
	for j := 0; j < nCols; j++ {
		for i, row := range X {
			col[i] = row[j]
		}
		s.Mean[j] = Mean(col)
		s.Std[j] = Std(col)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns standardized copies of the rows, leaving X untouched.
// Before Fit it returns X unchanged.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}

// FitTransform fits on X and returns the standardized rows.
func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	_ = s.Fit(X)
	return s.Transform(X)
}
