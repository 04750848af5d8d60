package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/eval"
)

func sweepFixture() (eval.MetricTable, eval.Crossover) {
	table := eval.MetricTable{
		{Threshold: 0.2, Accuracy: 0.6, Sensitivity: 0.9, Specificity: 0.4},
		{Threshold: 0.4, Accuracy: 0.7, Sensitivity: 0.7, Specificity: 0.7},
		{Threshold: 0.6, Accuracy: 0.8, Sensitivity: 0.4, Specificity: 0.9},
	}
	cross := eval.Crossover{Threshold: 0.4, Contributing: []float64{0.4}, Found: true}
	return table, cross
}

func TestPlotSweep(t *testing.T) {
	table, cross := sweepFixture()
	path := filepath.Join(t.TempDir(), "sweep.png")
	require.NoError(t, PlotSweep(table, cross, "Biopsy / forest", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlotSweepNoCrossover(t *testing.T) {
	table, _ := sweepFixture()
	path := filepath.Join(t.TempDir(), "sweep.svg")
	require.NoError(t, PlotSweep(table, eval.Crossover{}, "Biopsy / forest", path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestPlotSweepBadExtension(t *testing.T) {
	table, cross := sweepFixture()
	path := filepath.Join(t.TempDir(), "sweep.xyz")
	assert.Error(t, PlotSweep(table, cross, "t", path))
}
