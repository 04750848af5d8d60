package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
)

// rawTable mimics the risk-factor CSV in miniature: one continuous column
// with a missing cell, one mostly-missing column, one 0/1 indicator, and
// one target.
func rawTable() *dataset.Table {
	return &dataset.Table{
		Header: []string{"Age", "STDs: Time since last diagnosis", "Smokes", "Biopsy"},
		Rows: [][]string{
			{"18", "?", "0", "0"},
			{"25", "?", "1", "1"},
			{"?", "?", "0", "0"},
			{"40", "?", "1", "0"},
			{"52", "?", "?", "1"}, // missing indicator: row dropped
			{"33", "?", "0", "?"}, // missing target: row dropped
		},
	}
}

func TestCleanDropsMostlyMissingColumn(t *testing.T) {
	m, rep, err := Clean(rawTable(), []string{"Biopsy"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"STDs: Time since last diagnosis"}, rep.DroppedColumns)
	assert.Equal(t, []string{"Age", "Smokes"}, m.Names)
}

func TestCleanImputesContinuousWithMedian(t *testing.T) {
	m, rep, err := Clean(rawTable(), []string{"Biopsy"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Imputed["Age"])
	// Median of the present Age values 18, 25, 40, 52, 33 is 33.
	assert.Equal(t, 33.0, m.X[2][0])
}

func TestCleanDropsRowsMissingIndicatorOrTarget(t *testing.T) {
	m, rep, err := Clean(rawTable(), []string{"Biopsy"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.DroppedRows)
	assert.Len(t, m.X, 4)
	assert.Equal(t, []int{0, 1, 0, 0}, m.Labels["Biopsy"])
}

func TestCleanMultipleTargets(t *testing.T) {
	tbl := &dataset.Table{
		Header: []string{"Age", "Hinselmann", "Biopsy"},
		Rows: [][]string{
			{"20", "0", "1"},
			{"30", "1", "0"},
		},
	}
	m, _, err := Clean(tbl, []string{"Hinselmann", "Biopsy"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Age"}, m.Names)
	assert.Equal(t, []int{0, 1}, m.Labels["Hinselmann"])
	assert.Equal(t, []int{1, 0}, m.Labels["Biopsy"])
}

func TestCleanErrors(t *testing.T) {
	_, _, err := Clean(rawTable(), []string{"NoSuchTarget"}, DefaultOptions())
	assert.Error(t, err)

	bad := &dataset.Table{
		Header: []string{"Age", "Biopsy"},
		Rows:   [][]string{{"abc", "0"}},
	}
	_, _, err = Clean(bad, []string{"Biopsy"}, DefaultOptions())
	assert.Error(t, err)

	allMissing := &dataset.Table{
		Header: []string{"Age", "Biopsy"},
		Rows:   [][]string{{"20", "?"}},
	}
	_, _, err = Clean(allMissing, []string{"Biopsy"}, DefaultOptions())
	assert.Error(t, err)
}
