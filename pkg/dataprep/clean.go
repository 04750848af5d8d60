// Package dataprep types and cleans the raw risk-factor table.
//
// Continuous covariates get median imputation; rows still missing an
// indicator or a target value are removed; columns that are mostly missing
// are dropped entirely. The risk-factor dataset's two "time since diagnosis"
// columns exceed 90% missing and fall to the column drop.
package dataprep

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/dataset"
	"github.com/soniapetrini/cervical-cancer-classification/pkg/stats"
)

// Options controls cleaning.
type Options struct {
	// DropThreshold drops a column when its fraction of missing cells
	// exceeds this value.
	DropThreshold float64
}

// DefaultOptions matches the workflow defaults.
func DefaultOptions() Options { return Options{DropThreshold: 0.9} }

// Report records the decisions taken while cleaning, for the caller to log.
type Report struct {
	DroppedColumns []string
	DroppedRows    int
	Imputed        map[string]int // column name -> imputed cell count
}

// Matrix is the cleaned numeric output: features plus one binary label
// vector per requested target.
type Matrix struct {
	X      [][]float64
	Names  []string
	Labels map[string][]int
}

// Clean types the table, imputes, and extracts labels for the given targets.
func Clean(t *dataset.Table, targets []string, opts Options) (*Matrix, *Report, error) {
	if opts.DropThreshold <= 0 {
		opts.DropThreshold = DefaultOptions().DropThreshold
	}
	isTarget := make(map[string]bool, len(targets))
	for _, name := range targets {
		if _, err := t.ColumnIndex(name); err != nil {
			return nil, nil, err
		}
		isTarget[name] = true
	}

	rep := &Report{Imputed: map[string]int{}}
	nRows := t.NumRows()

	// Mostly-missing feature columns go first, wholesale.
	for j, name := range t.Header {
		if isTarget[name] {
			continue
		}
		missing := 0
		for _, row := range t.Rows {
			if dataset.IsMissing(row[j]) {
				missing++
			}
		}
		if float64(missing)/float64(nRows) > opts.DropThreshold {
			rep.DroppedColumns = append(rep.DroppedColumns, name)
		}
	}
	t = t.Drop(rep.DroppedColumns...)

	// Raw target columns, for the per-row missing check and label parse.
	targetCols := make(map[string][]string, len(targets))
	for _, name := range targets {
		col, err := t.Column(name)
		if err != nil {
			return nil, nil, err
		}
		targetCols[name] = col
	}

	// Per surviving feature column: type detection and imputation value.
	type colInfo struct {
		index     int
		name      string
		indicator bool
		median    float64
	}
	var cols []colInfo
	for j, name := range t.Header {
		if isTarget[name] {
			continue
		}
		indicator := true
		var present []float64
		for _, row := range t.Rows {
			v := row[j]
			if dataset.IsMissing(v) {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "dataprep: column %q has non-numeric cell %q", name, v)
			}
			if f != 0 && f != 1 {
				indicator = false
			}
			present = append(present, f)
		}
		cols = append(cols, colInfo{
			index:     j,
			name:      name,
			indicator: indicator,
			median:    stats.Median(present),
		})
	}

	m := &Matrix{Labels: make(map[string][]int, len(targets))}
	for _, c := range cols {
		m.Names = append(m.Names, c.name)
	}

	// Build rows: impute continuous cells, drop rows missing an indicator
	// or a target value.
	for i, row := range t.Rows {
		keep := true
		features := make([]float64, 0, len(cols))
		for _, c := range cols {
			v := row[c.index]
			if dataset.IsMissing(v) {
				if c.indicator {
					keep = false
					break
				}
				rep.Imputed[c.name]++
				features = append(features, c.median)
				continue
			}
			f, _ := strconv.ParseFloat(v, 64) // parse checked above
			features = append(features, f)
		}
		if keep {
			for _, name := range targets {
				if dataset.IsMissing(targetCols[name][i]) {
					keep = false
					break
				}
			}
		}
		if !keep {
			rep.DroppedRows++
			continue
		}
		m.X = append(m.X, features)
		for _, name := range targets {
			raw := targetCols[name][i]
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "dataprep: target %q has non-numeric cell %q", name, raw)
			}
			label := 0
			if f >= 0.5 {
				label = 1
			}
			m.Labels[name] = append(m.Labels[name], label)
		}
	}
	if len(m.X) == 0 {
		return nil, nil, errors.New("dataprep: no rows survived cleaning")
	}
	return m, rep, nil
}
