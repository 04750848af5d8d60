// Package dataset loads the cervical-cancer risk-factor table.
//
// The source CSV (UCI "Cervical cancer (Risk Factors)") keeps every cell as
// text and marks missing values with "?". Loading preserves cells as strings;
// typing and imputation are the job of pkg/dataprep.
package dataset

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

// The four candidate diagnostic targets, in dataset column order.
const (
	TargetHinselmann = "Hinselmann"
	TargetSchiller   = "Schiller"
	TargetCitology   = "Citology"
	TargetBiopsy     = "Biopsy"
)

// Targets returns the diagnostic target column names.
func Targets() []string {
	return []string{TargetHinselmann, TargetSchiller, TargetCitology, TargetBiopsy}
}

// Table is a raw tabular dataset: a header plus string-valued rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// IsMissing reports whether a raw cell denotes a missing value.
func IsMissing(v string) bool {
	return v == "" || v == "?" || v == "NA" || v == "NaN"
}

// Load reads a CSV file with a header row into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: read %s", path)
	}
	if len(records) < 2 {
		return nil, errors.Errorf("dataset: %s has no data rows", path)
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Header) }

// ColumnIndex returns the index of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return 0, errors.Errorf("dataset: no column %q", name)
}

// Column returns the raw cells of the named column.
func (t *Table) Column(name string) ([]string, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[j]
	}
	return col, nil
}

// Drop returns a new Table without the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	keep := make([]int, 0, len(t.Header))
	header := make([]string, 0, len(t.Header))
	for j, h := range t.Header {
		if !drop[h] {
			keep = append(keep, j)
			header = append(header, h)
		}
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]string, len(keep))
		for k, j := range keep {
			out[k] = row[j]
		}
		rows[i] = out
	}
	return &Table{Header: header, Rows: rows}
}

// Save writes the table back out as CSV.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "dataset: create")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(t.Header); err != nil {
		return errors.Wrap(err, "dataset: write header")
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "dataset: write row")
		}
	}
	return nil
}
