package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Table is a labeled feature matrix read from CSV.
type Table struct {
	X      *mat.Dense
	Labels []string
	Header []string // Feature column names; nil when the file has no header.
}

// ReadCSV parses rows of numeric features followed by a label in the last
// column. A first row whose leading field is not a number is taken as the
// header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	var header []string
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		header = records[0][:len(records[0])-1]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.New("CSV file has a header but no rows")
	}

	width := len(records[0])
	if width < 2 {
		return nil, errors.Newf("CSV rows need at least one feature and a label, got %d field(s)", width)
	}

	X := mat.NewDense(len(records), width-1, nil)
	labels := make([]string, len(records))
	for i, record := range records {
		row := X.RawRowView(i)
		for j := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid feature at row %d, column %d", i+1, j+1)
			}
			row[j] = v
		}
		labels[i] = strings.TrimSpace(record[width-1])
	}

	return &Table{X: X, Labels: labels, Header: header}, nil
}

// LoadCSV reads a CSV file with ReadCSV.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}
