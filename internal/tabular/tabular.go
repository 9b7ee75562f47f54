// Package tabular is the CSV glue around the classifier: ordered row
// reading for the training and query files, and the two-column
// prediction output.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ReadRows reads every data row of a CSV file, in order. The first row
// is a header and is skipped; variable row widths are allowed. An empty
// file yields no rows and no error — whether that is acceptable is the
// caller's call.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// WritePredictions writes the prediction file: an ID,Disease header
// followed by one row per label, IDs 1-based in input order.
func WritePredictions(path string, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ID", "Disease"}); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, label := range labels {
		if err := w.Write([]string{strconv.Itoa(i + 1), label}); err != nil {
			f.Close()
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
