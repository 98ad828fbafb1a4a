package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes records to path as delimited text: a header row equal to
// fields, then one row per record projected onto fields. Record keys absent
// from fields are dropped; fields absent from a record render as empty
// values. The file is created or truncated; the parent directory must
// already exist.
func WriteCSV(path string, fields []string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(fields); err != nil {
		f.Close()

		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(fields))

	for _, rec := range records {
		for i, field := range fields {
			row[i] = rec[field]
		}

		if err := w.Write(row); err != nil {
			f.Close()

			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()

		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
