package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/xlref/xlref/workbook"
)

// header is the column contract of every table file.
var header = []string{"Cell", "Formula", "Referenced Cells"}

// WriteAll writes one <sheet>_df1.csv per scanned sheet under dir, creating
// the directory as needed. Sheets with empty tables produce no file. Returns
// the paths written, in sheet order.
func WriteAll(dir string, ws *workbook.WorkbookScan, log logrus.FieldLogger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, sheet := range ws.Sheets {
		records := SheetRecords(sheet)
		if len(records) == 0 {
			log.Infof("skipping empty table for %s", sheet.Name)
			continue
		}
		path := filepath.Join(dir, sheet.Name+"_df1.csv")
		if err := writeTable(path, records); err != nil {
			return nil, err
		}
		log.Infof("wrote %s", path)
		written = append(written, path)
	}
	return written, nil
}

func writeTable(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Cell, r.Formula, r.Refs}); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ReadTable reads one table file back into records, validating the header.
func ReadTable(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: empty table", path)
	}
	h := rows[0]
	if len(h) != 3 || h[0] != header[0] || h[1] != header[1] || h[2] != header[2] {
		return nil, fmt.Errorf("reading %s: unexpected header %v", path, h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{Cell: row[0], Formula: row[1], Refs: row[2]})
	}
	return records, nil
}
