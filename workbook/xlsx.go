package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xlref/xlref/internal"
)

// xlsxReader adapts an excelize workbook to the Reader interface.
type xlsxReader struct {
	f *excelize.File
}

// Open sniffs path's container format and opens it as a workbook. Legacy
// OLE2 .xls files and non-Excel content are rejected before excelize ever
// sees them, with messages naming the actual problem.
func Open(path string) (Reader, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	switch format {
	case formatOOXML:
	case formatOLE2:
		return nil, fmt.Errorf("%s is a legacy .xls workbook; save it as .xlsx and retry", path)
	default:
		return nil, fmt.Errorf("%s is not an xlsx workbook", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %s: %w", path, err)
	}
	return &xlsxReader{f: f}, nil
}

func (r *xlsxReader) Sheets() []string {
	return r.f.GetSheetList()
}

// Cells returns the sheet's grid in row-major order. excelize reports
// formula text without its "=" marker; the marker is restored here so the
// rest of the pipeline sees formulas as written. Cells with neither value
// nor formula are dropped.
func (r *xlsxReader) Cells(sheet string) ([]Cell, error) {
	rows, err := r.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	var cells []Cell
	for ri, row := range rows {
		for ci, val := range row {
			addr := internal.FormatCell(ci+1, ri+1)
			f, err := r.f.GetCellFormula(sheet, addr)
			if err != nil {
				return nil, fmt.Errorf("reading cell %s!%s: %w", sheet, addr, err)
			}
			if f == "" && val == "" {
				continue
			}
			c := Cell{Address: addr, Value: val}
			if f != "" {
				c.Formula = "=" + f
			}
			cells = append(cells, c)
		}
	}
	return cells, nil
}

func (r *xlsxReader) Close() error {
	return r.f.Close()
}
