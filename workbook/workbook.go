package workbook

import "errors"

// ErrNoFormulas reports a workbook from which nothing could be extracted.
var ErrNoFormulas = errors.New("no formulas found")

// Cell is one grid cell of a sheet.
type Cell struct {
	Address string
	Value   string
	Formula string // full "="-prefixed text; empty for literal cells
}

// Reader is the workbook-reading collaborator: a list of sheets, each a grid
// of cells in row-major order.
type Reader interface {
	Sheets() []string
	Cells(sheet string) ([]Cell, error)
	Close() error
}

// CellFormula is one extracted formula cell.
type CellFormula struct {
	Address string   `json:"cell"`
	Formula string   `json:"formula"`
	Refs    []string `json:"referenced_cells"`
}

// SheetScan holds the formula cells of one sheet in scan order. Sheets with
// no formula cells never appear in a WorkbookScan.
type SheetScan struct {
	Name  string        `json:"sheet"`
	Cells []CellFormula `json:"cells"`
}

// SkippedCell records a formula cell whose references could not be
// determined. The cell is absent from the sheet's results.
type SkippedCell struct {
	Sheet   string `json:"sheet"`
	Address string `json:"cell"`
	Formula string `json:"formula"`
	Reason  string `json:"reason"`
}

// WorkbookScan is the result of scanning one workbook.
type WorkbookScan struct {
	Sheets  []SheetScan   `json:"sheets"`
	Skipped []SkippedCell `json:"skipped,omitempty"`
}

// Empty reports whether the scan extracted nothing.
func (ws *WorkbookScan) Empty() bool {
	return len(ws.Sheets) == 0
}

// Formulas returns the total number of recorded formula cells.
func (ws *WorkbookScan) Formulas() int {
	n := 0
	for _, s := range ws.Sheets {
		n += len(s.Cells)
	}
	return n
}
