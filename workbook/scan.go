package workbook

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/xlref/xlref/formula"
)

// Scanner walks a workbook and extracts formula references cell by cell.
type Scanner struct {
	parser formula.Parser
	log    logrus.FieldLogger
}

// NewScanner returns a Scanner using p for formula parsing. Diagnostics go
// to log: progress at info level, skipped cells at warning level.
func NewScanner(p formula.Parser, log logrus.FieldLogger) *Scanner {
	return &Scanner{parser: p, log: log}
}

// Scan reads every sheet of r and extracts references from each
// formula-bearing cell. A cell whose formula cannot be parsed is recorded
// under Skipped and logged; it never aborts the scan. Sheets contributing no
// formulas are omitted from the result. Reader I/O failures are fatal.
func (s *Scanner) Scan(r Reader) (*WorkbookScan, error) {
	ws := &WorkbookScan{}
	for _, name := range r.Sheets() {
		s.log.Infof("scanning sheet %s", name)
		cells, err := r.Cells(name)
		if err != nil {
			return nil, fmt.Errorf("scanning sheet %s: %w", name, err)
		}

		sheet := SheetScan{Name: name}
		for _, c := range cells {
			if c.Formula == "" {
				continue
			}
			tokens, err := s.parser.Parse(c.Formula)
			if err != nil {
				ws.Skipped = append(ws.Skipped, skipped(name, c, err))
				s.log.WithField("cell", name+"!"+c.Address).WithError(err).Warn("skipping formula")
				continue
			}
			sheet.Cells = append(sheet.Cells, CellFormula{
				Address: c.Address,
				Formula: c.Formula,
				Refs:    formula.References(tokens),
			})
		}
		if len(sheet.Cells) == 0 {
			continue
		}
		ws.Sheets = append(ws.Sheets, sheet)
	}
	return ws, nil
}

func skipped(sheet string, c Cell, err error) SkippedCell {
	reason := err.Error()
	var synErr *formula.SyntaxError
	if errors.As(err, &synErr) {
		reason = synErr.Reason
	}
	return SkippedCell{Sheet: sheet, Address: c.Address, Formula: c.Formula, Reason: reason}
}
