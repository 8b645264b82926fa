package report

import (
	"strings"

	"github.com/xlref/xlref/workbook"
)

// NoRefs is the sentinel written when a formula references nothing. A
// literal marker instead of an empty field keeps the column unambiguous for
// downstream consumers.
const NoRefs = "None"

// Record is one row of a sheet's reference table.
type Record struct {
	Cell    string
	Formula string
	Refs    string
}

// SheetRecords flattens a sheet scan into rows, in scan order. Reference
// lists are joined with ", "; empty lists become the NoRefs sentinel.
func SheetRecords(s workbook.SheetScan) []Record {
	records := make([]Record, 0, len(s.Cells))
	for _, c := range s.Cells {
		refs := NoRefs
		if len(c.Refs) > 0 {
			refs = strings.Join(c.Refs, ", ")
		}
		records = append(records, Record{Cell: c.Address, Formula: c.Formula, Refs: refs})
	}
	return records
}
