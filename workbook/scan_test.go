package workbook

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/xlref/xlref/formula"
)

type fakeReader struct {
	sheets []string
	cells  map[string][]Cell
	errOn  string
}

func (f *fakeReader) Sheets() []string { return f.sheets }

func (f *fakeReader) Cells(sheet string) ([]Cell, error) {
	if sheet == f.errOn {
		return nil, errors.New("corrupt sheet data")
	}
	return f.cells[sheet], nil
}

func (f *fakeReader) Close() error { return nil }

func newTestScanner() (*Scanner, *test.Hook) {
	log, hook := test.NewNullLogger()
	return NewScanner(formula.NewParser(), log), hook
}

func TestScanRecordsFormulas(t *testing.T) {
	r := &fakeReader{
		sheets: []string{"Calc", "Notes"},
		cells: map[string][]Cell{
			"Calc": {
				{Address: "A1", Value: "=B1+C1", Formula: "=B1+C1"},
				{Address: "B1", Value: "10"},
				{Address: "C1", Value: "20"},
				{Address: "A2", Formula: "=SUM(A1:A10)"},
				{Address: "A3", Formula: "=5*2"},
			},
			"Notes": {
				{Address: "A1", Value: "just text"},
			},
		},
	}

	s, _ := newTestScanner()
	ws, err := s.Scan(r)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Notes has no formulas and must be omitted entirely.
	if len(ws.Sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(ws.Sheets))
	}
	sheet := ws.Sheets[0]
	if sheet.Name != "Calc" {
		t.Fatalf("sheet = %q, want Calc", sheet.Name)
	}
	if len(sheet.Cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(sheet.Cells))
	}

	want := []struct {
		addr string
		refs []string
	}{
		{"A1", []string{"B1", "C1"}},
		{"A2", []string{"A1:A10"}},
		{"A3", []string{}},
	}
	for i, w := range want {
		got := sheet.Cells[i]
		if got.Address != w.addr {
			t.Errorf("cell[%d] = %q, want %q", i, got.Address, w.addr)
		}
		if len(got.Refs) != len(w.refs) {
			t.Errorf("cell %s refs = %v, want %v", w.addr, got.Refs, w.refs)
			continue
		}
		for j := range w.refs {
			if got.Refs[j] != w.refs[j] {
				t.Errorf("cell %s refs[%d] = %q, want %q", w.addr, j, got.Refs[j], w.refs[j])
			}
		}
	}

	// Zero-reference formulas record an empty list, not a nil "absent".
	if sheet.Cells[2].Refs == nil {
		t.Error("literal-only formula has nil refs, want empty slice")
	}

	if ws.Formulas() != 3 {
		t.Errorf("Formulas() = %d, want 3", ws.Formulas())
	}
	if ws.Empty() {
		t.Error("Empty() = true, want false")
	}
}

func TestScanSkipsBadFormulas(t *testing.T) {
	r := &fakeReader{
		sheets: []string{"Sheet1"},
		cells: map[string][]Cell{
			"Sheet1": {
				{Address: "A1", Formula: "=B1+C1"},
				{Address: "A2", Formula: "=FOOBAR(B2"},
				{Address: "A3", Formula: "=B3*2"},
			},
		},
	}

	s, hook := newTestScanner()
	ws, err := s.Scan(r)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// The bad cell is absent from results but processing continued.
	if len(ws.Sheets) != 1 || len(ws.Sheets[0].Cells) != 2 {
		t.Fatalf("got %d sheets / %v cells, want 1 sheet with 2 cells",
			len(ws.Sheets), ws.Sheets)
	}
	if ws.Sheets[0].Cells[0].Address != "A1" || ws.Sheets[0].Cells[1].Address != "A3" {
		t.Errorf("recorded cells = %v, want A1 and A3", ws.Sheets[0].Cells)
	}

	if len(ws.Skipped) != 1 {
		t.Fatalf("got %d skipped, want 1", len(ws.Skipped))
	}
	sk := ws.Skipped[0]
	if sk.Sheet != "Sheet1" || sk.Address != "A2" || sk.Formula != "=FOOBAR(B2" {
		t.Errorf("skipped = %+v", sk)
	}
	if sk.Reason == "" {
		t.Error("skipped cell has no reason")
	}

	// The skip is logged at warning level.
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Error("no warning logged for skipped cell")
	}
}

func TestScanAllCellsBad(t *testing.T) {
	r := &fakeReader{
		sheets: []string{"Sheet1"},
		cells: map[string][]Cell{
			"Sheet1": {
				{Address: "A1", Formula: "=NOPE(1"},
			},
		},
	}

	s, _ := newTestScanner()
	ws, err := s.Scan(r)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Every formula failed: the sheet is dropped but the skip survives.
	if !ws.Empty() {
		t.Errorf("Empty() = false, want true; sheets = %v", ws.Sheets)
	}
	if len(ws.Skipped) != 1 {
		t.Errorf("got %d skipped, want 1", len(ws.Skipped))
	}
}

func TestScanNoFormulas(t *testing.T) {
	r := &fakeReader{
		sheets: []string{"Data"},
		cells: map[string][]Cell{
			"Data": {{Address: "A1", Value: "100"}},
		},
	}

	s, _ := newTestScanner()
	ws, err := s.Scan(r)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !ws.Empty() || ws.Formulas() != 0 {
		t.Errorf("want empty scan, got %+v", ws)
	}
}

func TestScanReadError(t *testing.T) {
	r := &fakeReader{
		sheets: []string{"Sheet1"},
		errOn:  "Sheet1",
	}

	s, _ := newTestScanner()
	if _, err := s.Scan(r); err == nil {
		t.Fatal("expected error from sheet read failure, got nil")
	}
}
