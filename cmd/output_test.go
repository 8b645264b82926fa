package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xlref/xlref/report"
)

func TestPrintRecords(t *testing.T) {
	recs := []report.Record{
		{Cell: "C1", Formula: "=B1+C1", Refs: "B1, C1"},
		{Cell: "A2", Formula: "=5*2", Refs: "None"},
	}

	var buf bytes.Buffer
	if err := printRecords(&buf, recs); err != nil {
		t.Fatalf("printRecords: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"C1", "=B1+C1", "B1, C1", "None"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 2 {
		t.Errorf("got %d lines, want 2:\n%s", lines, got)
	}
}
