package appgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "dataframes")
	if err := os.MkdirAll(frames, 0o755); err != nil {
		t.Fatal(err)
	}
	writeCSV(t, frames, "Sheet1_df1.csv", "Cell,Formula,Referenced Cells\nA1,=B1+C1,\"B1, C1\"\n")
	writeCSV(t, frames, "My Sheet_df1.csv", "Cell,Formula,Referenced Cells\n")

	path, err := Generate(dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if path != filepath.Join(dir, "main.go") {
		t.Errorf("path = %q, want main.go under output dir", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(src)

	for _, want := range []string{
		"// Code generated by xlref. DO NOT EDIT.",
		"package main",
		`{name: "Sheet1_df1", file: "Sheet1_df1.csv"},`,
		`{name: "My Sheet_df1", file: "My Sheet_df1.csv"},`,
		"No data to display for",
		"does not exist.",
		"usage: go run main.go <command>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q", want)
		}
	}

	// Table names come out sorted, so output is deterministic.
	if strings.Index(got, "My Sheet_df1") > strings.Index(got, "Sheet1_df1") {
		t.Error("generated tables are not sorted by file name")
	}
}

func TestGenerateNoTables(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "dataframes"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(dir)
	if err == nil {
		t.Fatal("expected error with no tables, got nil")
	}
	if !strings.Contains(err.Error(), "no tables found") {
		t.Errorf("error = %q, want no-tables message", err)
	}
}

func TestGenerateMissingDir(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing dataframes dir, got nil")
	}
}
