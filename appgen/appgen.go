package appgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// table describes one generated command: a CSV base name and the file it
// loads.
type table struct {
	Name string
	File string
}

// Generate emits a self-contained viewer program at dir/main.go with one
// command per CSV table under dir/dataframes. Returns the path written.
// Zero tables is an error: there is nothing to expose.
func Generate(dir string) (string, error) {
	framesDir := filepath.Join(dir, "dataframes")
	matches, err := filepath.Glob(filepath.Join(framesDir, "*.csv"))
	if err != nil {
		return "", fmt.Errorf("listing tables: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no tables found at %s", framesDir)
	}
	sort.Strings(matches)

	tables := make([]table, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		tables = append(tables, table{
			Name: strings.TrimSuffix(base, ".csv"),
			File: base,
		})
	}

	path := filepath.Join(dir, "main.go")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := progTemplate.Execute(f, tables); err != nil {
		f.Close()
		return "", fmt.Errorf("generating %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("generating %s: %w", path, err)
	}
	return path, nil
}

var progTemplate = template.Must(template.New("main").Parse(`// Code generated by xlref. DO NOT EDIT.

// Command surface over the extracted formula tables. Run from this
// directory:
//
//	go run main.go <command>
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

type table struct {
	name string
	file string
}

var tables = []table{
{{- range . }}
	{name: {{printf "%q" .Name}}, file: {{printf "%q" .File}}},
{{- end }}
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}
	for _, t := range tables {
		if t.name == os.Args[1] {
			if err := show(t); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: go run main.go <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, t := range tables {
		fmt.Fprintf(os.Stderr, "  %s\n", t.name)
	}
}

func show(t table) error {
	path := filepath.Join("dataframes", t.file)
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Dataframe file %s does not exist.\n", t.file)
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	if len(rows) <= 1 {
		fmt.Printf("No data to display for %s.\n", t.name)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
`))
