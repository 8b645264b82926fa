package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlref/xlref/appgen"
	"github.com/xlref/xlref/config"
	"github.com/xlref/xlref/formula"
	"github.com/xlref/xlref/report"
	"github.com/xlref/xlref/workbook"
)

var (
	convertOutput string
	convertJSON   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a workbook into per-sheet formula reference tables",
	Long: `Extract every formula from an Excel workbook and write one CSV table per
sheet listing each formula cell, its formula, and the cells and ranges the
formula references. A small Go program is generated next to the tables for
viewing them from the command line.

Output layout:
  <output-root>/<workbook name>/
    dataframes/<sheet>_df1.csv   one table per sheet that has formulas
    main.go                      generated table viewer

Cells whose formulas cannot be parsed are skipped with a warning; the rest of
the workbook still converts. Sheets without formulas produce no table.

Examples:
  xlref convert report.xlsx
  xlref convert report.xlsx -o /tmp/exports
  xlref convert report.xlsx --json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output root directory (env: XLREF_OUTPUT_DIR)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Print a JSON run summary instead of human text")
	rootCmd.AddCommand(convertCmd)
}

type convertSummary struct {
	Input    string                 `json:"input"`
	Output   string                 `json:"output"`
	Sheets   int                    `json:"sheets"`
	Formulas int                    `json:"formulas"`
	Tables   []string               `json:"tables"`
	Program  string                 `json:"program"`
	Skipped  []workbook.SkippedCell `json:"skipped,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.WithField("path", filePath).Error("input file not found")
			return fmt.Errorf("file not found: %s", filePath)
		}
		logger.WithError(err).Error("reading input file")
		return err
	}

	r, err := workbook.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("opening workbook")
		return err
	}
	defer r.Close()

	scanner := workbook.NewScanner(formula.NewParser(), logger)
	ws, err := scanner.Scan(r)
	if err != nil {
		logger.WithError(err).Error("reading workbook")
		return err
	}
	if ws.Empty() {
		return fmt.Errorf("nothing to convert: %w in %s", workbook.ErrNoFormulas, filePath)
	}

	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	outDir := filepath.Join(resolveOutputRoot(), stem)
	tables, err := report.WriteAll(filepath.Join(outDir, "dataframes"), ws, logger)
	if err != nil {
		logger.WithError(err).Error("writing tables")
		return err
	}
	program, err := appgen.Generate(outDir)
	if err != nil {
		logger.WithError(err).Error("generating table viewer")
		return err
	}

	if convertJSON {
		return jsonPrint(convertSummary{
			Input:    filePath,
			Output:   outDir,
			Sheets:   len(ws.Sheets),
			Formulas: ws.Formulas(),
			Tables:   tables,
			Program:  program,
			Skipped:  ws.Skipped,
		})
	}

	fmt.Printf("%d formula", ws.Formulas())
	if ws.Formulas() != 1 {
		fmt.Print("s")
	}
	fmt.Printf(" from %d sheet", len(ws.Sheets))
	if len(ws.Sheets) != 1 {
		fmt.Print("s")
	}
	if n := len(ws.Skipped); n > 0 {
		fmt.Printf(", %d cell", n)
		if n != 1 {
			fmt.Print("s")
		}
		fmt.Print(" skipped")
	}
	fmt.Println()
	for _, p := range tables {
		fmt.Printf("  %s\n", p)
	}
	fmt.Printf("  %s\n", program)
	fmt.Printf("\nView a table: cd %s && go run main.go <table>\n", outDir)
	return nil
}

func resolveOutputRoot() string {
	if convertOutput != "" {
		return convertOutput
	}
	if v := os.Getenv("XLREF_OUTPUT_DIR"); v != "" {
		return v
	}
	cfg, err := config.Load()
	if err == nil && cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "outputs"
}
