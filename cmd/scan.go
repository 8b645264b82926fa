package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlref/xlref/formula"
	"github.com/xlref/xlref/internal"
	"github.com/xlref/xlref/report"
	"github.com/xlref/xlref/workbook"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Preview formula references without writing anything",
	Long: `Run the formula extraction pipeline and print the results instead of
writing CSV tables. Useful for checking what 'xlref convert' would produce.

Returns exit code 2 when any formula could not be parsed, so scripts can gate
on workbooks converting cleanly.

Examples:
  xlref scan report.xlsx
  xlref scan report.xlsx --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the full scan as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", filePath)
		}
		return err
	}

	r, err := workbook.Open(filePath)
	if err != nil {
		return err
	}
	defer r.Close()

	scanner := workbook.NewScanner(formula.NewParser(), logger)
	ws, err := scanner.Scan(r)
	if err != nil {
		return err
	}

	if scanJSON {
		if err := jsonPrint(ws); err != nil {
			return err
		}
	} else {
		refs, spanned := 0, 0
		for _, s := range ws.Sheets {
			fmt.Printf("%s:\n", s.Name)
			if err := printRecords(os.Stdout, report.SheetRecords(s)); err != nil {
				return err
			}
			fmt.Println()
			for _, c := range s.Cells {
				refs += len(c.Refs)
				for _, ref := range c.Refs {
					if n, err := internal.Span(ref); err == nil {
						spanned += n
					}
				}
			}
		}

		fmt.Printf("%d formula", ws.Formulas())
		if ws.Formulas() != 1 {
			fmt.Print("s")
		}
		fmt.Printf(" across %d sheet", len(ws.Sheets))
		if len(ws.Sheets) != 1 {
			fmt.Print("s")
		}
		fmt.Printf(", %d reference", refs)
		if refs != 1 {
			fmt.Print("s")
		}
		fmt.Printf(" spanning %d cell", spanned)
		if spanned != 1 {
			fmt.Print("s")
		}
		if n := len(ws.Skipped); n > 0 {
			fmt.Printf(", %d skipped", n)
		}
		fmt.Println()
	}

	if len(ws.Skipped) > 0 {
		return &ExitError{Code: 2}
	}
	return nil
}
