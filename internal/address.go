package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cellRefRe matches a cell reference like A1, $B$2, AA100
var cellRefRe = regexp.MustCompile(`^\$?([A-Z]+)\$?(\d+)$`)

// ParseRange parses a reference like "A1:Z50", "B12" or "Sheet1!A1:B2" and
// returns (sheet, startRow, startCol, endRow, endCol) in 1-indexed form.
// The sheet part is optional; sheet is "" for same-sheet references.
func ParseRange(ref string) (sheet string, startRow, startCol, endRow, endCol int, err error) {
	// Split optional sheet!range
	sheetPart, rangePart, hasSheet := strings.Cut(ref, "!")
	if !hasSheet {
		rangePart = ref
	} else {
		// Remove surrounding quotes from sheet name
		sheet = strings.Trim(sheetPart, "'")
	}

	// Split range into from:to
	fromRef, toRef, hasColon := strings.Cut(rangePart, ":")
	if !hasColon {
		toRef = fromRef // single cell
	}

	startCol, startRow, err = parseRef(fromRef)
	if err != nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid start of range %q: %w", fromRef, err)
	}
	endCol, endRow, err = parseRef(toRef)
	if err != nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid end of range %q: %w", toRef, err)
	}

	// Normalize order
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	return sheet, startRow, startCol, endRow, endCol, nil
}

// Span returns the number of cells a reference covers: 1 for a single cell,
// rows*cols for a rectangular range. Whole-column references like "A:A" and
// anything else without explicit rows are an error.
func Span(ref string) (int, error) {
	_, startRow, startCol, endRow, endCol, err := ParseRange(ref)
	if err != nil {
		return 0, err
	}
	return (endRow - startRow + 1) * (endCol - startCol + 1), nil
}

// FormatCell builds an A1-style address from a 1-indexed column and row.
func FormatCell(col, row int) string {
	return ColToLetter(col) + strconv.Itoa(row)
}

// ColToLetter converts a 1-indexed column number to Excel letter(s)
func ColToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

func parseRef(ref string) (col, row int, err error) {
	ref = strings.ReplaceAll(ref, "$", "")
	m := cellRefRe.FindStringSubmatch(strings.ToUpper(ref))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	col = letterToCol(m[1])
	row, _ = strconv.Atoi(m[2])
	return col, row, nil
}

func letterToCol(letters string) int {
	col := 0
	for _, c := range letters {
		col = col*26 + int(c-'A'+1)
	}
	return col
}
