package formula

import "strings"

// knownFunctions is the set of worksheet function names the grammar accepts.
// Formulas calling anything else fail to parse, matching engines that only
// model the standard function library.
var knownFunctions = map[string]struct{}{}

func init() {
	names := []string{
		// math and trig
		"ABS", "ACOS", "ACOSH", "ASIN", "ASINH", "ATAN", "ATAN2", "ATANH",
		"CEILING", "CEILING.MATH", "COMBIN", "COS", "COSH", "DEGREES", "EVEN",
		"EXP", "FACT", "FLOOR", "FLOOR.MATH", "GCD", "INT", "LCM", "LN", "LOG",
		"LOG10", "MOD", "MROUND", "ODD", "PI", "POWER", "PRODUCT", "QUOTIENT",
		"RADIANS", "RAND", "RANDBETWEEN", "ROUND", "ROUNDDOWN", "ROUNDUP",
		"SIGN", "SIN", "SINH", "SQRT", "SUBTOTAL", "SUM", "SUMIF", "SUMIFS",
		"SUMPRODUCT", "SUMSQ", "TAN", "TANH", "TRUNC",
		// statistical
		"AVERAGE", "AVERAGEA", "AVERAGEIF", "AVERAGEIFS", "CORREL", "COUNT",
		"COUNTA", "COUNTBLANK", "COUNTIF", "COUNTIFS", "FORECAST", "FREQUENCY",
		"GEOMEAN", "INTERCEPT", "LARGE", "MAX", "MAXA", "MAXIFS", "MEDIAN",
		"MIN", "MINA", "MINIFS", "MODE", "MODE.SNGL", "PERCENTILE",
		"PERCENTILE.INC", "PERCENTRANK", "QUARTILE", "QUARTILE.INC", "RANK",
		"RANK.EQ", "SLOPE", "SMALL", "STDEV", "STDEV.P", "STDEV.S", "STDEVP",
		"TREND", "VAR", "VAR.P", "VAR.S", "VARP",
		// logical
		"AND", "FALSE", "IF", "IFERROR", "IFNA", "IFS", "NOT", "OR", "SWITCH",
		"TRUE", "XOR",
		// lookup and reference
		"ADDRESS", "AREAS", "CHOOSE", "COLUMN", "COLUMNS", "FILTER",
		"FORMULATEXT", "HLOOKUP", "INDEX", "INDIRECT", "LOOKUP", "MATCH",
		"OFFSET", "ROW", "ROWS", "SEQUENCE", "SORT", "SORTBY", "TRANSPOSE",
		"UNIQUE", "VLOOKUP", "XLOOKUP", "XMATCH",
		// text
		"CHAR", "CLEAN", "CODE", "CONCAT", "CONCATENATE", "EXACT", "FIND",
		"LEFT", "LEN", "LOWER", "MID", "NUMBERVALUE", "PROPER", "REPLACE",
		"REPT", "RIGHT", "SEARCH", "SUBSTITUTE", "T", "TEXT", "TEXTJOIN",
		"TRIM", "UNICHAR", "UNICODE", "UPPER", "VALUE",
		// date and time
		"DATE", "DATEDIF", "DATEVALUE", "DAY", "DAYS", "DAYS360", "EDATE",
		"EOMONTH", "HOUR", "MINUTE", "MONTH", "NETWORKDAYS", "NOW", "SECOND",
		"TIME", "TIMEVALUE", "TODAY", "WEEKDAY", "WEEKNUM", "WORKDAY", "YEAR",
		"YEARFRAC",
		// information
		"CELL", "ERROR.TYPE", "ISBLANK", "ISERR", "ISERROR", "ISEVEN",
		"ISFORMULA", "ISLOGICAL", "ISNA", "ISNONTEXT", "ISNUMBER", "ISODD",
		"ISREF", "ISTEXT", "N", "NA", "TYPE",
		// financial
		"DB", "DDB", "FV", "IPMT", "IRR", "MIRR", "NPER", "NPV", "PMT", "PPMT",
		"PV", "RATE", "SLN", "SYD", "XIRR", "XNPV",
		// misc
		"HYPERLINK",
	}
	for _, n := range names {
		knownFunctions[n] = struct{}{}
	}
}

// knownFunction reports whether name is a recognized worksheet function.
// Future functions are stored with an "_xlfn." prefix, which resolves to the
// same table.
func knownFunction(name string) bool {
	n := strings.ToUpper(name)
	n = strings.TrimPrefix(n, "_XLFN.")
	_, ok := knownFunctions[n]
	return ok
}
