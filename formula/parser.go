package formula

import (
	"fmt"
	"strings"

	"github.com/xuri/efp"
)

// SyntaxError reports formula text the grammar cannot model. It is a
// recoverable, cell-scoped condition: callers skip the cell and move on.
type SyntaxError struct {
	Formula string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in formula %q: %s", e.Formula, e.Reason)
}

// Parser turns a formula string into an ordered token sequence. The formula
// carries its leading "=" marker. Failures are reported as *SyntaxError.
type Parser interface {
	Parse(formula string) ([]Token, error)
}

// GrammarParser is the default Parser, backed by the efp tokenizer. efp
// accepts any input, so the syntax-error contract comes from validation of
// the raw text and the resulting token stream.
type GrammarParser struct{}

// NewParser returns the default formula parser.
func NewParser() *GrammarParser {
	return &GrammarParser{}
}

func (p *GrammarParser) Parse(formula string) ([]Token, error) {
	fail := func(reason string) ([]Token, error) {
		return nil, &SyntaxError{Formula: formula, Reason: reason}
	}

	if !strings.HasPrefix(formula, "=") {
		return fail("formula must start with '='")
	}
	expr := formula[1:]
	if strings.TrimSpace(expr) == "" {
		return fail("empty formula")
	}
	if reason := checkRawText(expr); reason != "" {
		return fail(reason)
	}

	ps := efp.ExcelParser()
	raw := ps.Parse(expr)
	if len(raw) == 0 {
		return fail("no parseable tokens")
	}

	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, fromEFP(t))
	}
	restoreVerbatim(expr, tokens)
	if reason := checkTokens(tokens); reason != "" {
		return fail(reason)
	}
	return tokens, nil
}

// restoreVerbatim rewrites each range operand to the exact text it has in
// expr. The tokenizer canonicalizes operands (a quoted sheet prefix like
// 'My Sheet'!C3 loses its quotes), but reference text must reach the output
// as written. Operands are matched left to right; an operand whose source
// spelling cannot be located keeps the canonical form.
func restoreVerbatim(expr string, tokens []Token) {
	pos := 0
	for i := range tokens {
		if !tokens[i].IsRef() {
			continue
		}
		src, end := findOperand(expr, pos, tokens[i].Value)
		if src == "" {
			continue
		}
		tokens[i].Value = src
		pos = end
	}
}

// findOperand locates the source spelling of a canonical operand value at or
// after pos: either the value itself or a quoted-sheet form of it. String
// literals are skipped so their contents cannot shadow a reference.
func findOperand(expr string, pos int, value string) (string, int) {
	for s := pos; s < len(expr); {
		switch expr[s] {
		case '"':
			s = skipPast(expr, s, '"')
		case '\'':
			if src, end, ok := matchQuoted(expr, s, value); ok {
				return src, end
			}
			s = skipPast(expr, s, '\'')
		default:
			if strings.HasPrefix(expr[s:], value) {
				return value, s + len(value)
			}
			s++
		}
	}
	return "", 0
}

// matchQuoted matches a quoted sheet prefix starting at expr[s], followed by
// the remainder of value. value carries the canonical spelling: surrounding
// quotes stripped, doubled quotes collapsed.
func matchQuoted(expr string, s int, value string) (string, int, bool) {
	var sheet strings.Builder
	i := s + 1
	for {
		if i >= len(expr) {
			return "", 0, false
		}
		if expr[i] == '\'' {
			if i+1 < len(expr) && expr[i+1] == '\'' {
				sheet.WriteByte('\'')
				i += 2
				continue
			}
			i++
			break
		}
		sheet.WriteByte(expr[i])
		i++
	}
	rest, ok := strings.CutPrefix(value, sheet.String()+"!")
	if !ok {
		return "", 0, false
	}
	if i >= len(expr) || expr[i] != '!' {
		return "", 0, false
	}
	i++
	if !strings.HasPrefix(expr[i:], rest) {
		return "", 0, false
	}
	end := i + len(rest)
	return expr[s:end], end, true
}

// skipPast returns the index just past a quoted segment opening at expr[s],
// honoring doubled-quote escapes.
func skipPast(expr string, s int, q byte) int {
	i := s + 1
	for i < len(expr) {
		if expr[i] == q {
			if i+1 < len(expr) && expr[i+1] == q {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return i
}

// checkRawText rejects constructs before tokenizing: unbalanced parentheses,
// unclosed quotes, array constants and bracketed external references. Quote
// state matters because parentheses are legal inside string literals and
// quoted sheet names.
func checkRawText(expr string) string {
	var inString, inQuote bool
	depth := 0
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case inString:
			if c == '"' {
				if i+1 < len(expr) && expr[i+1] == '"' {
					i++ // doubled quote escapes itself
				} else {
					inString = false
				}
			}
		case inQuote:
			if c == '\'' {
				if i+1 < len(expr) && expr[i+1] == '\'' {
					i++
				} else {
					inQuote = false
				}
			}
		default:
			switch c {
			case '"':
				inString = true
			case '\'':
				inQuote = true
			case '(':
				depth++
			case ')':
				depth--
				if depth < 0 {
					return "unbalanced parentheses: unexpected closing parenthesis"
				}
			case '{':
				return "array constants are not supported"
			case '[':
				return "external references are not supported"
			case ';':
				// Stored formulas always use "," separators; ";" only
				// occurs inside array constants, rejected above.
				return "unexpected ';' outside an array constant"
			}
		}
	}
	if inString {
		return "unclosed string literal"
	}
	if inQuote {
		return "unclosed quoted sheet name"
	}
	if depth > 0 {
		return "unbalanced parentheses: missing closing parenthesis"
	}
	return ""
}

// checkTokens walks the stream and rejects what the tokenizer let through
// but the grammar forbids.
func checkTokens(tokens []Token) string {
	depth := 0
	havePrev := false
	var prev Token

	for _, tok := range tokens {
		if tok.Kind == KindWhitespace {
			continue
		}
		switch tok.Kind {
		case KindUnknown:
			return fmt.Sprintf("unexpected token %q", tok.Value)
		case KindFunction:
			if tok.Subtype == SubStart {
				if !knownFunction(tok.Value) {
					return fmt.Sprintf("unknown function %q", tok.Value)
				}
				depth++
			} else {
				depth--
			}
		case KindSubexpression:
			if tok.Subtype == SubStart {
				depth++
			} else {
				depth--
				if havePrev && prev.Kind == KindSubexpression && prev.Subtype == SubStart {
					return "empty subexpression"
				}
			}
		case KindOperatorInfix:
			if !havePrev {
				return fmt.Sprintf("unexpected operator %q at start of expression", tok.Value)
			}
			if afterOpener(prev) {
				return fmt.Sprintf("unexpected operator %q", tok.Value)
			}
			if tok.Subtype == SubUnion && depth == 0 {
				return "unexpected ',' outside function arguments"
			}
		case KindOperatorPostfix:
			if !havePrev {
				return fmt.Sprintf("unexpected operator %q at start of expression", tok.Value)
			}
		case KindArgument:
			if depth == 0 {
				return "unexpected ',' outside function arguments"
			}
		}
		prev = tok
		havePrev = true
	}

	if havePrev && (prev.Kind == KindOperatorInfix || prev.Kind == KindOperatorPrefix) {
		return fmt.Sprintf("incomplete expression after operator %q", prev.Value)
	}
	return ""
}

// afterOpener reports whether prev cannot be followed by an infix operator:
// another operator, an opening parenthesis, or an argument separator.
func afterOpener(prev Token) bool {
	switch prev.Kind {
	case KindOperatorInfix, KindOperatorPrefix, KindArgument:
		return true
	case KindFunction, KindSubexpression:
		return prev.Subtype == SubStart
	}
	return false
}
