package formula

import "github.com/xuri/efp"

// Kind classifies a token's syntactic role.
type Kind int

const (
	KindUnknown Kind = iota
	KindOperand
	KindFunction
	KindSubexpression
	KindArgument
	KindOperatorPrefix
	KindOperatorInfix
	KindOperatorPostfix
	KindWhitespace
)

// Subtype refines a token within its kind: operands carry what they denote,
// functions and subexpressions carry open/close markers.
type Subtype int

const (
	SubNone Subtype = iota
	SubStart
	SubStop
	SubRange
	SubNumber
	SubText
	SubLogical
	SubError
	SubMath
	SubConcat
	SubIntersect
	SubUnion
)

// Token is one atomic unit of a parsed formula.
type Token struct {
	Value   string
	Kind    Kind
	Subtype Subtype
}

// IsRef reports whether the token denotes a cell or range reference.
func (t Token) IsRef() bool {
	return t.Kind == KindOperand && t.Subtype == SubRange
}

func fromEFP(t efp.Token) Token {
	out := Token{Value: t.TValue}

	switch t.TType {
	case efp.TokenTypeOperand:
		out.Kind = KindOperand
	case efp.TokenTypeFunction:
		out.Kind = KindFunction
	case efp.TokenTypeSubexpression:
		out.Kind = KindSubexpression
	case efp.TokenTypeArgument:
		out.Kind = KindArgument
	case efp.TokenTypeOperatorPrefix:
		out.Kind = KindOperatorPrefix
	case efp.TokenTypeOperatorInfix:
		out.Kind = KindOperatorInfix
	case efp.TokenTypeOperatorPostfix:
		out.Kind = KindOperatorPostfix
	case efp.TokenTypeWhitespace:
		out.Kind = KindWhitespace
	default:
		out.Kind = KindUnknown
	}

	switch t.TSubType {
	case efp.TokenSubTypeStart:
		out.Subtype = SubStart
	case efp.TokenSubTypeStop:
		out.Subtype = SubStop
	case efp.TokenSubTypeRange:
		out.Subtype = SubRange
	case efp.TokenSubTypeNumber:
		out.Subtype = SubNumber
	case efp.TokenSubTypeText:
		out.Subtype = SubText
	case efp.TokenSubTypeLogical:
		out.Subtype = SubLogical
	case efp.TokenSubTypeError:
		out.Subtype = SubError
	case efp.TokenSubTypeMath:
		out.Subtype = SubMath
	case efp.TokenSubTypeConcatenation:
		out.Subtype = SubConcat
	case efp.TokenSubTypeIntersection:
		out.Subtype = SubIntersect
	case efp.TokenSubTypeUnion:
		out.Subtype = SubUnion
	default:
		out.Subtype = SubNone
	}

	return out
}
