package formula

// References returns the cell and range operands of a token stream in source
// order. Duplicates are preserved: a formula referencing B1 twice yields two
// entries. The result is never nil; a formula with no reference operands
// yields an empty slice, which is a valid outcome distinct from a parse
// failure.
func References(tokens []Token) []string {
	refs := []string{}
	for _, t := range tokens {
		if t.IsRef() {
			refs = append(refs, t.Value)
		}
	}
	return refs
}
