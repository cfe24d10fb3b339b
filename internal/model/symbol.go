package model

// SymbolRecord is one (ticker, company) entry of the symbol directory.
type SymbolRecord struct {
	Symbol  string
	Company string
}

// MatchResult is a scored search hit. Score is 0-100 from the fuzzy
// scorer; prefix matches carry an additional boost and may exceed 100.
// Results are transient, never persisted.
type MatchResult struct {
	Symbol  string
	Company string
	Score   int
}
