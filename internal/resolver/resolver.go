package resolver

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"StockDash/internal/model"
)

// prefixBoost is added to the raw fuzzy score of any hit whose symbol
// starts with the query. It is deliberately not clamped to 100: boosted
// scores only order results, they are not shown as percentages.
const prefixBoost = 50

// Directory supplies the symbol universe to search over.
type Directory interface {
	Load() []model.SymbolRecord
}

// Resolver performs fuzzy symbol/company search over a Directory.
type Resolver struct {
	dir Directory
}

// New creates a Resolver backed by dir.
func New(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Search scores every directory entry against query with a partial-ratio
// fuzzy scorer, keeps the top limit raw hits, then boosts hits whose
// symbol starts with the query and reorders prefix hits first, descending
// by final score with stable ties. An empty query returns no results.
//
// The boost runs after the top-limit cut, so a prefix match that scored
// below the cut stays excluded. Downstream suggestion lists depend on
// this ordering; do not move the boost ahead of the cut.
func (r *Resolver) Search(query string, limit int) []model.MatchResult {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	recs := r.dir.Load()
	scored := make([]model.MatchResult, 0, len(recs))
	for _, rec := range recs {
		key := strings.ToUpper(rec.Symbol + " - " + rec.Company)
		scored = append(scored, model.MatchResult{
			Symbol:  rec.Symbol,
			Company: rec.Company,
			Score:   fuzzy.PartialRatio(q, key),
		})
	}

	// Top limit by raw score; stable keeps directory order on ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	var prefix, other []model.MatchResult
	for _, m := range scored {
		if strings.HasPrefix(strings.ToUpper(m.Symbol), q) {
			m.Score += prefixBoost
			prefix = append(prefix, m)
		} else {
			other = append(other, m)
		}
	}

	all := append(prefix, other...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Suggest formats the top search hits as "SYMBOL - Company" strings for
// autocomplete.
func (r *Resolver) Suggest(query string, maxSuggestions int) []string {
	matches := r.Search(query, maxSuggestions)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Symbol+" - "+m.Company)
	}
	return out
}

// ExtractSymbol recovers a ticker from either an autocomplete suggestion
// or free-form user input. Suggestions yield the part before " - "
// trimmed; anything else is uppercased and trimmed.
func ExtractSymbol(s string) string {
	if strings.Contains(s, " - ") {
		return strings.TrimSpace(strings.SplitN(s, " - ", 2)[0])
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
