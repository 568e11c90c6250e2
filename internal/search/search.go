package search

import "github.com/sahilm/fuzzy"

// Result represents a fuzzy match against one of the searched strings.
type Result struct {
	Index          int // position in the searched slice
	Text           string
	MatchedIndexes []int
	Score          int
}

// Filter fuzzy-matches query against items.
// Results are sorted by match score (best first). An empty query matches
// every item, in the original order.
func Filter(items []string, query string) []Result {
	if query == "" {
		results := make([]Result, len(items))
		for i, item := range items {
			results[i] = Result{Index: i, Text: item}
		}
		return results
	}

	matches := fuzzy.Find(query, items)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Index:          m.Index,
			Text:           m.Str,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
