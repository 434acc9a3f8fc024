// Package state holds UI-side helpers that operate on plain data, kept apart
// from the Bubble Tea model so they can be tested in isolation.
package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidate is one searchable row: its label and the path behind it.
type Candidate struct {
	Label string
	Path  string
}

// BestMatchIndex returns the index of the candidate that best matches query,
// or -1 when nothing does. Exact matches beat label prefixes, which beat
// substrings, which beat fuzzy matches.
func BestMatchIndex(candidates []Candidate, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(candidates) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, c := range candidates {
		if strings.EqualFold(c.Label, trimmed) || strings.EqualFold(c.Path, trimmed) {
			return i
		}
	}
	for i, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c.Label), lower) {
			return i
		}
	}
	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(candidates) {
		return -1
	}
	return best.OriginalIndex
}
