package engine

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// matchIndices returns the indices of labels that match query, in input
// order. Fuzzy matches win; a plain substring pass runs when fuzzy finds
// nothing so that queries with typos across word boundaries still hit.
func matchIndices(query string, labels []string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(labels))
		for i := range labels {
			all[i] = i
		}
		return all
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		hit := make([]bool, len(labels))
		for _, rank := range ranks {
			hit[rank.OriginalIndex] = true
		}
		out := make([]int, 0, len(ranks))
		for i, ok := range hit {
			if ok {
				out = append(out, i)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	var out []int
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			out = append(out, i)
		}
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
