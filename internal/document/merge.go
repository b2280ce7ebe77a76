package document

import "strings"

// MergeUnique appends incoming entries to existing, dropping duplicates
// while preserving first-seen order. Identity is case-insensitive on the
// trimmed value; the first spelling seen is the one kept. Used when merging
// AI-suggested skill or hobby lists. Manual adds append verbatim and never
// pass through here.
func MergeUnique(existing, incoming []string) []string {
	merged := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))

	for _, list := range [][]string{existing, incoming} {
		for _, item := range list {
			trimmed := strings.TrimSpace(item)
			if trimmed == "" {
				continue
			}
			key := strings.ToLower(trimmed)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, trimmed)
		}
	}
	return merged
}
