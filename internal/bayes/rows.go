package bayes

import "strings"

// normalizeSymptoms turns raw symptom cells into a set: tokens are
// whitespace-trimmed, empty cells are dropped, and repeats collapse.
// Training and query rows go through this same function, so an
// identically spelled symptom always maps to the same vocabulary entry.
func normalizeSymptoms(cells []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cells))
	for _, cell := range cells {
		token := strings.TrimSpace(cell)
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}
