package bayes

import (
	"sort"
	"strings"
)

// Classify returns the disease label maximizing pi(d) times the product
// of the likelihoods of the given symptoms. Tokens are normalized the
// same way as during training. Any token outside the training
// vocabulary yields an UnknownSymptomError; there is no zero-evidence
// fallback. An empty symptom list degenerates to the highest prior.
func (m *Model) Classify(symptoms []string) (string, error) {
	// Validate in input order so the reported token is stable.
	for _, cell := range symptoms {
		token := strings.TrimSpace(cell)
		if token == "" {
			continue
		}
		if !m.Knows(token) {
			return "", &UnknownSymptomError{Symptom: token}
		}
	}
	set := normalizeSymptoms(symptoms)

	// Multiply in a fixed token order: float products are not exactly
	// associative, and scores must be bit-identical across runs.
	tokens := make([]string, 0, len(set))
	for symptom := range set {
		tokens = append(tokens, symptom)
	}
	sort.Strings(tokens)

	best := ""
	bestScore := -1.0
	for _, disease := range m.diseases {
		score := m.priors[disease]
		betas := m.likelihoods[disease]
		for _, symptom := range tokens {
			score *= betas[symptom]
		}
		if score > bestScore {
			best = disease
			bestScore = score
		}
	}
	return best, nil
}

// ClassifyRow classifies a raw query row. The first cell is the
// positional label column of the input format and is not read; the
// remaining cells are the symptoms.
func (m *Model) ClassifyRow(cells []string) (string, error) {
	if len(cells) == 0 {
		return m.Classify(nil)
	}
	return m.Classify(cells[1:])
}
