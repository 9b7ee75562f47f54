// Package bayes implements a Naive Bayes classifier over disease and
// symptom tokens. A model is fit once from labeled rows and is immutable
// afterwards; classification is a pure read-only function of it.
package bayes

// Model is a fitted classifier. It holds the prior probability of each
// disease and, for every (disease, symptom) pair in the training
// vocabulary, a Laplace-smoothed conditional likelihood.
type Model struct {
	// diseases keeps labels in first-appearance order of the training
	// input. Scoring iterates this slice so that equal scores always
	// resolve to the earliest-seen disease, run after run.
	diseases    []string
	priors      map[string]float64
	likelihoods map[string]map[string]float64
	vocabulary  map[string]struct{}
	rows        int
}

// Diseases returns the known disease labels in first-appearance order.
func (m *Model) Diseases() []string {
	out := make([]string, len(m.diseases))
	copy(out, m.diseases)
	return out
}

// Prior returns pi(d), the training-set frequency of the disease.
// Unknown labels return 0.
func (m *Model) Prior(disease string) float64 {
	return m.priors[disease]
}

// Knows reports whether the symptom is part of the training vocabulary.
func (m *Model) Knows(symptom string) bool {
	_, ok := m.vocabulary[symptom]
	return ok
}

// VocabularySize returns the number of distinct symptom tokens seen
// during training.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// TrainingRows returns the number of rows the model was fit from.
func (m *Model) TrainingRows() int {
	return m.rows
}
