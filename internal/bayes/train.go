package bayes

// Train fits a model from labeled rows. Cell 0 of each row is the
// disease label, taken verbatim; the remaining cells are symptom
// tokens, trimmed and deduplicated per row. A row with no symptom
// cells is legal and contributes only to the prior.
func Train(rows [][]string) (*Model, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	byDisease := make(map[string][]map[string]struct{})
	var order []string
	vocabulary := make(map[string]struct{})

	for i, row := range rows {
		if len(row) == 0 {
			return nil, &MalformedRowError{Row: i + 1}
		}
		disease := row[0]
		symptoms := normalizeSymptoms(row[1:])
		for s := range symptoms {
			vocabulary[s] = struct{}{}
		}
		if _, seen := byDisease[disease]; !seen {
			order = append(order, disease)
		}
		byDisease[disease] = append(byDisease[disease], symptoms)
	}

	total := float64(len(rows))
	vocabSize := float64(len(vocabulary))
	priors := make(map[string]float64, len(order))
	likelihoods := make(map[string]map[string]float64, len(order))

	for _, disease := range order {
		instances := byDisease[disease]

		// Smoothing denominator: total symptom occurrences for this
		// disease (sum of per-row set sizes), not the row count.
		occurrences := 0
		for _, set := range instances {
			occurrences += len(set)
		}

		// Every vocabulary symptom gets a likelihood, add-one smoothed,
		// even if this disease never exhibits it.
		betas := make(map[string]float64, len(vocabulary))
		for symptom := range vocabulary {
			count := 0
			for _, set := range instances {
				if _, ok := set[symptom]; ok {
					count++
				}
			}
			betas[symptom] = (float64(count) + 1) / (float64(occurrences) + vocabSize)
		}

		likelihoods[disease] = betas
		priors[disease] = float64(len(instances)) / total
	}

	return &Model{
		diseases:    order,
		priors:      priors,
		likelihoods: likelihoods,
		vocabulary:  vocabulary,
		rows:        len(rows),
	}, nil
}
