package bayes

import (
	"errors"
	"testing"
)

func mustTrain(t *testing.T, rows [][]string) *Model {
	t.Helper()
	model, err := Train(rows)
	if err != nil {
		t.Fatal(err)
	}
	return model
}

func TestClassify_SingleDisease(t *testing.T) {
	model := mustTrain(t, [][]string{{"Flu", "Cough", "Fever"}})
	got, err := model.Classify([]string{"Cough"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Flu" {
		t.Errorf("got %q, want Flu", got)
	}
}

func TestClassify_DiscriminatingEvidence(t *testing.T) {
	model := mustTrain(t, [][]string{
		{"Flu", "Cough", "Fever"},
		{"Cold", "Cough"},
		{"Cold", "Cough"},
	})
	got, err := model.Classify([]string{"Fever"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Flu" {
		t.Errorf("got %q, want Flu (Fever never co-occurs with Cold)", got)
	}
}

func TestClassify_UnseenEvidenceOutweighedByCounts(t *testing.T) {
	// Fever occurs in both Flu rows and never with Cold; even with
	// Cold holding the larger prior, Fever evidence pulls to Flu.
	model := mustTrain(t, [][]string{
		{"Flu", "Cough", "Fever"},
		{"Flu", "Fever"},
		{"Cold", "Cough"},
		{"Cold", "Cough"},
		{"Cold", "Sneezing"},
	})
	got, err := model.Classify([]string{"Fever"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Flu" {
		t.Errorf("got %q, want Flu", got)
	}
}

func TestClassify_EmptyQueryUsesPriors(t *testing.T) {
	model := mustTrain(t, [][]string{
		{"Flu", "Fever"},
		{"Cold", "Cough"},
		{"Cold", "Sneezing"},
	})
	got, err := model.Classify(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Cold" {
		t.Errorf("got %q, want Cold (highest prior)", got)
	}
}

func TestClassify_UnknownSymptom(t *testing.T) {
	model := mustTrain(t, [][]string{{"Flu", "Cough"}})
	_, err := model.Classify([]string{"Cough", "Vertigo"})
	var unknown *UnknownSymptomError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownSymptomError", err)
	}
	if unknown.Symptom != "Vertigo" {
		t.Errorf("got symptom %q, want Vertigo", unknown.Symptom)
	}
}

func TestClassify_TieKeepsFirstSeenDisease(t *testing.T) {
	// Symmetric training data: every score is identical, so the
	// disease whose first row came earlier wins.
	model := mustTrain(t, [][]string{
		{"Flu", "Cough"},
		{"Cold", "Cough"},
	})
	got, err := model.Classify([]string{"Cough"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Flu" {
		t.Errorf("got %q, want Flu (earlier-seen)", got)
	}

	flipped := mustTrain(t, [][]string{
		{"Cold", "Cough"},
		{"Flu", "Cough"},
	})
	got, err = flipped.Classify([]string{"Cough"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Cold" {
		t.Errorf("got %q, want Cold (earlier-seen)", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	rows := [][]string{
		{"Flu", "Cough", "Fever"},
		{"Cold", "Cough", "Sneezing"},
		{"Measles", "Rash", "Fever"},
		{"Cold", "Cough"},
	}
	query := []string{"Fever", "Cough"}
	want, err := mustTrain(t, rows).Classify(query)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		got, err := mustTrain(t, rows).Classify(query)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("run %d predicted %q, earlier runs predicted %q", i, got, want)
		}
	}
}

func TestClassify_NormalizesQueryTokens(t *testing.T) {
	model := mustTrain(t, [][]string{
		{"Flu", "Cough"},
		{"Cold", "Sneezing"},
	})
	got, err := model.Classify([]string{" Cough ", "Cough", ""})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Flu" {
		t.Errorf("got %q, want Flu", got)
	}
}

func TestClassifyRow_IgnoresLabelColumn(t *testing.T) {
	model := mustTrain(t, [][]string{
		{"Flu", "Cough"},
		{"Cold", "Sneezing"},
	})
	// The first cell is the positional label column; "Cough" must not
	// be read from it.
	got, err := model.ClassifyRow([]string{"Cough", "Sneezing"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Cold" {
		t.Errorf("got %q, want Cold", got)
	}
}

func TestClassifyRow_LabelOnlyRow(t *testing.T) {
	model := mustTrain(t, [][]string{
		{"Flu", "Fever"},
		{"Cold", "Cough"},
		{"Cold", "Sneezing"},
	})
	got, err := model.ClassifyRow([]string{"ignored"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Cold" {
		t.Errorf("got %q, want Cold (highest prior)", got)
	}
}
