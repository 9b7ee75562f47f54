package bayes

import (
	"errors"
	"fmt"
)

// ErrEmptyTrainingSet is returned by Train when no rows are supplied;
// priors would require division by zero.
var ErrEmptyTrainingSet = errors.New("empty training set")

// MalformedRowError reports a training row that is missing its label
// cell. Row numbers are 1-based over the rows handed to Train.
type MalformedRowError struct {
	Row int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: missing disease label cell", e.Row)
}

// UnknownSymptomError reports a query symptom that has no entry in the
// training vocabulary. The model has no likelihood for it, so the row
// cannot be scored.
type UnknownSymptomError struct {
	Symptom string
}

func (e *UnknownSymptomError) Error() string {
	return fmt.Sprintf("symptom %q not in training vocabulary", e.Symptom)
}
