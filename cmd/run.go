package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/diagnose/internal/bayes"
	"github.com/abhisek/diagnose/internal/tabular"
	"github.com/abhisek/diagnose/internal/ui/theme"
)

var runCmd = &cobra.Command{
	Use:   "run <train.csv> <query.csv> <out.csv>",
	Short: "Train on labeled records and predict a disease per query row",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(args[0], args[1], args[2], cmd.OutOrStdout())
	},
}

// runPipeline is the whole batch job: fit from the training file,
// classify every query row in order, write the prediction file, print
// a short summary. Any failure aborts the run; nothing partial is kept.
func runPipeline(trainPath, queryPath, outPath string, out io.Writer) error {
	rows, err := tabular.ReadRows(trainPath)
	if err != nil {
		return fmt.Errorf("load training data: %w", err)
	}
	model, err := bayes.Train(rows)
	if err != nil {
		return fmt.Errorf("fit model from %s: %w", trainPath, err)
	}

	queries, err := tabular.ReadRows(queryPath)
	if err != nil {
		return fmt.Errorf("load query data: %w", err)
	}
	labels := make([]string, 0, len(queries))
	for i, row := range queries {
		label, err := model.ClassifyRow(row)
		if err != nil {
			return fmt.Errorf("classify query row %d: %w", i+1, err)
		}
		labels = append(labels, label)
	}

	if err := tabular.WritePredictions(outPath, labels); err != nil {
		return fmt.Errorf("write predictions: %w", err)
	}

	fmt.Fprintln(out, theme.Title.Render("diagnose run"))
	printStat(out, "Training rows", strconv.Itoa(model.TrainingRows()))
	printStat(out, "Diseases", strconv.Itoa(len(model.Diseases())))
	printStat(out, "Vocabulary", strconv.Itoa(model.VocabularySize())+" symptoms")
	printStat(out, "Predictions", strconv.Itoa(len(labels)))
	printStat(out, "Output", outPath)
	return nil
}

func printStat(out io.Writer, label, value string) {
	fmt.Fprintf(out, "  %s %s\n", theme.Label.Render(label+":"), theme.Value.Render(value))
}
