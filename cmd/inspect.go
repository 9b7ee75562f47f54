package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/diagnose/internal/bayes"
	"github.com/abhisek/diagnose/internal/tabular"
	"github.com/abhisek/diagnose/internal/ui/theme"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <train.csv>",
	Short: "Fit the model and show disease priors and vocabulary size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := tabular.ReadRows(args[0])
		if err != nil {
			return fmt.Errorf("load training data: %w", err)
		}
		model, err := bayes.Train(rows)
		if err != nil {
			return fmt.Errorf("fit model from %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("diagnose inspect"))
		printStat(out, "Training rows", strconv.Itoa(model.TrainingRows()))
		printStat(out, "Vocabulary", strconv.Itoa(model.VocabularySize())+" symptoms")

		// Highest prior first; equal priors keep first-appearance order.
		diseases := model.Diseases()
		sort.SliceStable(diseases, func(i, j int) bool {
			return model.Prior(diseases[i]) > model.Prior(diseases[j])
		})
		fmt.Fprintln(out, theme.Label.Render("  Priors:"))
		for _, d := range diseases {
			fmt.Fprintf(out, "    %s %s\n",
				theme.Value.Render(d),
				theme.Highlight.Render(fmt.Sprintf("%.4f", model.Prior(d))))
		}
		return nil
	},
}
