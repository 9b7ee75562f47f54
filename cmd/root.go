package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Naive Bayes disease prediction from symptom tables",
	Long: "Diagnose — batch Naive Bayes classifier that learns disease/symptom\n" +
		"frequencies from a labeled CSV and predicts a disease for each row of\n" +
		"an unlabeled query CSV.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}
