package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hamsieve",
	Short: "hamsieve - word-frequency spam/ham classifier",
	Long: `hamsieve classifies text as spam or ham using a Naive-Bayes-style
word-frequency model. Train it on folders of known spam and ham documents,
then score new text against the saved model.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hamsieve - word-frequency spam/ham classifier")
		fmt.Println("Use 'hamsieve --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}
