package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamsieve/spam-classifier/pkg/config"
)

var (
	inspectConfigFile string
	inspectModelPath  string
	inspectWord       string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show statistics about the trained model",
	Long: `Print model statistics: training totals, vocabulary size and the most
spam- and ham-leaning words. With --word, show statistics for one word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(inspectConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if inspectModelPath != "" {
			cfg.Model.Backend = "file"
			cfg.Model.File.Path = inspectModelPath
		}

		model, err := loadModel(cfg)
		if err != nil {
			return err
		}

		if inspectWord != "" {
			stats := model.WordStats(inspectWord)
			if stats == nil {
				fmt.Printf("Word %q was never seen in training data\n", inspectWord)
				return nil
			}
			fmt.Printf("Word: %s\n", stats.Word)
			fmt.Printf("  Spam count: %d (frequency %.8f)\n", stats.SpamCount, stats.SpamFreq)
			fmt.Printf("  Ham count: %d (frequency %.8f)\n", stats.HamCount, stats.HamFreq)
			fmt.Printf("  Spamminess: %.4f\n", stats.Spamminess)
			return nil
		}

		model.PrintStats(os.Stdout)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectConfigFile, "config", "c", "", "Configuration file path")
	inspectCmd.Flags().StringVarP(&inspectModelPath, "model", "m", "", "Model file path (overrides config, forces file backend)")
	inspectCmd.Flags().StringVarP(&inspectWord, "word", "W", "", "Show statistics for a single word")
}
