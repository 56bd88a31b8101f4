package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamsieve/spam-classifier/pkg/config"
	"github.com/hamsieve/spam-classifier/pkg/corpus"
)

var (
	validateSpamDir   string
	validateHamDir    string
	validateConfig    string
	validateModelPath string
	validateWorkers   int
	validateVerbose   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the model against labeled documents",
	Long: `Score every document in labeled spam and ham folders against the
trained model and report per-class accuracy. A spam document counts as
correct when its probability reaches the spam threshold; a ham document when
it stays at or below the ham threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateSpamDir == "" && validateHamDir == "" {
			return fmt.Errorf("at least one of --spam-dir or --ham-dir must be specified")
		}

		cfg, err := config.LoadConfig(validateConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if validateModelPath != "" {
			cfg.Model.Backend = "file"
			cfg.Model.File.Path = validateModelPath
		}
		workers := cfg.Training.Workers
		if validateWorkers > 0 {
			workers = validateWorkers
		}

		model, err := loadModel(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("🔍 hamsieve Validation\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("💾 Model: %s\n", modelLocation(cfg))
		fmt.Printf("🎯 Thresholds: spam >= %.2f, ham <= %.2f\n\n",
			cfg.Classify.SpamThreshold, cfg.Classify.HamThreshold)

		onScore := func(class string) func(path string, p float64) {
			if !validateVerbose {
				return nil
			}
			return func(path string, p float64) {
				fmt.Printf("Probability: %.8f\t\t(%s) %s\n", p, class, path)
			}
		}

		start := time.Now()

		if validateSpamDir != "" {
			result, err := corpus.Validate(model, validateSpamDir, workers,
				func(p float64) bool { return p >= cfg.Classify.SpamThreshold },
				onScore("spam"))
			if err != nil {
				return fmt.Errorf("failed to validate spam documents: %v", err)
			}
			fmt.Printf("✅ Spam correctly classified: %d/%d = %.4f\n",
				result.Correct, result.Total, result.Accuracy())
		}

		if validateHamDir != "" {
			result, err := corpus.Validate(model, validateHamDir, workers,
				func(p float64) bool { return p <= cfg.Classify.HamThreshold },
				onScore("ham"))
			if err != nil {
				return fmt.Errorf("failed to validate ham documents: %v", err)
			}
			fmt.Printf("✅ Ham correctly classified: %d/%d = %.4f\n",
				result.Correct, result.Total, result.Accuracy())
		}

		fmt.Printf("\n⏱️  Time taken: %v\n", time.Since(start))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateSpamDir, "spam-dir", "s", "", "Directory containing labeled spam documents")
	validateCmd.Flags().StringVar(&validateHamDir, "ham-dir", "", "Directory containing labeled ham documents")
	validateCmd.Flags().StringVarP(&validateConfig, "config", "c", "", "Configuration file path")
	validateCmd.Flags().StringVarP(&validateModelPath, "model", "m", "", "Model file path (overrides config, forces file backend)")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0, "Scoring worker goroutines (0 = NumCPU)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print every document's probability")
}
