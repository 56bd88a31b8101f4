package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamsieve/spam-classifier/pkg/classifier"
	"github.com/hamsieve/spam-classifier/pkg/config"
	"github.com/hamsieve/spam-classifier/pkg/corpus"
)

var (
	trainSpamDir   string
	trainHamDir    string
	trainModelPath string
	trainConfig    string
	trainReset     bool
	trainWorkers   int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the word-frequency model",
	Long: `Train the word-frequency classifier model from folders of known spam
and known ham documents. Every file is read as one raw text blob; per-file
frequency maps are built concurrently and merged into the model.

Without --reset, training adds to an existing model if one is found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trainSpamDir == "" && trainHamDir == "" {
			return fmt.Errorf("at least one of --spam-dir or --ham-dir must be specified")
		}

		cfg, err := config.LoadConfig(trainConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if trainModelPath != "" {
			cfg.Model.Backend = "file"
			cfg.Model.File.Path = trainModelPath
		}
		workers := cfg.Training.Workers
		if trainWorkers > 0 {
			workers = trainWorkers
		}

		model := classifier.New()
		if !trainReset {
			existing, err := loadModel(cfg)
			switch {
			case err == nil:
				model = existing
				fmt.Printf("📚 Loaded existing model from %s\n", modelLocation(cfg))
			case errors.Is(err, errNoModel):
				// first training run
			default:
				fmt.Printf("⚠️  Failed to load existing model: %v\n", err)
				fmt.Printf("🔄 Starting with fresh model...\n")
			}
		}

		fmt.Printf("🧠 hamsieve Training\n")
		fmt.Printf("═══════════════════════════════════════\n")
		if trainSpamDir != "" {
			fmt.Printf("📁 Spam directory: %s\n", trainSpamDir)
		}
		if trainHamDir != "" {
			fmt.Printf("📁 Ham directory: %s\n", trainHamDir)
		}
		fmt.Printf("💾 Model: %s\n", modelLocation(cfg))
		if trainReset {
			fmt.Printf("🔄 Reset mode: Starting fresh\n")
		}
		fmt.Printf("\n")

		start := time.Now()
		var totalFiles int

		if trainSpamDir != "" {
			spamMap, stats, err := corpus.FromDir(trainSpamDir, workers)
			if err != nil {
				return fmt.Errorf("failed to train on spam documents: %v", err)
			}
			model.AddSpam(spamMap)
			totalFiles += stats.Files
			fmt.Printf("✅ Trained on %d spam documents (%d skipped)\n", stats.Files, stats.Skipped)
		}

		if trainHamDir != "" {
			hamMap, stats, err := corpus.FromDir(trainHamDir, workers)
			if err != nil {
				return fmt.Errorf("failed to train on ham documents: %v", err)
			}
			model.AddHam(hamMap)
			totalFiles += stats.Files
			fmt.Printf("✅ Trained on %d ham documents (%d skipped)\n", stats.Files, stats.Skipped)
		}

		duration := time.Since(start)

		if err := saveModel(cfg, model); err != nil {
			return fmt.Errorf("failed to save model: %v", err)
		}

		fmt.Printf("\n🎉 Training Complete!\n")
		fmt.Printf("📊 Total documents processed: %d\n", totalFiles)
		fmt.Printf("⏱️  Time taken: %v\n", duration)
		if duration.Seconds() > 0 {
			fmt.Printf("📈 Rate: %.0f documents/second\n", float64(totalFiles)/duration.Seconds())
		}
		fmt.Printf("💾 Model saved to: %s\n", modelLocation(cfg))

		fmt.Printf("\n")
		model.PrintStats(os.Stdout)

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainSpamDir, "spam-dir", "s", "", "Directory containing spam documents")
	trainCmd.Flags().StringVar(&trainHamDir, "ham-dir", "", "Directory containing ham documents")
	trainCmd.Flags().StringVarP(&trainModelPath, "model", "m", "", "Model file path (overrides config, forces file backend)")
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Configuration file path")
	trainCmd.Flags().BoolVarP(&trainReset, "reset", "r", false, "Reset existing model and start fresh")
	trainCmd.Flags().IntVarP(&trainWorkers, "workers", "w", 0, "Ingestion worker goroutines (0 = NumCPU)")
}
