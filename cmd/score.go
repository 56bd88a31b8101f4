package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamsieve/spam-classifier/pkg/config"
)

var (
	scoreConfigFile string
	scoreModelPath  string
)

var scoreCmd = &cobra.Command{
	Use:   "score [text-file]",
	Short: "Score a text for spam probability",
	Long: `Score a single text file (or stdin when no file is given) against the
trained model and print its spam probability.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if scoreModelPath != "" {
			cfg.Model.Backend = "file"
			cfg.Model.File.Path = scoreModelPath
		}

		source := "stdin"
		var text string
		if len(args) > 0 {
			source = args[0]
			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("failed to read %s: %v", source, err)
			}
			text = string(data)
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %v", err)
			}
			text = string(data)
		}

		model, err := loadModel(cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		p := model.TextSpamProbability(text)
		duration := time.Since(start)

		classification := "UNDECIDED"
		switch {
		case p >= cfg.Classify.SpamThreshold:
			classification = "SPAM"
		case p <= cfg.Classify.HamThreshold:
			classification = "HAM (Clean)"
		}

		fmt.Printf("hamsieve Score Results:\n")
		fmt.Printf("Source: %s\n", source)
		fmt.Printf("Spam probability: %.8f\n", p)
		fmt.Printf("Classification: %s (spam >= %.2f, ham <= %.2f)\n",
			classification, cfg.Classify.SpamThreshold, cfg.Classify.HamThreshold)
		fmt.Printf("Processing time: %.2fms\n", float64(duration.Nanoseconds())/1e6)

		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Configuration file path")
	scoreCmd.Flags().StringVarP(&scoreModelPath, "model", "m", "", "Model file path (overrides config, forces file backend)")
}
