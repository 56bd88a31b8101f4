package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamsieve/spam-classifier/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and manage hamsieve configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Long:  `Generate a default configuration file with all options`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "hamsieve.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %v", err)
		}

		fmt.Printf("✅ Configuration file generated: %s\n", configPath)
		fmt.Printf("📝 Edit the file to customize storage backend and thresholds\n")
		fmt.Printf("🚀 Use 'hamsieve train --config %s' to use the configuration\n", configPath)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Long:  `Validate a configuration file for syntax and logical errors`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := args[0]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("❌ Configuration validation failed: %v", err)
		}

		fmt.Printf("✅ Configuration is valid: %s\n", configPath)
		fmt.Printf("\n📊 Configuration Summary:\n")
		fmt.Printf("  Model backend: %s\n", cfg.Model.Backend)
		fmt.Printf("  Model location: %s\n", modelLocation(cfg))
		fmt.Printf("  Spam threshold: %.2f\n", cfg.Classify.SpamThreshold)
		fmt.Printf("  Ham threshold: %.2f\n", cfg.Classify.HamThreshold)
		fmt.Printf("  Training workers: %d\n", cfg.Training.Workers)

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show current configuration",
	Long:  `Display the current configuration with all values`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		var err error

		if len(args) > 0 {
			cfg, err = config.LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}
			fmt.Printf("Configuration: %s\n\n", args[0])
		} else {
			cfg = config.DefaultConfig()
			fmt.Printf("Default Configuration:\n\n")
		}

		fmt.Printf("💾 Model Storage:\n")
		fmt.Printf("  Backend: %s\n", cfg.Model.Backend)
		fmt.Printf("  Location: %s\n", modelLocation(cfg))
		if cfg.Model.Backend == "redis" {
			fmt.Printf("  Key prefix: %s\n", cfg.Model.Redis.KeyPrefix)
			fmt.Printf("  Database: %d\n", cfg.Model.Redis.DatabaseNum)
			fmt.Printf("  Batch size: %d\n", cfg.Model.Redis.BatchSize)
		}

		fmt.Printf("\n🎯 Classification:\n")
		fmt.Printf("  Spam threshold: %.2f\n", cfg.Classify.SpamThreshold)
		fmt.Printf("  Ham threshold: %.2f\n", cfg.Classify.HamThreshold)

		fmt.Printf("\n⚡ Training:\n")
		fmt.Printf("  Workers: %d (0 = NumCPU)\n", cfg.Training.Workers)

		return nil
	},
}

func init() {
	configGenCmd.Flags().Bool("force", false, "Overwrite existing config file")
	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
