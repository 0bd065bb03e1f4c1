/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ypay/txfile/pkg/config"
)

var (
	cfg        *config.Config
	logger     *zap.SugaredLogger
	configPath string
	archiveDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txfile",
	Short: "txfile - transaction file converter",
	Long: `txfile converts financial transaction files between the binary,
text and CSV formats, compares record sets and archives them locally.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
		if archiveDir == "" {
			archiveDir = cfg.ArchiveDir
		}

		zapConfig := zap.NewProductionConfig()
		// this is just for sugar, to display a readable date instead of an epoch time
		zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
		if level, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			zapConfig.Level = zap.NewAtomicLevelAt(level)
		}
		zapLogger, err := zapConfig.Build()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = zapLogger.Sugar()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error occured during application execution: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetDefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&archiveDir, "archive", "", "Archive directory (defaults to the configured one)")
}
