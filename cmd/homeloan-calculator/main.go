package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iwvelando/homeloan-calculator/internal/config"
	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// app carries what the root command loads for its subcommands.
type app struct {
	configPath string
	conf       *config.Configuration
	logger     *zap.Logger
}

// initializeLogger creates a zap logger based on configuration
func initializeLogger(loggingConfig config.LoggingConfig) (*zap.Logger, error) {
	level := loggingConfig.Level
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		// Test if we can create/write to the file
		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "homeloan-calculator",
		Short: "Price a property and build its down payment and loan amortization schedules",
		Long: `homeloan-calculator prices a model house or lot with its reservation,
government and construction fees, spreads the 20% down payment over 24 months,
and amortizes the remaining balance under the chosen financing option.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (console, json)")

	cmd.AddCommand(calculateCmd(a))
	cmd.AddCommand(breakdownCmd(a))
	cmd.AddCommand(optionsCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd, a
}

// initConfig loads .env, the config file and flag overrides, then starts the
// logger. A missing config file is only an error when --config was given.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	opts := []config.Option{
		config.BindFlag("logging.level", cmd.Flags().Lookup("log-level")),
		config.BindFlag("logging.format", cmd.Flags().Lookup("log-format")),
	}
	if flag := cmd.Flags().Lookup("output-format"); flag != nil {
		opts = append(opts, config.BindFlag("output.format", flag))
	}

	var err error
	if _, statErr := os.Stat(a.configPath); statErr != nil && !cmd.Flags().Changed("config") {
		a.conf, err = config.DefaultConfiguration(opts...)
	} else {
		a.conf, err = config.LoadConfiguration(a.configPath, opts...)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	a.logger, err = initializeLogger(a.conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Validate configuration and display any warnings
	for _, warning := range a.conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	return nil
}

func main() {
	cmd, a := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error(err.Error(),
				zap.String("op", "main"),
			)
			_ = a.logger.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		}
		os.Exit(1)
	}
}
