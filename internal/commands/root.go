// internal/commands/root.go
package bstreport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/mwiater/bstreport/internal/appconfig"
	"github.com/mwiater/bstreport/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logAnnotation selects where a command's log lines go. Commands that draw to
// the terminal set it to logFileOnly.
const (
	logAnnotation = "logging"
	logFileOnly   = "file"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bstreport",
	Short: "bstreport builds the BST0 vs Triplet performance report",
	Long: `bstreport fetches the word-search and range-search comparison tables,
summarizes the improvement of the Triplet tree over BST0, and renders the
result as an HTML page, a terminal summary, or a small HTTP service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		explicit := cmd.Flags().Changed("config")
		if err := ensureConfigLoaded(explicit); err != nil {
			return err
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		logging.SetDebug(cfg.Debug)
		initLog := logging.Init
		if cmd.Annotations[logAnnotation] == logFileOnly {
			initLog = logging.InitFileOnly
		}
		if err := initLog(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.LogDebug("[CONFIG] file=%q word=%s range=%s timeout=%s", cfg.ConfigPath, cfg.WordSearchSource(), cfg.RangeSearchSource(), cfg.RequestTimeout())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logging.Close()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (JSON or YAML)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().Int("timeout", 0, "seconds allowed for fetching both tables (0 = default)")
	rootCmd.PersistentFlags().String("wordSearchUrl", "", "word-search comparison table (URL or local path)")
	rootCmd.PersistentFlags().String("rangeSearchUrl", "", "range-search comparison table (URL or local path)")
	rootCmd.PersistentFlags().String("aggregateMarker", "", "label fragment that marks summary rows")
	rootCmd.PersistentFlags().Bool("renderCharts", false, "render charts locally instead of linking the hosted images")

	for _, name := range []string{"debug", "logFile", "timeout", "wordSearchUrl", "rangeSearchUrl", "aggregateMarker", "renderCharts"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// ensureConfigLoaded validates and reads the config file. A missing default
// config file means defaults apply; a missing explicit one is an error.
func ensureConfigLoaded(explicit bool) error {
	if cfgFile == "" {
		return nil
	}
	if _, err := os.Stat(cfgFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := appconfig.ValidateFile(cfgFile); err != nil {
		return err
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
