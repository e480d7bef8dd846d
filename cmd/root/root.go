// Package root contains the root command for the application
package root

import (
	"connect/tally/internal/config"
	"connect/tally/internal/export"
	"connect/tally/internal/logging"
	"connect/tally/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Mappings string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Logger is the structured logging adapter handed to the internal packages
	Logger logging.Logger = logging.GetLogger()

	// Cfg holds the resolved application configuration
	Cfg *config.Config

	// Mappings is the shared keyword mapping store
	Mappings *store.MappingStore

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tally",
		Short: "A CLI tool to tally attendance numbers from chat transcripts.",
		Long: `tally reads free-form attendance reports pasted from a group chat,
matches each line against a teachable keyword table and accumulates the
counts per form field. Unrecognized lines can be taught new keywords so
they resolve on the next run.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tally!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			Logger = logging.NewLogrusAdapterFromLogger(Log)
			logging.SetDefaultLogger(Logger)
			export.SetLogger(Logger)

			mappingsFile := SharedFlags.Mappings
			if mappingsFile == "" {
				mappingsFile = cfg.Store.File
			}
			Mappings = store.NewMappingStore(mappingsFile, Logger)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific teach command flags
	Keywords  []string
	FieldName string

	// Specific mappings command flags
	CustomOnly bool
	ClearAll   bool

	// Specific parse command flags
	Suggest         bool
	IncludeZeroRows bool
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (defaults to stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Mappings, "mappings", "m", "", "Keyword mappings file")
}
