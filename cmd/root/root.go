// Package root contains the root command for the application
package root

import (
	"fjacquet/fid2ofx/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the active configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fid2ofx",
		Short: "Convert a French bank CSV export to an OFX statement file.",
		Long: `fid2ofx converts the semicolon-delimited CSV transaction export of a
French bank into an OFX (SGML/XML) statement file that personal-finance
software can import.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fid2ofx!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
		},
	}

	// Flags shared by the subcommands
	CSVFile string
	Output  string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&CSVFile, "csv", "c", "", "Input CSV export file")
	Cmd.PersistentFlags().StringVarP(&Output, "output", "o", "", "Output file (defaults to <input base name>.ofx)")
}
