// Package cli implements the cobra command tree for notefetch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/notefetch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "notefetch",
	Short: "Fetch Google Keep notes as normalised documents",
	Long: `notefetch loads Google Keep notes by ID and prints them as normalised
document records.

Authentication uses a service account key file named service_account.json in
the current working directory. The Google Keep API only supports service
accounts with domain-wide delegation; there is no interactive login.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
