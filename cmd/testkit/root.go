package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/testkit/internal/version"
	"github.com/arthur-debert/testkit/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "testkit",
		Short: "Test-infrastructure scaffolding and project validation",
		Long: `testkit bundles the shared test fixtures this organization uses and a
validator that checks a project's configuration files (build manifest,
ignore rules, lint config) and test-package layout for the expected
markers.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for testkit`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("testkit version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
