// Package cli provides the command-line interface for topup.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	settings := commands.NewSettings()

	rootCmd := &cobra.Command{
		Use:   "topup",
		Short: "Extract customer ids and recharge amounts from pasted text",
		Long: `topup turns pasted freeform text into (id, amount) records and copies
individual fields to the clipboard.

Every line of the form "<digits><separator><digits>[w|k]" becomes a record:
  1001 充值 5w   ->  id 1001, amount 50000
  007 abc 3k     ->  id 007,  amount 3000
Lines that do not match are skipped.

Global flags can also be set with TOPUP_* environment variables
(TOPUP_CONFIG, TOPUP_OUTPUT, TOPUP_VERBOSE, TOPUP_QUIET).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	settings.Register(rootCmd)

	rootCmd.AddCommand(commands.NewExtractCommand(settings))
	rootCmd.AddCommand(commands.NewCopyCommand(settings))
	rootCmd.AddCommand(commands.NewInspectCommand(settings))
	rootCmd.AddCommand(commands.NewShellCommand(settings))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
