package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a topup configuration file without extracting anything.

Checks:
  - YAML syntax
  - Pattern validity and capture groups (id, amount, optional unit)
  - Unit suffixes are single characters with positive multipliers
  - Output format`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(contextOf(cmd), configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Pattern:    %s\n", cfg.Pattern)
	fmt.Fprintf(out, "  Groups:     %d\n", cfg.CompiledPattern().NumSubexp())
	fmt.Fprintf(out, "  Fold width: %t\n", cfg.FoldWidth)
	fmt.Fprintf(out, "  Output:     %s\n", cfg.Output)

	units := make([]string, 0, len(cfg.Units))
	for u := range cfg.Units {
		units = append(units, u)
	}
	sort.Strings(units)

	fmt.Fprintf(out, "\nUnits:\n")
	for _, u := range units {
		fmt.Fprintf(out, "  %s = x%d\n", u, cfg.Units[u])
	}

	if cfg.CompiledPattern().NumSubexp() < 3 {
		fmt.Fprintf(out, "\nWarning: pattern has no unit group, units will never apply\n")
	}

	return nil
}
