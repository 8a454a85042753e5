package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/pkg/output"
)

// NewExtractCommand creates the extract command.
func NewExtractCommand(s *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file...]",
		Short: "Extract id and amount records from pasted text",
		Long: `Extract (id, amount) records from text, one record per matching line.

Each line is matched against the configured pattern (default: digits, any
non-digit separator, digits, optional unit). The unit w multiplies the amount
by 10000 and k by 1000. Lines that do not match are skipped.

Reads the given files in order (globs allowed), or standard input when no
file or "-" is given.

Exit codes:
  0 - At least one record extracted
  1 - No records found
  2 - Configuration or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, s)
		},
	}
}

func runExtract(cmd *cobra.Command, args []string, s *Settings) error {
	ctx := contextOf(cmd)
	started := time.Now()

	a, err := s.setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	formatter, err := a.formatter(s)
	if err != nil {
		return err
	}

	src, err := openSource(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	result, err := a.extractor.ExtractLines(ctx, src)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	report := output.NewReport(result, started)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.HasRecords() {
		ExitCode = 1
	}

	return nil
}
