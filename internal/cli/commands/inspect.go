package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	// All includes blank lines in the listing.
	All bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(s *Settings) *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [file...]",
		Short: "Show how each input line was parsed",
		Long: `Show, for every input line, whether it produced a record and why not.

Statuses:
  matched   - line produced a record
  no_match  - no digits, separator, digits structure on the line
  overflow  - amount too large for a 64-bit integer after the unit
  invalid   - custom pattern captured a non-numeric amount
  blank     - empty or whitespace-only line (shown with --all)

Example:
  topup inspect paste.txt
  pbpaste | topup inspect --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, s, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include blank lines")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, s *Settings, opts *InspectOptions) error {
	ctx := contextOf(cmd)

	a, err := s.setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	src, err := openSource(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	showRows := !s.Quiet()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if showRows {
		fmt.Fprintln(tw, "LINE\tSTATUS\tID\tAMOUNT\tUNIT\tDETAIL")
	}

	counts := make(map[extractor.Status]int)
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		res := a.extractor.Inspect(line.Content)
		counts[res.Status]++

		if !showRows || (res.Status == extractor.StatusBlank && !opts.All) {
			continue
		}

		amount := ""
		detail := ""
		switch {
		case res.Record != nil:
			amount = fmt.Sprintf("%d", res.Record.Amount)
		case res.Err != nil:
			amount = res.RawAmount
			detail = res.Err.Error()
		}

		fmt.Fprintf(tw, "%s:%d\t%s\t%s\t%s\t%s\t%s\n",
			line.Source, line.LineNum, res.Status, res.ID, amount, res.Unit, detail)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if showRows {
		fmt.Fprintln(cmd.OutOrStdout(), "---")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d matched, %d no_match, %d overflow, %d invalid, %d blank\n",
		counts[extractor.StatusMatched],
		counts[extractor.StatusNoMatch],
		counts[extractor.StatusOverflow],
		counts[extractor.StatusInvalid],
		counts[extractor.StatusBlank])

	return nil
}
