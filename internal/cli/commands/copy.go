package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/pkg/clipboard"
	"github.com/ccollicutt/topup/pkg/extractor"
	"github.com/ccollicutt/topup/pkg/output"
	"github.com/ccollicutt/topup/pkg/session"
)

// CopyOptions holds command-line options for the copy command.
type CopyOptions struct {
	// NoClipboard prints the value without touching the system clipboard.
	NoClipboard bool
}

// NewCopyCommand creates the copy command.
func NewCopyCommand(s *Settings) *cobra.Command {
	opts := &CopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy <index> <id|amount> [file...]",
		Short: "Copy one field of an extracted record to the clipboard",
		Long: `Extract records from the input, then copy the id or amount of the record
at <index> (0-based, as listed by extract) to the system clipboard.

The copied value is printed on stdout. With --verbose the record table is
printed afterwards with the copied field marked.

On Linux the system clipboard needs xclip, xsel or wl-copy.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args, s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoClipboard, "no-clipboard", false, "Print the value only, do not write the clipboard")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string, s *Settings, opts *CopyOptions) error {
	ctx := contextOf(cmd)

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	field, err := extractor.ParseField(args[1])
	if err != nil {
		return err
	}

	a, err := s.setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	src, err := openSource(args[2:], cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	text, err := readText(ctx, src)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	sess := session.New(newClipboard(opts.NoClipboard),
		session.WithExtractor(a.extractor),
		session.WithLogger(a.logger))
	sess.Analyze(text)

	value, err := sess.Copy(index, field)
	if err != nil {
		return fmt.Errorf("copying record %d: %w", index, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, value)

	if s.Verbose() {
		fmt.Fprintln(cmd.ErrOrStderr())
		if err := output.WriteTable(cmd.ErrOrStderr(), sess.Records()); err != nil {
			return err
		}
	}

	return nil
}

func newClipboard(disabled bool) clipboard.Writer {
	if disabled {
		return clipboard.NewMemory()
	}
	return clipboard.NewSystem()
}
