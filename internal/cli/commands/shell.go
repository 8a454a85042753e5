package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ccollicutt/topup/internal/shell"
	"github.com/ccollicutt/topup/pkg/session"
)

// ShellOptions holds options for the shell command.
type ShellOptions struct {
	NoClipboard bool
	Lines       bool
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand(s *Settings) *cobra.Command {
	opts := &ShellOptions{}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Paste text and copy fields interactively",
		Long: `Start an interactive session: paste text, review the extracted records
and copy ids and amounts one at a time. Copied fields are marked with ✓ and
stay marked until the next analyze or reset.

On a terminal this opens a full-screen view: paste, press ctrl+s to analyze,
move with ↑/↓ and press i or a to copy the id or amount. When standard input
is not a terminal, or with --lines, commands are read one per line:

` + shell.LinesHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoClipboard, "no-clipboard", false, "Do not write the system clipboard")
	cmd.Flags().BoolVar(&opts.Lines, "lines", false, "Read line commands even on a terminal")

	return cmd
}

func runShell(cmd *cobra.Command, s *Settings, opts *ShellOptions) error {
	ctx := contextOf(cmd)
	a, err := s.setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	sess := session.New(newClipboard(opts.NoClipboard),
		session.WithExtractor(a.extractor),
		session.WithLogger(a.logger))

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !opts.Lines && term.IsTerminal(int(f.Fd())) {
		return shell.Run(ctx, sess, f, cmd.OutOrStdout())
	}
	return shell.RunLines(ctx, sess, in, cmd.OutOrStdout())
}
