package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ccollicutt/topup/pkg/extractor"
	"github.com/ccollicutt/topup/pkg/output"
	"github.com/ccollicutt/topup/pkg/session"
	"github.com/ccollicutt/topup/pkg/source"
)

// LinesHelp lists the line mode commands.
const LinesHelp = `Commands:
  paste                 read text until a line with a single "." and analyze it
  list                  show the current records
  copy <index> <field>  copy id or amount of a record to the clipboard
  pending               show records with fields not yet copied
  reset                 clear the text and records
  help                  show this help
  quit                  leave the shell`

var errQuit = errors.New("quit")

// lineShell reads commands from a LineSource, so an input line may be as
// long as any other input the tool accepts.
type lineShell struct {
	src  source.LineSource
	out  io.Writer
	sess *session.Session
}

// RunLines drives sess from line commands read from in until quit or end of
// input. in is not closed.
func RunLines(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	sh := &lineShell{
		src:  source.NewReaderSource("stdin", io.NopCloser(in)),
		out:  out,
		sess: sess,
	}
	defer sh.src.Close()

	fmt.Fprintln(out, `topup shell, type "help" for commands`)

	for {
		fmt.Fprint(out, "> ")
		line, err := sh.src.Next(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line.Content)
		if len(fields) == 0 {
			continue
		}

		err = sh.dispatch(ctx, fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (sh *lineShell) dispatch(ctx context.Context, name string, args []string) error {
	switch strings.ToLower(name) {
	case "paste":
		return sh.paste(ctx)
	case "list", "ls":
		return sh.list()
	case "copy", "cp":
		return sh.copy(args)
	case "pending":
		return sh.pending()
	case "reset":
		sh.sess.Reset()
		fmt.Fprintln(sh.out, "cleared")
		return nil
	case "help", "?":
		fmt.Fprintln(sh.out, LinesHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (type help)", name)
	}
}

// paste collects lines up to a lone "." or end of input, then analyzes them.
func (sh *lineShell) paste(ctx context.Context) error {
	fmt.Fprintln(sh.out, `paste text, end with a line containing only "."`)

	var lines []string
	for {
		line, err := sh.src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimRight(line.Content, "\r") == "." {
			break
		}
		lines = append(lines, line.Content)
	}

	text := strings.Join(lines, "\n")
	if session.Blank(text) {
		fmt.Fprintln(sh.out, session.EmptyTextHint)
	}

	sh.sess.Analyze(text)
	return sh.list()
}

func (sh *lineShell) list() error {
	records := sh.sess.Records()
	if len(records) == 0 {
		fmt.Fprintln(sh.out, "No records found")
		return nil
	}
	return output.WriteTable(sh.out, records)
}

func (sh *lineShell) copy(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: copy <index> <id|amount>")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	field, err := extractor.ParseField(args[1])
	if err != nil {
		return err
	}

	value, err := sh.sess.Copy(index, field)
	if err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "copied %s %s\n", field, value)
	return nil
}

func (sh *lineShell) pending() error {
	pending := sh.sess.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(sh.out, "nothing pending")
		return nil
	}

	records := sh.sess.Records()
	for _, i := range pending {
		r := records[i]
		var left []string
		if !r.IDCopied {
			left = append(left, "id")
		}
		if !r.AmountCopied {
			left = append(left, "amount")
		}
		fmt.Fprintf(sh.out, "%d: %s (%s)\n", i, r.ID, strings.Join(left, ", "))
	}
	return nil
}
