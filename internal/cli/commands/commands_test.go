package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/topup/pkg/extractor"
)

const samplePaste = `客户 充值记录
1001 充值 5w
007 abc 3k

1002 充值 500
谢谢
`

// execute runs a root command wired like the real one and returns combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ExitCode = 0

	s := NewSettings()
	root := &cobra.Command{Use: "topup", SilenceUsage: true, SilenceErrors: true}
	s.Register(root)
	root.AddCommand(
		NewExtractCommand(s),
		NewCopyCommand(s),
		NewInspectCommand(s),
		NewShellCommand(s),
		NewValidateCommand(),
		NewVersionCommand(),
	)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestNewExtractCommand(t *testing.T) {
	cmd := NewExtractCommand(NewSettings())
	if cmd.Use != "extract [file...]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestNewCopyCommand(t *testing.T) {
	cmd := NewCopyCommand(NewSettings())
	if cmd.Flags().Lookup("no-clipboard") == nil {
		t.Error("Missing flag: no-clipboard")
	}
}

func TestExtract_Stdin(t *testing.T) {
	out, err := execute(t, samplePaste, "extract")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	for _, want := range []string{"1001", "50000", "007", "3000", "1002", "500", "3 records, total amount 53500"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestExtract_FileJSON(t *testing.T) {
	path := writeFile(t, "paste.txt", samplePaste)

	out, err := execute(t, "", "extract", "-v", "-o", "json", path)
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var report struct {
		Records []extractor.Record `json:"records"`
		Summary struct {
			LinesRead    int `json:"linesRead"`
			LinesMatched int `json:"linesMatched"`
		} `json:"summary"`
		Metadata struct {
			Sources []string `json:"sources"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(report.Records) != 3 || report.Records[1].ID != "007" || report.Records[1].Amount != 3000 {
		t.Errorf("Records = %+v", report.Records)
	}
	if report.Summary.LinesRead != 6 || report.Summary.LinesMatched != 3 {
		t.Errorf("Summary = %+v", report.Summary)
	}
	if len(report.Metadata.Sources) != 1 || report.Metadata.Sources[0] != path {
		t.Errorf("Sources = %v", report.Metadata.Sources)
	}
}

func TestExtract_CSV(t *testing.T) {
	out, err := execute(t, "007 abc 3w\n1002 xyz 2k\n", "extract", "--output", "csv")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	want := "index,id,amount,id_copied,amount_copied\n0,007,30000,false,false\n1,1002,2000,false,false"
	if strings.TrimSpace(out) != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
}

func TestExtract_OutputFromEnvironment(t *testing.T) {
	t.Setenv("TOPUP_OUTPUT", "json")

	out, err := execute(t, "1 x 2\n", "extract")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("Output is not JSON:\n%s", out)
	}
}

func TestExtract_NoRecords(t *testing.T) {
	out, err := execute(t, "no digits here\n", "extract")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	if !strings.Contains(out, "No records found") {
		t.Errorf("Output = %q", out)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestExtract_Quiet(t *testing.T) {
	out, err := execute(t, samplePaste, "extract", "-q")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("quiet output has more than one line:\n%s", out)
	}
}

func TestExtract_WithConfig(t *testing.T) {
	cfg := writeFile(t, "topup.yaml", `
pattern: '(\d+)\D+(\d+)([wkm]?)'
units:
  m: 1000000
`)

	out, err := execute(t, "42 x 3m\n", "extract", "--config", cfg, "-o", "csv")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	if !strings.Contains(out, "0,42,3000000,false,false") {
		t.Errorf("Output = %q", out)
	}
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"extract", "/nonexistent/paste.txt"}},
		{"bad output", []string{"extract", "-o", "xml"}},
		{"missing config", []string{"extract", "--config", "/nonexistent/topup.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "1 x 2\n", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCopy_PrintsValue(t *testing.T) {
	out, err := execute(t, "007 abc 3w\n1002 xyz 2k\n", "copy", "1", "amount", "--no-clipboard")
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}
	if out != "2000\n" {
		t.Errorf("Output = %q, want %q", out, "2000\n")
	}
}

func TestCopy_IDKeepsLeadingZeros(t *testing.T) {
	path := writeFile(t, "paste.txt", "007 abc 3w\n")

	out, err := execute(t, "", "copy", "0", "id", path, "--no-clipboard")
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}
	if strings.TrimSpace(out) != "007" {
		t.Errorf("Output = %q, want 007", out)
	}
}

func TestCopy_Verbose(t *testing.T) {
	out, err := execute(t, "007 abc 3w\n", "copy", "0", "id", "--no-clipboard", "-v")
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("verbose output missing copied mark:\n%s", out)
	}
}

func TestCopy_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOOR bool
	}{
		{"out of range", []string{"copy", "5", "id", "--no-clipboard"}, true},
		{"negative index", []string{"copy", "--no-clipboard", "--", "-1", "id"}, true},
		{"bad index", []string{"copy", "x", "id", "--no-clipboard"}, false},
		{"bad field", []string{"copy", "0", "name", "--no-clipboard"}, false},
		{"missing args", []string{"copy", "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "1 x 2\n", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantOOR && !strings.Contains(err.Error(), extractor.ErrIndexOutOfRange.Error()) {
				t.Errorf("error = %v, want index out of range", err)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	out, err := execute(t, samplePaste+"1 x 99999999999999999999\n", "inspect")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	for _, want := range []string{"stdin:1", "no_match", "matched", "overflow", "3 matched, 2 no_match, 1 overflow, 0 invalid, 1 blank"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stdin:4") {
		t.Errorf("blank line listed without --all:\n%s", out)
	}
}

func TestInspect_All(t *testing.T) {
	out, err := execute(t, samplePaste, "inspect", "--all")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "stdin:4") || !strings.Contains(out, "blank") {
		t.Errorf("blank line missing with --all:\n%s", out)
	}
}

func TestInspect_Quiet(t *testing.T) {
	out, err := execute(t, samplePaste, "inspect", "-q")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if strings.TrimSpace(out) != "3 matched, 2 no_match, 0 overflow, 0 invalid, 1 blank" {
		t.Errorf("Output = %q", out)
	}
}

func TestShell_Session(t *testing.T) {
	script := strings.Join([]string{
		"help",
		"paste",
		"007 abc 3w",
		"1002 xyz 2k",
		".",
		"copy 0 id",
		"copy 0 id",
		"copy 5 id",
		"copy 1 name",
		"pending",
		"reset",
		"list",
		"bogus",
		"quit",
		"list",
	}, "\n")

	out, err := execute(t, script, "shell", "--no-clipboard")
	if err != nil {
		t.Fatalf("shell error = %v", err)
	}

	for _, want := range []string{
		"Commands:",
		"30000",
		"copied id 007",
		"error: index out of range",
		"error: unknown field",
		"0: 007 (amount)",
		"1: 1002 (id, amount)",
		"cleared",
		"No records found",
		`unknown command "bogus"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "No records found") != 1 {
		t.Errorf("commands after quit were run:\n%s", out)
	}
}

func TestShell_EmptyPaste(t *testing.T) {
	out, err := execute(t, "paste\n.\n", "shell", "--no-clipboard")
	if err != nil {
		t.Fatalf("shell error = %v", err)
	}
	if !strings.Contains(out, "paste content before analyzing") {
		t.Errorf("Output missing empty paste hint:\n%s", out)
	}
}

func TestShell_LongPastedLine(t *testing.T) {
	junk := strings.Repeat("z", 100*1024)
	script := strings.Join([]string{"paste", junk, "1 x 2", ".", "list", "quit"}, "\n")

	out, err := execute(t, script, "shell", "--no-clipboard")
	if err != nil {
		t.Fatalf("shell error = %v", err)
	}
	if strings.Contains(out, "error:") {
		t.Errorf("shell reported an error:\n%s", out)
	}
	if strings.Count(out, "\n0  1") != 2 {
		t.Errorf("record not listed after paste and list:\n%s", out)
	}
}

func TestValidate_Success(t *testing.T) {
	cfg := writeFile(t, "topup.yaml", `
pattern: '(\d+)\D+(\d+)([wk]?)'
units:
  k: 1000
output: csv
`)

	out, err := execute(t, "", "validate", cfg)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	for _, want := range []string{"Configuration valid!", "Output:     csv", "k = x1000", "w = x10000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestValidate_NoUnitGroupWarning(t *testing.T) {
	cfg := writeFile(t, "topup.yaml", "pattern: '(\\d+):(\\d+)'\n")

	out, err := execute(t, "", "validate", cfg)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "units will never apply") {
		t.Errorf("Output missing warning:\n%s", out)
	}
}

func TestValidate_Invalid(t *testing.T) {
	cfg := writeFile(t, "topup.yaml", "pattern: '(\\d+)'\n")

	if _, err := execute(t, "", "validate", cfg); err == nil {
		t.Error("validate expected error for pattern with one group")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if strings.TrimSpace(out) != "topup "+Version {
		t.Errorf("Output = %q", out)
	}
}
