package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	want := []string{"extract", "copy", "inspect", "shell", "validate", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestNewRootCommand_GlobalFlags(t *testing.T) {
	root := NewRootCommand()

	for _, flag := range []string{"config", "output", "verbose", "quiet"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag: %s", flag)
		}
	}
}

func TestNewRootCommand_Extract(t *testing.T) {
	root := NewRootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("1001 充值 5w\n"))
	root.SetArgs([]string{"extract", "-o", "csv"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "0,1001,50000,false,false") {
		t.Errorf("Output = %q", out.String())
	}
}
