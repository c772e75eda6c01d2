package fuelup

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag back to its default so package-level flag
// variables do not leak between in-process runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if !strings.Contains(out, "recipe") || !strings.Contains(out, "water") {
		t.Fatalf("expected help to list commands, got %q", out)
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fuelup.db")
	for i := 0; i < 2; i++ {
		out, err := runCLI(t, "--db", path, "init")
		if err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
		if !strings.Contains(out, "Initialized fuelup database") {
			t.Fatalf("unexpected init output: %q", out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "fuelup ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("protein", "30-60")
	if err != nil || r.Min != 30 || r.Max != 60 {
		t.Fatalf("unexpected range: %+v err=%v", r, err)
	}
	r, err = parseRange("protein", "-40")
	if err != nil || r.Min != 0 || r.Max != 40 {
		t.Fatalf("unexpected open range: %+v err=%v", r, err)
	}
	if r, err := parseRange("protein", ""); err != nil || r != nil {
		t.Fatalf("expected nil range for empty input, got %+v err=%v", r, err)
	}
	for _, bad := range []string{"40", "a-b", "60-30"} {
		if _, err := parseRange("protein", bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
