package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "charts")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{
		"run", "--p", "0.3", "--n", "10", "--trials", "5", "--seed", "8",
		"--config", filepath.Join(dir, "missing.yaml"), "--out", out,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"Expected: 3.00", "Variance: 2.10", "Seed: 8"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output misses %q:\n%s", want, got)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "overlay.png")); err != nil {
		t.Fatalf("overlay chart: %v", err)
	}
}

func TestRunCmd_InvalidBias(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--p", "2", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for p=2")
	}
}
