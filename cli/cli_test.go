package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunScriptFile(t *testing.T) {
	script := filepath.Join(t.TempDir(), "square.yex")
	if err := os.WriteFile(script, []byte("(fn n = n * n)(20)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(t.Context(), func(int) {}, script); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunScriptErrors(t *testing.T) {
	script := filepath.Join(t.TempDir(), "broken.yex")
	if err := os.WriteFile(script, []byte("let x = in 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(t.Context(), func(int) {}, script); err == nil {
		t.Fatal("Run() error = nil, want syntax error")
	}
}

func TestRunVersion(t *testing.T) {
	if err := Run(t.Context(), func(int) {}, "version"); err != nil {
		t.Fatalf("Run(version) error = %v", err)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	if err := Run(t.Context(), func(int) {}, "--no-such-flag"); err == nil {
		t.Fatal("Run() error = nil, want usage error")
	}
}
