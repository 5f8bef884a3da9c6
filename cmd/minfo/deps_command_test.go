package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDepsCommandReportsAvailableTools(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}
	isolateHome(t)

	binDir := t.TempDir()
	for _, name := range []string{"ffprobe", "exiftool"} {
		stub := filepath.Join(binDir, name)
		if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir)

	out, err := runCommand(t, "deps")
	if err != nil {
		t.Fatalf("deps returned error: %v\noutput: %s", err, out)
	}
	for _, want := range []string{"ffprobe", "exiftool", "yes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDepsCommandFailsWhenToolsMissing(t *testing.T) {
	isolateHome(t)
	t.Setenv("PATH", t.TempDir())

	out, err := runCommand(t, "deps")
	if err == nil {
		t.Fatalf("expected error for missing tools, got output:\n%s", out)
	}
	if !strings.Contains(err.Error(), "required tools are missing") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no") {
		t.Fatalf("expected table to mark tools unavailable:\n%s", out)
	}
}
