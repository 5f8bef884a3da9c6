// Package testsupport provides shared helpers for tests that need stub
// probing tools or a throwaway configuration.
package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"minfo/internal/config"
)

// NewConfig produces a config seeded with a unique temp cache path per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.ProbeCache.Path = filepath.Join(base, "probecache.db")
	return &cfg
}

// StubTool writes an executable that prints the given payload on stdout and
// records each invocation in "<path>.calls". Returns the stub path.
func StubTool(t testing.TB, dir, name, payload string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho run >> \"$0.calls\"\ncat <<'EOF'\n" + payload + "\nEOF\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// ToolCalls counts how many times a StubTool executable has run.
func ToolCalls(t testing.TB, stub string) int {
	t.Helper()
	data, err := os.ReadFile(stub + ".calls")
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("read call log for %s: %v", stub, err)
	}
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	return count
}

// MediaFile writes a placeholder media file and returns its path.
func MediaFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("placeholder media payload"), 0o644); err != nil {
		t.Fatalf("write media file %s: %v", name, err)
	}
	return path
}
