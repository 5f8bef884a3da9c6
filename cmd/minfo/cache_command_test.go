package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minfo/internal/testsupport"
)

func writeCachingConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[probe_cache]\nenabled = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCacheListEmpty(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "cache", "list")
	if err != nil {
		t.Fatalf("cache list returned error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Probe cache is empty") {
		t.Fatalf("expected empty-cache notice:\n%s", out)
	}
}

func TestCacheListAndClearAfterInspect(t *testing.T) {
	isolateHome(t)
	cfgPath := writeCachingConfig(t)
	dir := t.TempDir()
	exifStub := testsupport.StubTool(t, dir, "exiftool", exifPayload)
	probeStub := testsupport.StubTool(t, dir, "ffprobe", probePayload)
	media := testsupport.MediaFile(t, dir, "EXAMPLE.MOV")

	out, err := runCommand(t,
		"--config", cfgPath,
		"inspect", "--ffprobe", probeStub, "--exiftool", exifStub,
		"-p", "codec",
		media,
	)
	if err != nil {
		t.Fatalf("inspect returned error: %v\noutput: %s", err, out)
	}

	out, err = runCommand(t, "--config", cfgPath, "cache", "list")
	if err != nil {
		t.Fatalf("cache list returned error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, media) {
		t.Fatalf("expected cached entry for %s:\n%s", media, out)
	}

	out, err = runCommand(t, "--config", cfgPath, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear returned error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Probe cache cleared") {
		t.Fatalf("expected clear confirmation:\n%s", out)
	}

	out, err = runCommand(t, "--config", cfgPath, "cache", "list")
	if err != nil {
		t.Fatalf("cache list returned error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Probe cache is empty") {
		t.Fatalf("expected empty cache after clear:\n%s", out)
	}
}

func TestCacheListJSON(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "cache", "list", "--json")
	if err != nil {
		t.Fatalf("cache list --json returned error: %v\noutput: %s", err, out)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty JSON array, got:\n%s", out)
	}
}
