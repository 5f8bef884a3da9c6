package mediainfo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"minfo/internal/mediainfo"
	"minfo/internal/metadata"
	"minfo/internal/probecache"
	"minfo/internal/testsupport"
)

const exifPayload = `[{"SourceFile":"EXAMPLE.MOV","Focal Length":"80.0 mm","ISO":100,"Focus Mode":"Manual"}]`

const probePayload = `{
  "streams": [{"codec_name":"h264","codec_type":"video","width":1280,"height":720,"r_frame_rate":"30000/1001"}],
  "format": {"filename":"EXAMPLE.MOV","duration":"10.020000"}
}`

func TestLoadRunsBothTools(t *testing.T) {
	dir := t.TempDir()
	exifStub := testsupport.StubTool(t, dir, "exiftool", exifPayload)
	probeStub := testsupport.StubTool(t, dir, "ffprobe", probePayload)
	media := testsupport.MediaFile(t, dir, "EXAMPLE.MOV")

	info, err := mediainfo.Load(context.Background(), mediainfo.Options{
		FFprobeBinary:  probeStub,
		ExiftoolBinary: exifStub,
	}, media)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	value, ok := info.FocalLength()
	if !ok || value.String() != "80.0 mm" {
		t.Fatalf("unexpected focal length: %q found=%v", value, ok)
	}
	value, ok = info.ISO()
	if !ok {
		t.Fatal("expected iso to resolve")
	}
	if num, numeric := value.Float(); !numeric || num != 100 {
		t.Fatalf("unexpected iso: %q", value)
	}
	value, ok = info.Resolution()
	if !ok || value.String() != "1280x720" {
		t.Fatalf("unexpected resolution: %q found=%v", value, ok)
	}
	value, ok = info.Codec()
	if !ok || value.String() != "h264" {
		t.Fatalf("unexpected codec: %q found=%v", value, ok)
	}
	if _, ok := info.CameraLens(); ok {
		t.Fatal("expected camera_lens to be absent")
	}

	if raw, ok := info.LookupKey("Focus Mode"); !ok || raw != "Manual" {
		t.Fatalf("unexpected Focus Mode lookup: %q found=%v", raw, ok)
	}
	if raw, ok := info.LookupKey("r_frame_rate"); !ok || raw != "30000/1001" {
		t.Fatalf("unexpected r_frame_rate lookup: %q found=%v", raw, ok)
	}
}

func TestLoadUsesCacheOnSecondInspection(t *testing.T) {
	dir := t.TempDir()
	exifStub := testsupport.StubTool(t, dir, "exiftool", exifPayload)
	probeStub := testsupport.StubTool(t, dir, "ffprobe", probePayload)
	media := testsupport.MediaFile(t, dir, "EXAMPLE.MOV")

	cache, err := probecache.Open(filepath.Join(dir, "probecache.db"), nil)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	opts := mediainfo.Options{
		FFprobeBinary:  probeStub,
		ExiftoolBinary: exifStub,
		Cache:          cache,
	}

	if _, err := mediainfo.Load(context.Background(), opts, media); err != nil {
		t.Fatalf("first Load returned error: %v", err)
	}
	if calls := testsupport.ToolCalls(t, exifStub); calls != 1 {
		t.Fatalf("expected one exiftool call, got %d", calls)
	}

	info, err := mediainfo.Load(context.Background(), opts, media)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if calls := testsupport.ToolCalls(t, exifStub); calls != 1 {
		t.Fatalf("expected cache to skip exiftool, got %d calls", calls)
	}
	if calls := testsupport.ToolCalls(t, probeStub); calls != 1 {
		t.Fatalf("expected cache to skip ffprobe, got %d calls", calls)
	}
	if value, ok := info.FocalLength(); !ok || value.String() != "80.0 mm" {
		t.Fatalf("cached session lost data: %q found=%v", value, ok)
	}

	// A modified file invalidates the entry.
	if err := os.WriteFile(media, []byte("different bytes entirely"), 0o644); err != nil {
		t.Fatalf("rewrite media file: %v", err)
	}
	if _, err := mediainfo.Load(context.Background(), opts, media); err != nil {
		t.Fatalf("third Load returned error: %v", err)
	}
	if calls := testsupport.ToolCalls(t, exifStub); calls != 2 {
		t.Fatalf("expected stale entry to re-run exiftool, got %d calls", calls)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := mediainfo.Load(context.Background(), mediainfo.Options{}, filepath.Join(t.TempDir(), "missing.mov"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSurfacesToolFailure(t *testing.T) {
	dir := t.TempDir()
	media := testsupport.MediaFile(t, dir, "EXAMPLE.MOV")

	_, err := mediainfo.Load(context.Background(), mediainfo.Options{
		FFprobeBinary:  "clearly-not-present-binary",
		ExiftoolBinary: "clearly-not-present-binary",
	}, media)
	if err == nil {
		t.Fatal("expected error when tools are missing")
	}
}

func TestNewFromMappings(t *testing.T) {
	info := mediainfo.New("EXAMPLE.MOV",
		metadata.Fields{"Duration": "10.02 s"},
		[]metadata.Fields{{"duration": "10.020000"}},
		metadata.Fields{"format_name": "mov"})

	value, ok := info.Duration()
	if !ok {
		t.Fatal("expected duration to resolve")
	}
	if num, numeric := value.Float(); !numeric || num != 10.02 {
		t.Fatalf("unexpected duration: %q", value)
	}

	value, ok, err := info.Resolve(metadata.PropertyFrameRate)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected frame_rate absent, got %q", value)
	}
}
