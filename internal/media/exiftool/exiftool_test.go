package exiftool

import (
	"bytes"
	"context"
	"testing"
)

const sampleJSON = `[{
  "SourceFile": "EXAMPLE.MOV",
  "Camera Model Name": "Canon EOS R5",
  "Focal Length": "80.0 mm",
  "ISO": 100,
  "Aperture": 5.6,
  "Video Frame Rate": 29.97,
  "Self Timer": false,
  "Keywords": ["travel", "2019"],
  "Composite": {"ignored": true}
}]`

func TestParseStringifiesScalars(t *testing.T) {
	result, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	cases := map[string]string{
		"Camera Model Name": "Canon EOS R5",
		"Focal Length":      "80.0 mm",
		"ISO":               "100",
		"Aperture":          "5.6",
		"Video Frame Rate":  "29.97",
		"Self Timer":        "false",
		"Keywords":          "travel, 2019",
	}
	for key, want := range cases {
		if got := result.Fields[key]; got != want {
			t.Fatalf("field %q: got %q want %q", key, got, want)
		}
	}
	if _, ok := result.Fields["Composite"]; ok {
		t.Fatal("nested objects should be skipped")
	}
	if !bytes.Equal(result.RawJSON(), []byte(sampleJSON)) {
		t.Fatal("RawJSON should round-trip the captured payload")
	}
}

func TestParseEmptyArray(t *testing.T) {
	result, err := Parse([]byte(`[]`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(result.Fields) != 0 {
		t.Fatalf("expected empty mapping, got %#v", result.Fields)
	}

	if _, err := Parse([]byte(`{"not":"an array"}`)); err == nil {
		t.Fatal("expected parse error for non-array payload")
	}
}

func TestExtractRejectsEmptyPath(t *testing.T) {
	if _, err := Extract(context.Background(), "exiftool", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
