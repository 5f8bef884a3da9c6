package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Document represents the parsed output from an ffprobe inspection. Streams
// are kept in the order ffprobe reports them; index 0 is the shorthand
// lookup target downstream.
type Document struct {
	Streams []map[string]string
	Format  map[string]string
	raw     []byte
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Document, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Document{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error", "-hide_banner",
		"-show_format", "-show_streams", "-show_programs", "-show_chapters",
		"-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Document{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return Parse(output)
}

// Parse decodes raw ffprobe JSON into a Document.
func Parse(data []byte) (Document, error) {
	var payload struct {
		Streams []map[string]json.RawMessage `json:"streams"`
		Format  map[string]json.RawMessage   `json:"format"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return Document{}, fmt.Errorf("ffprobe parse: %w", err)
	}

	doc := Document{
		Format: flattenObject(payload.Format),
		raw:    append([]byte(nil), data...),
	}
	for _, stream := range payload.Streams {
		doc.Streams = append(doc.Streams, flattenObject(stream))
	}
	return doc, nil
}

// RawJSON returns the raw ffprobe JSON payload.
func (d Document) RawJSON() []byte {
	return append([]byte(nil), d.raw...)
}

// FirstStream returns the first stream mapping, or nil when the container
// has no streams.
func (d Document) FirstStream() map[string]string {
	if len(d.Streams) == 0 {
		return nil
	}
	return d.Streams[0]
}

// StreamCount returns the number of streams with the given codec_type
// ("video", "audio", "subtitle").
func (d Document) StreamCount(codecType string) int {
	count := 0
	for _, stream := range d.Streams {
		if strings.EqualFold(stream["codec_type"], codecType) {
			count++
		}
	}
	return count
}

// DurationSeconds returns the container duration in seconds, or 0 when
// unavailable or unparseable.
func (d Document) DurationSeconds() float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(d.Format["duration"]), 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// flattenObject stringifies one level of a decoded JSON object. Nested
// objects such as "tags" and "disposition" contribute prefixed keys
// ("tags:creation_time"); arrays are ignored.
func flattenObject(object map[string]json.RawMessage) map[string]string {
	if len(object) == 0 {
		return map[string]string{}
	}
	fields := make(map[string]string, len(object))
	for key, rawValue := range object {
		var decoded any
		if err := json.Unmarshal(rawValue, &decoded); err != nil {
			continue
		}
		switch value := decoded.(type) {
		case map[string]any:
			for nestedKey, nestedValue := range value {
				if scalar, ok := stringifyScalar(nestedValue); ok {
					fields[key+":"+nestedKey] = scalar
				}
			}
		default:
			if scalar, ok := stringifyScalar(decoded); ok {
				fields[key] = scalar
			}
		}
	}
	return fields
}

func stringifyScalar(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
