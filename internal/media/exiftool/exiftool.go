package exiftool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output of one exiftool invocation.
type Result struct {
	Fields map[string]string
	raw    []byte
}

// Extract executes exiftool against the provided path and decodes the JSON
// response.
func Extract(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("exiftool extract: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-j", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("exiftool extract: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return Parse(output)
}

// Parse decodes raw exiftool JSON into a Result. An empty array yields an
// empty mapping rather than an error; files without tags are legitimate.
func Parse(data []byte) (Result, error) {
	var objects []map[string]any
	if err := json.Unmarshal(data, &objects); err != nil {
		return Result{}, fmt.Errorf("exiftool parse: %w", err)
	}

	result := Result{
		Fields: map[string]string{},
		raw:    append([]byte(nil), data...),
	}
	if len(objects) == 0 {
		return result, nil
	}
	for key, value := range objects[0] {
		if scalar, ok := stringify(value); ok {
			result.Fields[key] = scalar
		}
	}
	return result, nil
}

// RawJSON returns the raw exiftool JSON payload.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			scalar, ok := stringify(item)
			if !ok {
				return "", false
			}
			parts = append(parts, scalar)
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}
