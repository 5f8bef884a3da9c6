// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no minfo-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Document: parsed ffprobe output with per-stream and format mappings
//     flattened to string key/value pairs
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Document
//   - Parse: decodes previously captured ffprobe JSON (cache replay)
//
// Scalar JSON values are stringified so downstream property resolution can
// treat prober output and exif output uniformly; nested "tags" and
// "disposition" objects are flattened with a prefixed key.
package ffprobe
