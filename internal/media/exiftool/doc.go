// Package exiftool provides a typed wrapper around exiftool JSON output.
//
// Primary entry points:
//   - Extract: executes exiftool and returns the parsed tag mapping
//   - Parse: decodes previously captured exiftool JSON (cache replay)
//
// exiftool emits a JSON array with one object per input file; this wrapper
// runs one file at a time and stringifies the first object's scalar values
// so downstream property resolution sees a flat key/value mapping. List
// values (keywords and similar) are joined with ", ".
package exiftool
