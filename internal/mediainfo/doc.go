// Package mediainfo builds queryable metadata sessions for media files.
//
// Load runs both external tools (exiftool for embedded tags, ffprobe for
// stream and container properties) against one file and wraps their parsed
// output in an Info value that answers logical property lookups through
// internal/metadata. New builds the same session from already-materialized
// mappings, which is how cached tool output is replayed and how tests avoid
// external processes.
//
// Each Info is independent: one per file, no shared state, no invalidation.
package mediainfo
