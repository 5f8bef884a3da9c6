// Package probecache persists raw tool output so repeated inspections of
// unchanged media files skip the external ffprobe and exiftool processes.
//
// Entries are keyed by absolute path and validated against file size and
// modification time; a file that changed on disk is a cache miss and its
// entry is overwritten on the next store. Storage is a single-table SQLite
// database at a configurable path.
//
// The cache is optional: it is only wired in when enabled in configuration,
// and every operation degrades to a miss rather than failing inspection.
package probecache
