// Package metadata resolves normalized media property names against raw
// metadata mappings produced by external probing tools.
//
// The same logical concept is named differently across EXIF dialects and
// prober output: focal length may arrive as "Focal Length", "FocalLength",
// or a stream tag depending on the camera vendor and the tool that read the
// file. This package owns the declarative rule table that maps each logical
// property to an ordered list of (source, key, transform) attempts and
// returns the first attempt that produces a value.
//
// Key types:
//   - RawMetadata: caller-owned exif and per-stream key/value mappings
//   - Property: enumerated identifier for each known logical property
//   - Resolver: walks the rule table for one RawMetadata instance
//   - Value: tagged result preserving both numeric and display semantics
//
// Resolution is pure: the resolver never mutates RawMetadata and keeps no
// state between calls. A property with no matching key anywhere is a
// legitimate not-found outcome, distinct from asking for a property that
// does not exist at all.
package metadata
