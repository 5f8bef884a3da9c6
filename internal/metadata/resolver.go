package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is one flat key/value mapping from a probing tool.
type Fields = map[string]string

// RawMetadata holds the already-parsed output of the two probing tools for
// a single media file. The resolver holds it by reference and never writes
// to it; ownership stays with the caller.
type RawMetadata struct {
	Exif    Fields
	Streams []Fields
}

// Resolver answers logical property lookups against one RawMetadata
// instance. It is stateless beyond the reference it wraps; concurrent reads
// are safe as long as the caller does not mutate the source mappings.
type Resolver struct {
	raw RawMetadata
}

// NewResolver wraps raw metadata for property resolution.
func NewResolver(raw RawMetadata) *Resolver {
	return &Resolver{raw: raw}
}

// Resolve looks up a logical property. The boolean reports whether any rule
// attempt produced a value; a false return with a nil error means the file
// simply did not record the property. Unknown properties return
// ErrUnknownProperty.
func (r *Resolver) Resolve(p Property) (Value, bool, error) {
	if p == PropertyResolution {
		value, ok := r.resolveResolution()
		return value, ok, nil
	}

	attempts, known := rules[p]
	if !known {
		return Value{}, false, fmt.Errorf("%w: %q", ErrUnknownProperty, string(p))
	}

	for _, attempt := range attempts {
		raw, ok := r.source(attempt.source)[attempt.key]
		if !ok {
			continue
		}
		value, ok := applyTransform(attempt, raw)
		if !ok {
			// Unparseable numeric, e.g. "n/a"; fall through to the next rule.
			continue
		}
		return value, true, nil
	}
	return Value{}, false, nil
}

// LookupKey performs the shorthand raw-key lookup: exif first, then the
// first stream, exact match, no transform.
func (r *Resolver) LookupKey(key string) (string, bool) {
	if value, ok := r.raw.Exif[key]; ok {
		return value, true
	}
	if len(r.raw.Streams) > 0 {
		if value, ok := r.raw.Streams[0][key]; ok {
			return value, true
		}
	}
	return "", false
}

func (r *Resolver) resolveResolution() (Value, bool) {
	width, wok := r.resolveAxis(widthRules)
	height, hok := r.resolveAxis(heightRules)
	if !wok || !hok {
		return Value{}, false
	}
	return resolutionValue(width, height), true
}

func (r *Resolver) resolveAxis(attempts []rule) (int, bool) {
	for _, attempt := range attempts {
		raw, ok := r.source(attempt.source)[attempt.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		return parsed, true
	}
	return 0, false
}

func (r *Resolver) source(src lookupSource) Fields {
	if src == fromStream {
		if len(r.raw.Streams) == 0 {
			return nil
		}
		return r.raw.Streams[0]
	}
	return r.raw.Exif
}

func applyTransform(attempt rule, raw string) (Value, bool) {
	switch attempt.conv {
	case convFloat:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, false
		}
		return numberValue(parsed, attempt.unit), true
	case convInt:
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, false
		}
		return numberValue(float64(parsed), attempt.unit), true
	case convSeconds:
		cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "s"))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Value{}, false
		}
		return numberValue(parsed, attempt.unit), true
	default:
		return stringValue(raw), true
	}
}
