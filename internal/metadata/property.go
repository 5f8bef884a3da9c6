package metadata

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Property identifies a logical, tool-agnostic media property.
type Property string

// Known logical properties. Each maps to an ordered list of lookup rules in
// rules.go; Resolution is composite and handled separately.
const (
	PropertyCameraModel  Property = "camera_model"
	PropertyCameraLens   Property = "camera_lens"
	PropertyAperture     Property = "aperture"
	PropertyFocalLength  Property = "focal_length"
	PropertyISO          Property = "iso"
	PropertyShutterSpeed Property = "shutter_speed"
	PropertyColorTemp    Property = "color_temp"
	PropertyWhiteBalance Property = "white_balance"
	PropertyFrameRate    Property = "frame_rate"
	PropertyDuration     Property = "duration"
	PropertyResolution   Property = "resolution"
	PropertyCodec        Property = "codec"
)

// ErrUnknownProperty reports a request for a property name that is not in
// the rule table. It is distinct from a known property that simply has no
// value in a given file.
var ErrUnknownProperty = errors.New("unknown property")

// ParseProperty maps user input to a known Property. Input is trimmed and
// lowercased; "fps" is accepted as an alias for frame_rate.
func ParseProperty(name string) (Property, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "fps" {
		return PropertyFrameRate, nil
	}
	p := Property(cleaned)
	if !p.known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return p, nil
}

func (p Property) known() bool {
	if p == PropertyResolution {
		return true
	}
	_, ok := rules[p]
	return ok
}

// String returns the canonical property name.
func (p Property) String() string {
	return string(p)
}

// Properties returns every known logical property in sorted order.
func Properties() []Property {
	props := make([]Property, 0, len(rules)+1)
	for p := range rules {
		props = append(props, p)
	}
	props = append(props, PropertyResolution)
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}

// Sources describes the lookup attempts for a property in declaration order,
// one "source:key" entry per attempt. Used by the CLI property listing.
func Sources(p Property) []string {
	if p == PropertyResolution {
		described := make([]string, 0, len(widthRules)+len(heightRules))
		for _, r := range widthRules {
			described = append(described, r.describe())
		}
		for _, r := range heightRules {
			described = append(described, r.describe())
		}
		return described
	}
	attempts, ok := rules[p]
	if !ok {
		return nil
	}
	described := make([]string, 0, len(attempts))
	for _, r := range attempts {
		described = append(described, r.describe())
	}
	return described
}
