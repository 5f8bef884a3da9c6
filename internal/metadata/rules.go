package metadata

type lookupSource int

const (
	fromExif lookupSource = iota
	fromStream
)

type transform int

const (
	// convNone passes the source string through unchanged.
	convNone transform = iota
	// convFloat parses the source string as a float; unparseable values are
	// treated as a per-attempt miss.
	convFloat
	// convInt parses the source string as an integer; unparseable values are
	// a per-attempt miss.
	convInt
	// convSeconds strips a trailing "s" before float parsing, matching
	// exiftool duration strings such as "10.02 s".
	convSeconds
)

// rule describes one lookup attempt: which mapping to probe, the exact key
// to probe it with, and the transform applied to a hit. Rules are static
// data compiled into the binary and never mutated.
type rule struct {
	source lookupSource
	key    string
	conv   transform
	unit   string
}

func (r rule) describe() string {
	switch r.source {
	case fromStream:
		return "stream:" + r.key
	default:
		return "exif:" + r.key
	}
}

// rules is the per-property lookup table. Attempt order is deliberate and
// vendor-specific; exif wins over prober output for camera settings, and
// the prober fills in container-level facts exiftool does not report.
// Reordering entries changes resolved values for real camera files.
var rules = map[Property][]rule{
	PropertyCameraModel: {
		{source: fromExif, key: "Camera Model Name"},
	},
	PropertyCameraLens: {
		{source: fromExif, key: "Lens Type"},
	},
	PropertyAperture: {
		{source: fromExif, key: "Aperture", conv: convFloat},
	},
	PropertyFocalLength: {
		{source: fromExif, key: "Focal Length"},
		{source: fromExif, key: "FocalLength"},
	},
	PropertyISO: {
		{source: fromExif, key: "ISO", conv: convFloat},
	},
	PropertyShutterSpeed: {
		{source: fromExif, key: "Shutter Speed"},
	},
	PropertyColorTemp: {
		{source: fromExif, key: "Color Temp Kelvin", conv: convFloat},
	},
	PropertyWhiteBalance: {
		{source: fromExif, key: "White Balance"},
	},
	PropertyFrameRate: {
		{source: fromExif, key: "Video Frame Rate", conv: convFloat},
		// Rationals like "30000/1001" or the audio-only "0/0" pass through.
		{source: fromStream, key: "r_frame_rate"},
	},
	PropertyDuration: {
		{source: fromExif, key: "Duration", conv: convSeconds, unit: "s"},
		{source: fromStream, key: "duration", conv: convFloat, unit: "s"},
	},
	PropertyCodec: {
		{source: fromStream, key: "codec_name"},
	},
}

// Resolution is a composite of two independent axis lookups.
var (
	widthRules = []rule{
		{source: fromExif, key: "Source Image Width", conv: convInt},
		{source: fromStream, key: "width", conv: convInt},
	}
	heightRules = []rule{
		{source: fromExif, key: "Source Image Height", conv: convInt},
		{source: fromStream, key: "height", conv: convInt},
	}
)
