package mediainfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"minfo/internal/logging"
	"minfo/internal/media/exiftool"
	"minfo/internal/media/ffprobe"
	"minfo/internal/metadata"
	"minfo/internal/probecache"
)

// Options controls how Load invokes the external tools.
type Options struct {
	FFprobeBinary  string
	ExiftoolBinary string
	// Timeout bounds each tool invocation; zero means no bound beyond ctx.
	Timeout time.Duration
	// Cache, when non-nil, short-circuits tool invocation for unchanged files.
	Cache  *probecache.Cache
	Logger *slog.Logger
}

// Info is one media file's metadata session.
type Info struct {
	Path    string
	Exif    metadata.Fields
	Streams []metadata.Fields
	Format  metadata.Fields

	resolver *metadata.Resolver
}

// New builds an Info from already-parsed mappings. The mappings are held by
// reference and must not be mutated while the Info is in use.
func New(path string, exif metadata.Fields, streams []metadata.Fields, format metadata.Fields) *Info {
	if exif == nil {
		exif = metadata.Fields{}
	}
	return &Info{
		Path:    path,
		Exif:    exif,
		Streams: streams,
		Format:  format,
		resolver: metadata.NewResolver(metadata.RawMetadata{
			Exif:    exif,
			Streams: streams,
		}),
	}
}

// Load inspects the file at path with both tools and returns its metadata
// session. Tool failures are surfaced; Load never fabricates partial data.
func Load(ctx context.Context, opts Options, path string) (*Info, error) {
	logger := logging.NewComponentLogger(opts.Logger, "mediainfo")

	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %q: %w", path, err)
	}
	stat, err := os.Stat(absolute)
	if err != nil {
		return nil, fmt.Errorf("inspect path %q: %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("inspect path %q: is a directory", path)
	}

	if opts.Cache != nil {
		entry, found, lookupErr := opts.Cache.Lookup(ctx, absolute, stat.Size(), stat.ModTime())
		if lookupErr != nil {
			logger.Warn("cache lookup failed",
				logging.String(logging.FieldPath, absolute),
				logging.Error(lookupErr))
		} else if found {
			info, replayErr := replay(absolute, entry)
			if replayErr == nil {
				logger.Debug("cache hit", logging.String(logging.FieldPath, absolute))
				return info, nil
			}
			logger.Warn("discarding unreadable cache entry",
				logging.String(logging.FieldPath, absolute),
				logging.Error(replayErr))
		}
	}

	toolCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		toolCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	exifResult, err := exiftool.Extract(toolCtx, opts.ExiftoolBinary, absolute)
	if err != nil {
		return nil, err
	}
	probeDoc, err := ffprobe.Inspect(toolCtx, opts.FFprobeBinary, absolute)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		storeErr := opts.Cache.Store(ctx, probecache.Entry{
			Path:      absolute,
			Size:      stat.Size(),
			ModTime:   stat.ModTime(),
			ExifJSON:  exifResult.RawJSON(),
			ProbeJSON: probeDoc.RawJSON(),
		})
		if storeErr != nil {
			logger.Warn("cache store failed",
				logging.String(logging.FieldPath, absolute),
				logging.Error(storeErr))
		}
	}

	return fromTools(absolute, exifResult, probeDoc), nil
}

func replay(path string, entry probecache.Entry) (*Info, error) {
	exifResult, err := exiftool.Parse(entry.ExifJSON)
	if err != nil {
		return nil, err
	}
	probeDoc, err := ffprobe.Parse(entry.ProbeJSON)
	if err != nil {
		return nil, err
	}
	return fromTools(path, exifResult, probeDoc), nil
}

func fromTools(path string, exifResult exiftool.Result, probeDoc ffprobe.Document) *Info {
	return New(path, exifResult.Fields, probeDoc.Streams, probeDoc.Format)
}

// Resolve answers one logical property lookup for this file.
func (i *Info) Resolve(p metadata.Property) (metadata.Value, bool, error) {
	return i.resolver.Resolve(p)
}

// LookupKey performs the raw shorthand lookup: exif first, then the first
// stream, no transform.
func (i *Info) LookupKey(key string) (string, bool) {
	return i.resolver.LookupKey(key)
}

// Named accessors mirror the enumerated property set so call sites keep the
// attribute-style shape without reflection. Resolution errors are impossible
// for known properties and are discarded.

func (i *Info) CameraModel() (metadata.Value, bool)  { return i.known(metadata.PropertyCameraModel) }
func (i *Info) CameraLens() (metadata.Value, bool)   { return i.known(metadata.PropertyCameraLens) }
func (i *Info) Aperture() (metadata.Value, bool)     { return i.known(metadata.PropertyAperture) }
func (i *Info) FocalLength() (metadata.Value, bool)  { return i.known(metadata.PropertyFocalLength) }
func (i *Info) ISO() (metadata.Value, bool)          { return i.known(metadata.PropertyISO) }
func (i *Info) ShutterSpeed() (metadata.Value, bool) { return i.known(metadata.PropertyShutterSpeed) }
func (i *Info) ColorTemp() (metadata.Value, bool)    { return i.known(metadata.PropertyColorTemp) }
func (i *Info) WhiteBalance() (metadata.Value, bool) { return i.known(metadata.PropertyWhiteBalance) }
func (i *Info) FrameRate() (metadata.Value, bool)    { return i.known(metadata.PropertyFrameRate) }
func (i *Info) Duration() (metadata.Value, bool)     { return i.known(metadata.PropertyDuration) }
func (i *Info) Resolution() (metadata.Value, bool)   { return i.known(metadata.PropertyResolution) }
func (i *Info) Codec() (metadata.Value, bool)        { return i.known(metadata.PropertyCodec) }

func (i *Info) known(p metadata.Property) (metadata.Value, bool) {
	value, ok, _ := i.resolver.Resolve(p)
	return value, ok
}
