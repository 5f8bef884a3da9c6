// Package deps reports the availability of the external binaries minfo
// shells out to. Inspection cannot work without ffprobe and exiftool, so the
// CLI exposes these checks directly instead of failing mid-run with an
// exec error.
package deps
