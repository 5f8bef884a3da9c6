package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultFFprobeBinary  = "ffprobe"
	defaultExiftoolBinary = "exiftool"
	defaultToolTimeout    = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFprobeBinary:  defaultFFprobeBinary,
			ExiftoolBinary: defaultExiftoolBinary,
			TimeoutSeconds: defaultToolTimeout,
		},
		ProbeCache: ProbeCache{
			Enabled: false,
			Path:    defaultProbeCachePath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultProbeCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "minfo", "probecache.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/minfo/probecache.db"
	}
	return filepath.Join(home, ".cache", "minfo", "probecache.db")
}
