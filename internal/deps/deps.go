package deps

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Requirement defines an external dependency minfo relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the tool set minfo needs, using the configured
// binary for each.
func Requirements(ffprobeBinary, exiftoolBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "ffprobe",
			Command:     ffprobeBinary,
			Description: "media stream prober (part of FFmpeg)",
		},
		{
			Name:        "exiftool",
			Command:     exiftoolBinary,
			Description: "EXIF metadata extractor",
		},
	}
}

// Check evaluates the provided requirements and reports availability. An
// absolute command path is checked directly; bare names are resolved on
// PATH, and the resolved location is recorded in Detail.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		if !filepath.IsAbs(cmd) {
			status.Detail = resolved
		}
		results = append(results, status)
	}
	return results
}

// AllAvailable reports whether every status in the slice is available.
func AllAvailable(statuses []Status) bool {
	for _, status := range statuses {
		if !status.Available {
			return false
		}
	}
	return true
}
