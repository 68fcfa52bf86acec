package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

var reLine = regexp.MustCompile(`:(\d+)$`)

// userMessage turns an error into one short line for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "csvcal") {
				return "Calendar not found (run `kolovorot build`)"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidInput:
			base := "calendar"
			line := ""
			if p := strings.TrimSpace(oe.Path); p != "" {
				line = extractLine(p)
				base = filepath.Base(strings.TrimSuffix(p, ":"+line))
			}
			if line != "" {
				return "Malformed row in " + base + " line " + line
			}
			return "Malformed " + base

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func extractLine(path string) string {
	m := reLine.FindStringSubmatch(path)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
