package validate

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	reDots     = regexp.MustCompile(`^[.-]+`)
)

// ID parses a positive integer resource id (product/category).
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Username trims and bounds a login name.
func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Filename reduces an uploaded filename to a safe basename: spaces become
// underscores, anything outside [A-Za-z0-9_.-] is dropped, leading dots and
// dashes are stripped. Returns "" when nothing usable remains.
func Filename(s string) string {
	s = filepath.Base(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = reFilename.ReplaceAllString(s, "")
	s = reDots.ReplaceAllString(s, "")
	if s == "" || s == "." || s == ".." {
		return ""
	}
	return s
}
