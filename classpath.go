package rubygoals

import (
	"regexp"
	"strings"
)

var driveLetter = regexp.MustCompile(`^[a-z]:`)

// NormalizeClasspathElement turns path into the form used inside file://
// URLs: forward slashes, an upper-case drive letter and a trailing slash for
// anything that is not a jar.
func NormalizeClasspathElement(path string) string {
	normalized := strings.ReplaceAll(path, `\`, "/")

	if driveLetter.MatchString(normalized) {
		normalized = strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	if !strings.HasSuffix(normalized, "jar") && !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}

	return normalized
}
