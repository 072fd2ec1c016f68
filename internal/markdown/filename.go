package markdown

import (
	"regexp"
	"strings"
)

const maxFilenameLen = 50

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SafeName lower-cases title, collapses every run of non-alphanumerics to a
// hyphen, trims one leading and one trailing hyphen and truncates to 50
// characters. Truncation may leave a trailing hyphen.
func SafeName(title string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, "-")
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	return s
}

// Filename is the export file name for an entity titled title.
func Filename(title string) string {
	return SafeName(title) + ".md"
}
