package content

import (
	"regexp"
	"strings"
)

// markerReplacer strips the selection-tag markers left behind by the content editor.
var markerReplacer = strings.NewReplacer("<selection-tag>", "", "</selection-tag>", "")

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)

// CleanLabel returns the label with editor markers removed.
func CleanLabel(label string) string {
	return markerReplacer.Replace(label)
}

// Slugify converts a display label into a string usable both as a URL path
// segment and as a DOM element id.
func Slugify(label string) string {
	s := strings.ToLower(CleanLabel(label))
	s = strings.ReplaceAll(s, " & ", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return nonSlugChars.ReplaceAllString(s, "")
}
