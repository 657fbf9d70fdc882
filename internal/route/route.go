// Package route maps categories and topics to site URLs.
//
// URLs have the form /{category}/{slug} where the category segment is the
// lowercased category key and the slug is the topic's slug.
package route

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Segment returns the path segment for a category key.
func Segment(category string) string {
	// Casers carry state; build one per call so handlers can run concurrently.
	return cases.Lower(language.Und).String(category)
}

// CategoryPath returns /{category}.
func CategoryPath(category string) string {
	return "/" + Segment(category)
}

// TopicPath returns /{category}/{slug}.
func TopicPath(category, slug string) string {
	return CategoryPath(category) + "/" + slug
}

// Resolve finds the category key whose segment equals seg.
func Resolve(names []string, seg string) (string, bool) {
	seg = strings.Trim(seg, "/")
	if seg == "" {
		return "", false
	}
	for _, name := range names {
		if Segment(name) == seg {
			return name, true
		}
	}
	return "", false
}

// DisplayName turns an unresolved path segment into a readable name for the
// not-found view.
func DisplayName(seg string) string {
	seg = strings.Trim(seg, "/")
	return cases.Title(language.Und).String(strings.ReplaceAll(seg, "-", " "))
}
