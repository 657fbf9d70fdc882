package content

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCategory is returned when two categories share a name.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrEmptySlug is returned when a topic label slugifies to nothing.
	ErrEmptySlug = errors.New("topic label produces an empty slug")
	// ErrDuplicateSlug is returned when two topics of one category share a slug.
	// Anchors and sidebar links would otherwise be ambiguous.
	ErrDuplicateSlug = errors.New("duplicate topic slug")
	// ErrUnknownIcon is returned for icon names the site cannot draw.
	ErrUnknownIcon = errors.New("unknown icon")
	// ErrReservedSlug is returned when a topic slug collides with an element id
	// the page layout already uses.
	ErrReservedSlug = errors.New("topic slug is reserved")
)

// ReservedSlugs are the element ids of the page chrome around topic anchors.
var ReservedSlugs = map[string]bool{
	"navbar":      true,
	"menu-toggle": true,
	"nav-menu":    true,
	"toc":         true,
}

// Directory is the immutable category -> topic map behind the site.
type Directory struct {
	categories []Category
	byName     map[string]int
}

// NewDirectory validates the categories and builds a Directory. Category
// order is preserved; it drives the navigation menu.
func NewDirectory(categories ...Category) (*Directory, error) {
	d := &Directory{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category name is required")
		}
		if _, ok := d.byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		if err := validateCategory(c); err != nil {
			return nil, err
		}
		d.byName[c.Name] = len(d.categories)
		d.categories = append(d.categories, copyCategory(c))
	}
	return d, nil
}

func validateCategory(c Category) error {
	seen := make(map[string]string)
	for _, group := range c.Groups {
		for _, t := range group {
			slug := Slugify(t.Label)
			if slug == "" {
				return fmt.Errorf("%s: %w: %q", c.Name, ErrEmptySlug, t.Label)
			}
			if ReservedSlugs[slug] {
				return fmt.Errorf("%s: %w: %q maps to %q", c.Name, ErrReservedSlug, t.Label, slug)
			}
			if prev, ok := seen[slug]; ok {
				return fmt.Errorf("%s: %w: %q and %q both map to %q", c.Name, ErrDuplicateSlug, prev, t.Label, slug)
			}
			seen[slug] = t.Label
			if !t.Icon.Known() {
				return fmt.Errorf("%s/%s: %w %q", c.Name, slug, ErrUnknownIcon, t.Icon)
			}
		}
	}
	return nil
}

// copyCategory deep-copies the group slices so later edits by the caller
// cannot reach into the directory.
func copyCategory(c Category) Category {
	groups := make([][]Topic, len(c.Groups))
	for i, g := range c.Groups {
		groups[i] = append([]Topic(nil), g...)
	}
	c.Groups = groups
	return c
}

// Categories returns the categories in menu order.
func (d *Directory) Categories() []Category {
	out := make([]Category, len(d.categories))
	for i, c := range d.categories {
		out[i] = copyCategory(c)
	}
	return out
}

// Names returns the category keys in menu order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.categories))
	for i, c := range d.categories {
		names[i] = c.Name
	}
	return names
}

// Category looks up a category by its case-sensitive name.
func (d *Directory) Category(name string) (Category, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Category{}, false
	}
	return copyCategory(d.categories[i]), true
}

// Links flattens a category's groups into one ordered list, group by group.
// An unknown category yields an empty list; callers render a not-found view.
func (d *Directory) Links(category string) []Link {
	i, ok := d.byName[category]
	if !ok {
		return nil
	}
	var links []Link
	for _, group := range d.categories[i].Groups {
		for _, t := range group {
			links = append(links, Link{
				Topic:      t,
				CleanLabel: CleanLabel(t.Label),
				Slug:       Slugify(t.Label),
			})
		}
	}
	return links
}

// Slugs returns the anchor ids of a category's topics in page order.
func (d *Directory) Slugs(category string) []string {
	links := d.Links(category)
	slugs := make([]string, len(links))
	for i, l := range links {
		slugs[i] = l.Slug
	}
	return slugs
}

// FirstSlug returns the slug of the category's first topic.
func (d *Directory) FirstSlug(category string) (string, bool) {
	links := d.Links(category)
	if len(links) == 0 {
		return "", false
	}
	return links[0].Slug, true
}

// HasTopic reports whether slug belongs to the category.
func (d *Directory) HasTopic(category, slug string) bool {
	for _, l := range d.Links(category) {
		if l.Slug == slug {
			return true
		}
	}
	return false
}

// WithBodies returns a copy of the directory whose topic bodies are replaced
// according to bodies, keyed by category name then slug.
func (d *Directory) WithBodies(bodies map[string]map[string]string) *Directory {
	out := &Directory{
		categories: make([]Category, len(d.categories)),
		byName:     d.byName,
	}
	for i, c := range d.categories {
		c = copyCategory(c)
		if repl, ok := bodies[c.Name]; ok {
			for _, g := range c.Groups {
				for j := range g {
					if body, ok := repl[Slugify(g[j].Label)]; ok {
						g[j].Body = body
					}
				}
			}
		}
		out.categories[i] = c
	}
	return out
}
