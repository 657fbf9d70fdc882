package content

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a content file.
type file struct {
	Categories []Category `yaml:"categories"`
}

// LoadFile reads a YAML content file and validates it into a Directory.
func LoadFile(p string) (*Directory, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", p, err)
	}
	return Parse(data)
}

// Parse decodes YAML content.
func Parse(data []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("content defines no categories")
	}
	return NewDirectory(f.Categories...)
}

// Marshal renders a directory in the content file format.
func Marshal(d *Directory) ([]byte, error) {
	return yaml.Marshal(file{Categories: d.Categories()})
}

// ApplyOverrides replaces topic bodies with markdown files found under fsys.
// A file at <category>/<slug>.md (category lowercased) overrides the matching
// topic; files that match nothing are reported in the returned slice.
func ApplyOverrides(d *Directory, fsys fs.FS) (*Directory, []string, error) {
	matches, err := doublestar.Glob(fsys, "**/*.md")
	if err != nil {
		return nil, nil, fmt.Errorf("globbing overrides: %w", err)
	}

	lowerToName := make(map[string]string)
	for _, name := range d.Names() {
		lowerToName[strings.ToLower(name)] = name
	}

	bodies := make(map[string]map[string]string)
	var unmatched []string
	for _, m := range matches {
		dir, base := path.Split(m)
		category, ok := lowerToName[strings.Trim(dir, "/")]
		slug := strings.TrimSuffix(base, ".md")
		if !ok || !d.HasTopic(category, slug) {
			unmatched = append(unmatched, m)
			continue
		}
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", m, err)
		}
		if bodies[category] == nil {
			bodies[category] = make(map[string]string)
		}
		bodies[category][slug] = string(data)
	}
	return d.WithBodies(bodies), unmatched, nil
}

// Load builds the directory the site serves: the content file when set,
// otherwise the built-in directory, then any markdown overrides.
func Load(contentFile, contentDir string) (*Directory, error) {
	d := Default()
	if contentFile != "" {
		var err error
		if d, err = LoadFile(contentFile); err != nil {
			return nil, err
		}
	}
	if contentDir == "" {
		return d, nil
	}
	if _, err := os.Stat(contentDir); os.IsNotExist(err) {
		return d, nil
	}
	d, _, err := ApplyOverrides(d, os.DirFS(contentDir))
	return d, err
}
