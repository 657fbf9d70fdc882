package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinksUnknownCategory(t *testing.T) {
	d := Default()
	if links := d.Links("Unknown"); len(links) != 0 {
		t.Errorf("Links(Unknown) = %d links, want 0", len(links))
	}
	// Keys are case-sensitive.
	if links := d.Links("company"); len(links) != 0 {
		t.Errorf("Links(company) = %d links, want 0", len(links))
	}
}

func TestLinksOrder(t *testing.T) {
	d := Default()
	got := d.Slugs("Company")
	want := []string{
		"corporate-social-responsibility",
		"leadership",
		"awards-recognitions",
		"dbl-journey",
		"contact",
		"iso-27001",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Company slugs mismatch (-want +got):\n%s", diff)
	}
}

func TestLinksUniqueSlugs(t *testing.T) {
	d := Default()
	for _, name := range d.Names() {
		seen := make(map[string]bool)
		for _, l := range d.Links(name) {
			if l.Slug == "" {
				t.Errorf("%s: empty slug for %q", name, l.Label)
			}
			if seen[l.Slug] {
				t.Errorf("%s: duplicate slug %q", name, l.Slug)
			}
			seen[l.Slug] = true
		}
	}
}

func TestLinksPassThrough(t *testing.T) {
	d := Default()
	cat, ok := d.Category("Strengths")
	if !ok {
		t.Fatal("Strengths category missing")
	}
	var source []Topic
	for _, g := range cat.Groups {
		source = append(source, g...)
	}

	links := d.Links("Strengths")
	if len(links) != len(source) {
		t.Fatalf("got %d links, want %d", len(links), len(source))
	}
	for i, l := range links {
		if diff := cmp.Diff(source[i], l.Topic); diff != "" {
			t.Errorf("link %d topic mismatch (-want +got):\n%s", i, diff)
		}
		if l.CleanLabel != CleanLabel(source[i].Label) {
			t.Errorf("link %d clean label = %q", i, l.CleanLabel)
		}
	}

	// Mutating a returned link must not reach the directory.
	links[0].Icon = IconPhone
	if again := d.Links("Strengths"); again[0].Icon != source[0].Icon {
		t.Errorf("directory mutated through returned link: icon %q", again[0].Icon)
	}
}

func TestNewDirectoryCopiesInput(t *testing.T) {
	groups := [][]Topic{{{Label: "Innovation", Icon: IconLightbulb}}}
	d, err := NewDirectory(Category{Name: "Strengths", Groups: groups})
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	groups[0][0].Label = "Changed"
	if got := d.Links("Strengths")[0].Label; got != "Innovation" {
		t.Errorf("label = %q, want Innovation", got)
	}
}

func TestNewDirectoryValidation(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		wantErr    error
	}{
		{
			name: "duplicate slug",
			categories: []Category{{Name: "Company", Groups: [][]Topic{
				{{Label: "Awards & Recognitions", Icon: IconAward}},
				{{Label: "Awards Recognitions", Icon: IconAward}},
			}}},
			wantErr: ErrDuplicateSlug,
		},
		{
			name: "empty slug",
			categories: []Category{{Name: "Company", Groups: [][]Topic{
				{{Label: "???", Icon: IconAward}},
			}}},
			wantErr: ErrEmptySlug,
		},
		{
			name: "unknown icon",
			categories: []Category{{Name: "Company", Groups: [][]Topic{
				{{Label: "Leadership", Icon: "crown"}},
			}}},
			wantErr: ErrUnknownIcon,
		},
		{
			name: "reserved slug",
			categories: []Category{{Name: "Company", Groups: [][]Topic{
				{{Label: "Toc", Icon: IconAward}},
			}}},
			wantErr: ErrReservedSlug,
		},
		{
			name: "reserved slug after slugify",
			categories: []Category{{Name: "Company", Groups: [][]Topic{
				{{Label: "Nav Menu", Icon: IconAward}},
			}}},
			wantErr: ErrReservedSlug,
		},
		{
			name: "duplicate category",
			categories: []Category{
				{Name: "Company"},
				{Name: "Company"},
			},
			wantErr: ErrDuplicateCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirectory(tt.categories...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSameSlugAcrossCategories(t *testing.T) {
	_, err := NewDirectory(
		Category{Name: "Company", Groups: [][]Topic{{{Label: "Partners", Icon: IconHandshake}}}},
		Category{Name: "Strengths", Groups: [][]Topic{{{Label: "Partners", Icon: IconHandshake}}}},
	)
	if err != nil {
		t.Errorf("slugs only need to be unique within a category: %v", err)
	}
}

func TestFirstSlug(t *testing.T) {
	d := Default()
	slug, ok := d.FirstSlug("Projects")
	if !ok || slug != "ongoing-projects" {
		t.Errorf("FirstSlug(Projects) = %q, %v", slug, ok)
	}
	if _, ok := d.FirstSlug("Investors"); ok {
		t.Error("FirstSlug(Investors) should report false")
	}
	if !d.HasTopic("Projects", "completed-projects") {
		t.Error("HasTopic(Projects, completed-projects) = false")
	}
}
