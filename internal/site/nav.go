package site

import (
	"html/template"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/route"
)

// menuCategory is one column of the navbar mega-menu.
type menuCategory struct {
	Name    string
	Path    string
	Tagline string
	Current bool
	Groups  [][]menuItem
}

// menuItem is one topic entry in the mega-menu or a category sidebar.
type menuItem struct {
	Label   string
	Slug    string
	Path    string
	Summary string
	Icon    template.HTML
}

type navLink struct {
	Label string
	URL   string
}

type footer struct {
	Quick    []navLink
	Featured []navLink
	// FeaturedTitle heads the column listing the last category's topics.
	FeaturedTitle string
	Social        []navLink
}

// buildMenu lays out every category with its topic groups for the navbar.
func buildMenu(dir *content.Directory, current string) []menuCategory {
	cats := dir.Categories()
	menu := make([]menuCategory, 0, len(cats))
	for _, c := range cats {
		mc := menuCategory{
			Name:    c.Name,
			Path:    route.CategoryPath(c.Name),
			Tagline: c.Tagline,
			Current: c.Name == current,
		}
		for _, group := range c.Groups {
			items := make([]menuItem, 0, len(group))
			for _, t := range group {
				items = append(items, newMenuItem(c.Name, t))
			}
			mc.Groups = append(mc.Groups, items)
		}
		menu = append(menu, mc)
	}
	return menu
}

func newMenuItem(category string, t content.Topic) menuItem {
	slug := content.Slugify(t.Label)
	return menuItem{
		Label:   content.CleanLabel(t.Label),
		Slug:    slug,
		Path:    route.TopicPath(category, slug),
		Summary: t.Summary,
		Icon:    iconSVG(t.Icon, 18),
	}
}

func buildFooter(dir *content.Directory, social []config.SocialLink) footer {
	var f footer
	names := dir.Names()
	for _, name := range names {
		f.Quick = append(f.Quick, navLink{Label: name, URL: route.CategoryPath(name)})
	}
	f.Quick = append(f.Quick, navLink{Label: "Project Inquiry", URL: InquiryPath})
	if len(names) > 0 {
		last := names[len(names)-1]
		f.FeaturedTitle = "Our " + last
		for _, l := range dir.Links(last) {
			f.Featured = append(f.Featured, navLink{Label: l.CleanLabel, URL: route.TopicPath(last, l.Slug)})
		}
	}
	for _, s := range social {
		f.Social = append(f.Social, navLink{Label: s.Label, URL: s.URL})
	}
	return f
}
