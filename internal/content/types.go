package content

// Icon is an opaque symbolic icon name. The presentation layer maps it to a
// concrete renderable; the directory never interprets it.
type Icon string

const (
	IconHandshake   Icon = "handshake"
	IconUsers       Icon = "users"
	IconAward       Icon = "award"
	IconRoute       Icon = "route"
	IconPhone       Icon = "phone"
	IconShieldCheck Icon = "shield-check"
	IconLightbulb   Icon = "lightbulb"
	IconHammer      Icon = "hammer"
	IconLeaf        Icon = "leaf"
	IconPackage     Icon = "package"
	IconTrendingUp  Icon = "trending-up"
	IconWrench      Icon = "wrench"
	IconBuilding    Icon = "building"
)

// knownIcons is the set of icon names accepted at load time.
var knownIcons = map[Icon]bool{
	IconHandshake:   true,
	IconUsers:       true,
	IconAward:       true,
	IconRoute:       true,
	IconPhone:       true,
	IconShieldCheck: true,
	IconLightbulb:   true,
	IconHammer:      true,
	IconLeaf:        true,
	IconPackage:     true,
	IconTrendingUp:  true,
	IconWrench:      true,
	IconBuilding:    true,
}

// Known reports whether the icon is one the site knows how to draw.
func (i Icon) Known() bool { return knownIcons[i] }

// Topic is one sub-entry of a category, rendered as an anchored content block.
type Topic struct {
	Label   string `yaml:"label" json:"label"`
	Icon    Icon   `yaml:"icon" json:"icon"`
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Body    string `yaml:"body,omitempty" json:"body,omitempty"` // markdown
}

// Category is a top-level section of the site. Groups only affect how topics
// are laid out in the navigation menu.
type Category struct {
	Name    string    `yaml:"name" json:"name"`
	Tagline string    `yaml:"tagline" json:"tagline"`
	Groups  [][]Topic `yaml:"groups" json:"groups"`
}

// Link is a topic flattened out of its category, with the derived label and slug.
type Link struct {
	Topic
	CleanLabel string `json:"clean_label"`
	Slug       string `json:"slug"`
}
