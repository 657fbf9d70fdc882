package config

import "github.com/jayshree-infra/website/internal/contact"

// Config is the top-level site configuration, corresponding to .jayshree.yml.
type Config struct {
	SiteName        string          `yaml:"site_name" koanf:"site_name"`
	Brand           string          `yaml:"brand" koanf:"brand"`
	Slogan          string          `yaml:"slogan" koanf:"slogan"`
	DefaultCategory string          `yaml:"default_category" koanf:"default_category"`
	ContentFile     string          `yaml:"content_file" koanf:"content_file"`
	ContentDir      string          `yaml:"content_dir" koanf:"content_dir"`
	AssetsDir       string          `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir       string          `yaml:"output_dir" koanf:"output_dir"`
	Server          ServerConfig    `yaml:"server" koanf:"server"`
	WhatsApp        WhatsAppConfig  `yaml:"whatsapp" koanf:"whatsapp"`
	Contact         contact.Details `yaml:"contact" koanf:"contact"`
	Hours           HoursConfig     `yaml:"hours" koanf:"hours"`
	Scroll          ScrollConfig    `yaml:"scroll" koanf:"scroll"`
	Social          []SocialLink    `yaml:"social" koanf:"social"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port      int     `yaml:"port" koanf:"port"`
	AllowAll  bool    `yaml:"allow_all" koanf:"allow_all"`     // allow all CORS origins
	RateLimit float64 `yaml:"rate_limit" koanf:"rate_limit"`   // inquiry submissions per second per IP
	RateBurst int     `yaml:"rate_burst" koanf:"rate_burst"`
	Watch     bool    `yaml:"watch" koanf:"watch"`             // live reload on content changes
}

// WhatsAppConfig names the chat that receives project inquiries.
type WhatsAppConfig struct {
	Number string `yaml:"number" koanf:"number"` // international format, digits only
}

// HoursConfig is the office schedule shown in the contact section.
type HoursConfig struct {
	Timezone  string `yaml:"timezone" koanf:"timezone"`
	OpenHour  int    `yaml:"open_hour" koanf:"open_hour"`
	CloseHour int    `yaml:"close_hour" koanf:"close_hour"`
}

// ScrollConfig tunes the section tracking on category pages.
type ScrollConfig struct {
	HeaderOffset       float64 `yaml:"header_offset" koanf:"header_offset"`
	BandBottom         float64 `yaml:"band_bottom" koanf:"band_bottom"`
	TopThreshold       float64 `yaml:"top_threshold" koanf:"top_threshold"`
	NarrowHeaderOffset float64 `yaml:"narrow_header_offset" koanf:"narrow_header_offset"`
	NarrowBelow        float64 `yaml:"narrow_below" koanf:"narrow_below"`
}

// SocialLink is one entry of the footer's social row.
type SocialLink struct {
	Label string `yaml:"label" koanf:"label"`
	URL   string `yaml:"url" koanf:"url"`
}
