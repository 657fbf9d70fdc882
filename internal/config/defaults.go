package config

import (
	"github.com/jayshree-infra/website/internal/contact"
	"github.com/jayshree-infra/website/internal/tracker"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:        "JAYSHREE INFRASTRUCTURES",
		Brand:           "JAYSHREE",
		Slogan:          "From Concept to Creation! Build Your Dream With Us.",
		DefaultCategory: "Company",
		ContentDir:      "content",
		AssetsDir:       "web/static",
		OutputDir:       "dist",
		Server: ServerConfig{
			Port:      8080,
			RateLimit: 0.2,
			RateBurst: 3,
		},
		WhatsApp: WhatsAppConfig{Number: "917047777734"},
		Contact: contact.Details{
			Phone:        "+91 704 777 7734",
			Email:        "jayshree.infras@gmail.com",
			Address:      "Plot no. 707/5, New Shastri Nagar",
			AddressLine2: "Jabalpur, M.P. - 482003",
			MapURL:       "https://maps.app.goo.gl/9wM7QzyfaxtLD7bS9",
		},
		Hours: HoursConfig{
			Timezone:  "Asia/Kolkata",
			OpenHour:  9,
			CloseHour: 18,
		},
		Scroll: ScrollConfig{
			HeaderOffset:       tracker.DefaultBand.HeaderOffset,
			BandBottom:         tracker.DefaultBand.BottomRatio,
			TopThreshold:       tracker.DefaultTopThreshold,
			NarrowHeaderOffset: tracker.DefaultOffsets.NarrowHeader,
			NarrowBelow:        tracker.DefaultOffsets.NarrowBelow,
		},
		Social: []SocialLink{
			{Label: "Facebook", URL: "https://facebook.com"},
			{Label: "Instagram", URL: "https://www.instagram.com/jayshree_infrastructure"},
			{Label: "LinkedIn", URL: "https://linkedin.com"},
			{Label: "Twitter", URL: "https://twitter.com"},
		},
	}
}

// Band returns the tracker detection band described by the scroll settings.
func (s ScrollConfig) Band() tracker.Band {
	return tracker.Band{HeaderOffset: s.HeaderOffset, BottomRatio: s.BandBottom}
}

// Offsets returns the scroll-to-anchor offsets described by the scroll settings.
func (s ScrollConfig) Offsets() tracker.Offsets {
	return tracker.Offsets{
		Header:       s.HeaderOffset,
		NarrowHeader: s.NarrowHeaderOffset,
		NarrowBelow:  s.NarrowBelow,
	}
}

// Schedule returns the office hours. An unknown timezone falls back to IST.
func (h HoursConfig) Schedule() contact.Hours {
	hours, _ := contact.NewHours(h.Timezone, h.OpenHour, h.CloseHour)
	return hours
}
