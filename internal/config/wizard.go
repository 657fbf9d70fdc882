package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. categories are offered as the landing category.
func RunWizard(path string, categories []string) (*Config, error) {
	fmt.Println("Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. WhatsApp recipient.
	numberPrompt := promptui.Prompt{
		Label:    "WhatsApp number for inquiries (country code + number, digits only)",
		Default:  cfg.WhatsApp.Number,
		Validate: ValidateNumber,
	}
	number, err := numberPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("whatsapp number: %w", err)
	}
	cfg.WhatsApp.Number = number

	// 3. Landing category.
	if len(categories) > 0 {
		categoryPrompt := promptui.Select{
			Label: "Category the home URL redirects to",
			Items: categories,
		}
		_, category, err := categoryPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("default category: %w", err)
		}
		cfg.DefaultCategory = category
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
