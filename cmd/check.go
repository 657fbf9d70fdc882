package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and content",
	Long:  `Loads the config and content the way serve does and reports problems: invalid settings, duplicate or empty slugs, unknown icons and markdown overrides that match no topic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := content.Default()
		if cfg.ContentFile != "" {
			if dir, err = content.LoadFile(cfg.ContentFile); err != nil {
				return err
			}
		}
		if _, ok := dir.Category(cfg.DefaultCategory); !ok {
			return fmt.Errorf("default_category %q is not in the content (have %v)", cfg.DefaultCategory, dir.Names())
		}

		warnings := 0
		if cfg.ContentDir != "" {
			if _, statErr := os.Stat(cfg.ContentDir); statErr == nil {
				var unmatched []string
				dir, unmatched, err = content.ApplyOverrides(dir, os.DirFS(cfg.ContentDir))
				if err != nil {
					return err
				}
				for _, u := range unmatched {
					fmt.Fprintf(os.Stderr, "Warning: %s/%s matches no topic\n", cfg.ContentDir, u)
					warnings++
				}
			}
		}

		for _, name := range dir.Names() {
			fmt.Printf("  %-12s %d topics\n", name, len(dir.Links(name)))
		}
		if warnings > 0 {
			fmt.Printf("Content OK with %d warning(s)\n", warnings)
			return nil
		}
		fmt.Println("Content OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
