package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/progress"
	"github.com/jayshree-infra/website/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the website as static files",
	Long:  `Renders every page to index.html files under the output directory, ready for any static file host. The inquiry page links straight to WhatsApp since there is no server to post to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.OutputDir = out
		}
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		skipTracker, _ := cmd.Flags().GetBool("skip-tracker")

		dir, err := loadDirectory(cfg)
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer(cfg, dir, site.Options{Static: true})
		if err != nil {
			return err
		}

		ensureTracker(cmd.Context(), cfg, skipTracker)

		gen := site.NewGenerator(renderer, cfg.OutputDir, cfg.AssetsDir, cfg.DefaultCategory)
		gen.Reporter = progress.NewReporter()
		if concurrency > 0 {
			gen.Concurrency = concurrency
		}

		start := time.Now()
		n, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Printf("Site built\n")
		fmt.Printf("  Pages:    %d\n", n)
		fmt.Printf("  Duration: %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("  Output:   %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	buildCmd.Flags().Int("concurrency", 0, "max pages rendered in parallel (default GOMAXPROCS)")
	buildCmd.Flags().Bool("skip-tracker", false, "do not compile the scroll tracker when it is missing")
	rootCmd.AddCommand(buildCmd)
}
