package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `jayshree init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	logVerbose("Loaded config from %s", cfgFile)
	return cfg, nil
}

// loadDirectory loads the content the config points at.
func loadDirectory(cfg *config.Config) (*content.Directory, error) {
	dir, err := content.Load(cfg.ContentFile, cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	if _, ok := dir.Category(cfg.DefaultCategory); !ok {
		return nil, fmt.Errorf("default_category %q is not in the content (have %v)", cfg.DefaultCategory, dir.Names())
	}
	logVerbose("Loaded %d categories", len(dir.Names()))
	return dir, nil
}

// newComposer builds the inquiry composer for the configured chat.
func newComposer(cfg *config.Config) *inquiry.Composer {
	return &inquiry.Composer{Number: cfg.WhatsApp.Number, Brand: cfg.Brand}
}

// ensureTracker makes sure the scroll tracker assets are in the assets dir,
// compiling them when they are missing. Pages still work without them, so
// failures are warnings.
func ensureTracker(ctx context.Context, cfg *config.Config, skipBuild bool) {
	if cfg.AssetsDir == "" {
		fmt.Fprintln(os.Stderr, "Warning: assets_dir is empty; the sidebar will not follow scrolling")
		return
	}
	if site.HasTracker(cfg.AssetsDir) {
		logVerbose("Scroll tracker found in %s", cfg.AssetsDir)
		return
	}
	if skipBuild {
		fmt.Fprintf(os.Stderr, "Warning: %s and %s missing from %s; the sidebar will not follow scrolling\n",
			site.TrackerWasm, site.TrackerLoader, cfg.AssetsDir)
		return
	}

	fmt.Fprintf(os.Stderr, "Compiling scroll tracker into %s...\n", cfg.AssetsDir)
	if err := site.BuildTracker(ctx, cfg.AssetsDir); err != nil {
		if errors.Is(err, site.ErrNoToolchain) {
			fmt.Fprintf(os.Stderr, "Warning: %v; copy %s and %s into %s to enable the scroll tracker\n",
				err, site.TrackerWasm, site.TrackerLoader, cfg.AssetsDir)
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: scroll tracker unavailable: %v\n", err)
	}
}
