package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/livereload"
	"github.com/jayshree-infra/website/internal/server"
	"github.com/jayshree-infra/website/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website",
	Long:  `Starts the web server for the site pages, the JSON API and the inquiry hand-off. With --watch, content changes are reloaded and open pages refresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("watch") {
			cfg.Server.Watch, _ = cmd.Flags().GetBool("watch")
		}
		openBrowser, _ := cmd.Flags().GetBool("open")
		skipTracker, _ := cmd.Flags().GetBool("skip-tracker")

		dir, err := loadDirectory(cfg)
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer(cfg, dir, site.Options{LiveReload: cfg.Server.Watch})
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ensureTracker(ctx, cfg, skipTracker)

		var opts []server.Option
		if cfg.Server.Watch {
			hub := livereload.NewHub()
			defer hub.Close()
			opts = append(opts, server.WithReload(hub))
			startWatcher(ctx, cfg, hub, renderer)
		}

		srv := server.New(cfg, renderer, opts...)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d/", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "jayshree v%s serving %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Categories: %v\n", dir.Names())
		fmt.Fprintf(os.Stderr, "  Inquiries:  wa.me/%s\n", cfg.WhatsApp.Number)
		if cfg.Server.Watch {
			fmt.Fprintf(os.Stderr, "  Live reload on\n")
		}
		if openBrowser {
			go func() {
				time.Sleep(300 * time.Millisecond)
				server.OpenBrowser(url)
			}()
		}

		return srv.Start(ctx)
	},
}

// startWatcher reloads the content on change and refreshes open pages. Only
// content paths that exist are watched.
func startWatcher(ctx context.Context, cfg *config.Config, hub *livereload.Hub, renderer *site.Renderer) {
	var paths []string
	for _, p := range []string{cfg.ContentFile, cfg.ContentDir} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: --watch has nothing to watch; set content_file or create the content directory")
		return
	}

	reload := hub.Reload(func() (*content.Directory, error) { return loadDirectory(cfg) }, renderer.SetDirectory)
	w := livereload.NewWatcher(reload, paths...)
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Printf("livereload: %v", err)
		}
	}()
	logVerbose("Watching %v", paths)
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP port (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload content and refresh pages on change")
	serveCmd.Flags().Bool("open", false, "open the site in the default browser")
	serveCmd.Flags().Bool("skip-tracker", false, "do not compile the scroll tracker when it is missing")
	rootCmd.AddCommand(serveCmd)
}
