package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/progress"
	"github.com/jayshree-infra/website/internal/route"
)

// Generator exports the site as static files. Every page becomes an
// index.html under its URL path so any file server can host the result.
type Generator struct {
	Renderer        *Renderer
	OutputDir       string
	AssetsDir       string
	DefaultCategory string
	Reporter        progress.Reporter
	// Concurrency bounds the number of pages rendered at once.
	Concurrency int
}

// NewGenerator creates a Generator writing to outputDir. The renderer should
// be built with Options.Static set.
func NewGenerator(r *Renderer, outputDir, assetsDir, defaultCategory string) *Generator {
	return &Generator{
		Renderer:        r,
		OutputDir:       outputDir,
		AssetsDir:       assetsDir,
		DefaultCategory: defaultCategory,
		Reporter:        progress.Discard,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

// exportPage is one file of the export.
type exportPage struct {
	urlPath string
	render  func(io.Writer) error
}

// RootTarget is where / sends visitors: the first topic of the default
// category, or of the first category when the default is unknown.
func RootTarget(dir *content.Directory, defaultCategory string) (string, bool) {
	if slug, ok := dir.FirstSlug(defaultCategory); ok {
		return route.TopicPath(defaultCategory, slug), true
	}
	for _, name := range dir.Names() {
		if slug, ok := dir.FirstSlug(name); ok {
			return route.TopicPath(name, slug), true
		}
	}
	return "", false
}

// Pages lists the URL paths the export will write, in render order.
func (g *Generator) Pages() []string {
	pages := g.plan()
	paths := make([]string, len(pages))
	for i, p := range pages {
		paths[i] = p.urlPath
	}
	return paths
}

func (g *Generator) plan() []exportPage {
	r := g.Renderer
	dir := r.Directory()
	pages := []exportPage{
		{urlPath: HomePath, render: r.RenderHome},
		{urlPath: InquiryPath, render: func(w io.Writer) error { return r.RenderInquiry(w, InquiryState{}) }},
		{urlPath: "/404.html", render: func(w io.Writer) error { return r.RenderNotFound(w, "") }},
	}
	if target, ok := RootTarget(dir, g.DefaultCategory); ok {
		pages = append(pages, redirectPage(r, "/", target))
	}
	for _, name := range dir.Names() {
		links := dir.Links(name)
		if len(links) == 0 {
			continue
		}
		pages = append(pages, redirectPage(r, route.CategoryPath(name), route.TopicPath(name, links[0].Slug)))
		for _, l := range links {
			name, slug := name, l.Slug
			pages = append(pages, exportPage{
				urlPath: route.TopicPath(name, slug),
				render:  func(w io.Writer) error { return r.RenderCategory(w, name, slug) },
			})
		}
	}
	return pages
}

func redirectPage(r *Renderer, from, to string) exportPage {
	return exportPage{urlPath: from, render: func(w io.Writer) error { return r.RenderRedirect(w, to) }}
}

// Generate writes every page and the static assets. Returns the number of
// pages written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := g.writeAssets(); err != nil {
		return 0, fmt.Errorf("writing assets: %w", err)
	}

	pages := g.plan()
	rep := g.Reporter
	if rep == nil {
		rep = progress.Discard
	}
	rep.Start(len(pages))
	defer rep.Finish()

	eg, ctx := errgroup.WithContext(ctx)
	if g.Concurrency > 0 {
		eg.SetLimit(g.Concurrency)
	}
	for _, p := range pages {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.writePage(p); err != nil {
				return fmt.Errorf("rendering %s: %w", p.urlPath, err)
			}
			rep.Step(p.urlPath)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// outputPath maps a URL path to its file: /company/leadership becomes
// company/leadership/index.html. Paths with an extension are written as is.
func (g *Generator) outputPath(urlPath string) string {
	rel := strings.TrimPrefix(urlPath, "/")
	if path.Ext(rel) == "" {
		rel = path.Join(rel, "index.html")
	}
	return filepath.Join(g.OutputDir, filepath.FromSlash(rel))
}

func (g *Generator) writePage(p exportPage) error {
	var buf bytes.Buffer
	if err := p.render(&buf); err != nil {
		return err
	}
	out := g.outputPath(p.urlPath)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

// writeAssets writes the stylesheet and script, then copies every file under
// AssetsDir (the scrollspy module, images) into static/.
func (g *Generator) writeAssets() error {
	staticDir := filepath.Join(g.OutputDir, strings.Trim(StaticPrefix, "/"))
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(staticDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte(jsContent), 0o644); err != nil {
		return err
	}
	if g.AssetsDir == "" {
		return nil
	}
	if _, err := os.Stat(g.AssetsDir); os.IsNotExist(err) {
		return nil
	}

	fsys := os.DirFS(g.AssetsDir)
	files, err := doublestar.Glob(fsys, "**", doublestar.WithFilesOnly())
	if err != nil {
		return err
	}
	for _, rel := range files {
		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return err
		}
		out := filepath.Join(staticDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
