package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/contact"
	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/route"
)

// Fixed site paths outside the category tree.
const (
	HomePath     = "/home"
	InquiryPath  = "/inquiry"
	StaticPrefix = "/static/"
)

// Inline notices shown on the inquiry page, by the server after a post and by
// app.js after an API submission.
const (
	NoticeInvalid     = "Please correct the highlighted fields and try again."
	NoticeUnavailable = "Could not open WhatsApp. Please check your browser settings or contact us via email."
	NoticeLimited     = "Too many inquiries from your connection. Please wait a moment and try again."
	NoticeSent        = "You will be redirected to WhatsApp! Your inquiry summary is ready to send."
)

// ErrUnknownCategory is returned when a page is requested for a category the
// directory does not contain.
var ErrUnknownCategory = errors.New("unknown category")

// Options controls how pages are rendered.
type Options struct {
	// Static renders pages for the file export: the inquiry form is replaced
	// by a direct chat link and the live status of the office is omitted.
	Static bool
	// LiveReload adds the reload socket client to every page.
	LiveReload bool
	// Now is used for the office status. Defaults to time.Now.
	Now func() time.Time
}

// Renderer turns the content directory into HTML pages. The directory can be
// swapped while pages are being served.
type Renderer struct {
	cfg   *config.Config
	opts  Options
	md    *content.Markdown
	hours contact.Hours
	pages map[string]*template.Template

	mu     sync.RWMutex
	dir    *content.Directory
	bodies map[string]template.HTML
}

// InquiryState is what the inquiry page shows: the submitted form, any field
// errors and an inline notice.
type InquiryState struct {
	Form   inquiry.Form
	Errors inquiry.FieldErrors
	Notice string
}

// NewRenderer parses the page templates and renders every topic body of dir.
func NewRenderer(cfg *config.Config, dir *content.Directory, opts Options) (*Renderer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	pages := make(map[string]*template.Template, len(pageTemplates))
	for name, src := range pageTemplates {
		tmpl, err := template.New("layout").Parse(layoutTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing layout: %w", err)
		}
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	r := &Renderer{
		cfg:   cfg,
		opts:  opts,
		md:    content.NewMarkdown(),
		hours: cfg.Hours.Schedule(),
		pages: pages,
	}
	if err := r.SetDirectory(dir); err != nil {
		return nil, err
	}
	return r, nil
}

// SetDirectory swaps the content directory. Topic bodies are rendered before
// the swap; on error the previous directory stays in place.
func (r *Renderer) SetDirectory(dir *content.Directory) error {
	bodies := make(map[string]template.HTML)
	for _, name := range dir.Names() {
		for _, l := range dir.Links(name) {
			html, err := r.md.Render(l.Body)
			if err != nil {
				return fmt.Errorf("topic %s/%s: %w", name, l.Slug, err)
			}
			bodies[bodyKey(name, l.Slug)] = html
		}
	}
	r.mu.Lock()
	r.dir, r.bodies = dir, bodies
	r.mu.Unlock()
	return nil
}

// Directory returns the directory pages are currently rendered from.
func (r *Renderer) Directory() *content.Directory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dir
}

func (r *Renderer) snapshot() (*content.Directory, map[string]template.HTML) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dir, r.bodies
}

// Asset returns a built-in static file by name.
func Asset(name string) (data []byte, contentType string, ok bool) {
	switch name {
	case "style.css":
		return []byte(cssContent), "text/css; charset=utf-8", true
	case "app.js":
		return []byte(jsContent), "text/javascript; charset=utf-8", true
	}
	return nil, "", false
}

func bodyKey(category, slug string) string { return category + "/" + slug }

// pageData is the root value handed to every template.
type pageData struct {
	Title       string
	Description string
	SiteName    string
	Brand       string
	Slogan      string
	Menu        []menuCategory
	Footer      footer
	Contact     contact.Details
	Tel         string
	Mail        string
	Hours       string
	ChatURL     string
	HomePath    string
	InquiryPath string
	Static      bool
	LiveReload  bool
	Year        int

	Home     *homeView
	Category *categoryView
	NotFound *notFoundView
	Inquiry  *inquiryView
	Redirect string
}

type homeView struct {
	Cards      []homeCard
	ShowStatus bool
	OpenNow    bool
}

type homeCard struct {
	Name    string
	Path    string
	Tagline string
	Topics  []menuItem
}

type categoryView struct {
	Name    string
	Segment string
	Tagline string
	Active  string
	Topics  []topicView
	Scroll  config.ScrollConfig
}

type topicView struct {
	menuItem
	Body   template.HTML
	Active bool
}

type notFoundView struct {
	Name       string
	Categories []navLink
}

type inquiryView struct {
	InquiryState
	ShowCompany  bool
	ProjectTypes []inquiry.Option
	BudgetRanges []inquiry.Option
	Notices      map[string]string
}

func (r *Renderer) base(dir *content.Directory, title, current string) pageData {
	return pageData{
		Title:       title,
		Description: r.cfg.Slogan,
		SiteName:    r.cfg.SiteName,
		Brand:       r.cfg.Brand,
		Slogan:      r.cfg.Slogan,
		Menu:        buildMenu(dir, current),
		Footer:      buildFooter(dir, r.cfg.Social),
		Contact:     r.cfg.Contact,
		Tel:         r.cfg.Contact.TelURL(),
		Mail:        r.cfg.Contact.MailURL(),
		Hours:       r.hours.Summary(),
		ChatURL:     "https://wa.me/" + r.cfg.WhatsApp.Number,
		HomePath:    HomePath,
		InquiryPath: InquiryPath,
		Static:      r.opts.Static,
		LiveReload:  r.opts.LiveReload,
		Year:        r.opts.Now().Year(),
	}
}

func (r *Renderer) execute(w io.Writer, page string, data pageData) error {
	var buf bytes.Buffer
	if err := r.pages[page].Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s page: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderHome writes the landing page.
func (r *Renderer) RenderHome(w io.Writer) error {
	dir, _ := r.snapshot()
	data := r.base(dir, r.cfg.SiteName, "")
	home := &homeView{ShowStatus: !r.opts.Static, OpenNow: r.hours.IsOpen(r.opts.Now())}
	for _, c := range dir.Categories() {
		card := homeCard{Name: c.Name, Path: route.CategoryPath(c.Name), Tagline: c.Tagline}
		for _, l := range dir.Links(c.Name) {
			card.Topics = append(card.Topics, newMenuItem(c.Name, l.Topic))
		}
		home.Cards = append(home.Cards, card)
	}
	data.Home = home
	return r.execute(w, "home", data)
}

// RenderCategory writes the page for a category with every topic anchored by
// its slug. The topic named by slug starts active; an unknown or empty slug
// falls back to the first topic.
func (r *Renderer) RenderCategory(w io.Writer, category, slug string) error {
	dir, bodies := r.snapshot()
	c, ok := dir.Category(category)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	links := dir.Links(category)
	if len(links) == 0 {
		return fmt.Errorf("%w: %s has no topics", ErrUnknownCategory, category)
	}
	if !dir.HasTopic(category, slug) {
		slug = links[0].Slug
	}

	view := &categoryView{
		Name:    c.Name,
		Segment: route.Segment(c.Name),
		Tagline: c.Tagline,
		Active:  slug,
		Scroll:  r.cfg.Scroll,
	}
	title := c.Name
	for _, l := range links {
		tv := topicView{
			menuItem: newMenuItem(category, l.Topic),
			Body:     bodies[bodyKey(category, l.Slug)],
			Active:   l.Slug == slug,
		}
		if tv.Active {
			title = tv.Label + " | " + c.Name
		}
		view.Topics = append(view.Topics, tv)
	}

	data := r.base(dir, title+" | "+r.cfg.SiteName, category)
	data.Description = c.Tagline
	data.Category = view
	return r.execute(w, "category", data)
}

// RenderNotFound writes the not-found view for an unresolved path segment.
func (r *Renderer) RenderNotFound(w io.Writer, segment string) error {
	dir, _ := r.snapshot()
	data := r.base(dir, "Not found | "+r.cfg.SiteName, "")
	nf := &notFoundView{Name: route.DisplayName(segment)}
	for _, name := range dir.Names() {
		nf.Categories = append(nf.Categories, navLink{Label: name, URL: route.CategoryPath(name)})
	}
	data.NotFound = nf
	return r.execute(w, "notfound", data)
}

// RenderInquiry writes the project inquiry page.
func (r *Renderer) RenderInquiry(w io.Writer, state InquiryState) error {
	dir, _ := r.snapshot()
	data := r.base(dir, "Project Inquiry | "+r.cfg.SiteName, "")
	if state.Form.UserType == "" {
		state.Form.UserType = inquiry.UserIndividual
	}
	data.Inquiry = &inquiryView{
		InquiryState: state,
		ShowCompany:  state.Form.UserType == inquiry.UserCompany,
		ProjectTypes: inquiry.ProjectTypes,
		BudgetRanges: inquiry.BudgetRanges,
		Notices: map[string]string{
			"invalid":     NoticeInvalid,
			"unavailable": NoticeUnavailable,
			"limited":     NoticeLimited,
			"sent":        NoticeSent,
		},
	}
	return r.execute(w, "inquiry", data)
}

// RenderRedirect writes a page that replaces the current history entry with
// target. Used by the static export where no HTTP redirect is available.
func (r *Renderer) RenderRedirect(w io.Writer, target string) error {
	dir, _ := r.snapshot()
	data := r.base(dir, r.cfg.SiteName, "")
	data.Redirect = target
	return r.execute(w, "redirect", data)
}
