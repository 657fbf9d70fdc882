package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/route"
	"github.com/jayshree-infra/website/internal/site"
)

func (s *Server) registerPages(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get(site.HomePath, s.handleHome)
	r.Get(site.InquiryPath, s.handleInquiryForm)
	r.Post(site.InquiryPath, s.handleInquirySubmit)
	r.Get("/{category}", s.handleCategory)
	r.Get("/{category}/{slug}", s.handleTopic)
}

// Redirects use 302: the browser replaces the requested URL rather than
// adding a history entry for it.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	target, ok := site.RootTarget(s.renderer.Directory(), s.cfg.DefaultCategory)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.renderer.RenderHome)
}

// category resolves the {category} segment to a category with at least one
// topic. Anything else is answered with the not-found view.
func (s *Server) category(w http.ResponseWriter, r *http.Request) (name, firstSlug string, ok bool) {
	dir := s.renderer.Directory()
	seg := chi.URLParam(r, "category")
	if name, ok = route.Resolve(dir.Names(), seg); ok {
		firstSlug, ok = dir.FirstSlug(name)
	}
	if !ok {
		s.notFound(w, seg)
	}
	return name, firstSlug, ok
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	name, slug, ok := s.category(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, route.TopicPath(name, slug), http.StatusFound)
}

// handleTopic renders the whole category page with slug active. An unknown
// slug is not an error; the first topic is shown active instead.
func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	name, _, ok := s.category(w, r)
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")
	s.renderPage(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.RenderCategory(out, name, slug)
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	seg, _, _ := strings.Cut(strings.Trim(r.URL.Path, "/"), "/")
	s.notFound(w, seg)
}

func (s *Server) notFound(w http.ResponseWriter, seg string) {
	s.renderPage(w, http.StatusNotFound, func(out io.Writer) error {
		return s.renderer.RenderNotFound(out, seg)
	})
}

func (s *Server) handleInquiryForm(w http.ResponseWriter, r *http.Request) {
	s.renderInquiry(w, http.StatusOK, site.InquiryState{})
}

// handleInquirySubmit validates the posted form and sends the visitor to the
// chat with the composed message. Every failure re-renders the form with an
// inline notice.
func (s *Server) handleInquirySubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderInquiry(w, http.StatusBadRequest, site.InquiryState{Notice: site.NoticeInvalid})
		return
	}
	form := inquiry.Form{
		FullName:    r.PostForm.Get("full_name"),
		UserType:    inquiry.UserType(r.PostForm.Get("user_type")),
		Company:     r.PostForm.Get("company"),
		Phone:       r.PostForm.Get("phone"),
		Email:       r.PostForm.Get("email"),
		ProjectType: r.PostForm.Get("project_type"),
		BudgetRange: r.PostForm.Get("budget_range"),
		Description: r.PostForm.Get("project_description"),
	}
	if !s.limiter.Allow(r) {
		w.Header().Set("Retry-After", "5")
		s.renderInquiry(w, http.StatusTooManyRequests, site.InquiryState{Form: form, Notice: site.NoticeLimited})
		return
	}

	res, err := s.composer.Compose(form)
	var fieldErrs inquiry.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		s.renderInquiry(w, http.StatusUnprocessableEntity, site.InquiryState{Form: form, Errors: fieldErrs, Notice: site.NoticeInvalid})
	case err != nil:
		log.Printf("inquiry: %v", err)
		s.renderInquiry(w, http.StatusServiceUnavailable, site.InquiryState{Form: form, Notice: site.NoticeUnavailable})
	default:
		log.Printf("inquiry %s composed", res.Reference)
		http.Redirect(w, r, res.Link, http.StatusSeeOther)
	}
}

func (s *Server) renderInquiry(w http.ResponseWriter, status int, state site.InquiryState) {
	s.renderPage(w, status, func(out io.Writer) error {
		return s.renderer.RenderInquiry(out, state)
	})
}

// renderPage renders into a buffer first so a template failure becomes a
// clean 500 instead of a truncated page.
func (s *Server) renderPage(w http.ResponseWriter, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Printf("rendering page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if data, ct, ok := site.Asset(name); ok {
		w.Header().Set("Content-Type", ct)
		_, _ = w.Write(data)
		return
	}
	if s.cfg.AssetsDir == "" {
		s.handleNotFound(w, r)
		return
	}
	http.StripPrefix(site.StaticPrefix, http.FileServer(http.Dir(s.cfg.AssetsDir))).ServeHTTP(w, r)
}
