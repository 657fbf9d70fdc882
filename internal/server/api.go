package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/route"
)

// categorySummary is one entry of GET /api/categories.
type categorySummary struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Path    string `json:"path"`
	Topics  int    `json:"topics"`
}

// linkResponse is a topic link with its page URL.
type linkResponse struct {
	content.Link
	Path string `json:"path"`
}

type slugResponse struct {
	Label      string `json:"label"`
	CleanLabel string `json:"clean_label"`
	Slug       string `json:"slug"`
}

type inquiryError struct {
	Error  string              `json:"error"`
	Fields inquiry.FieldErrors `json:"fields,omitempty"`
}

func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/categories/{category}/links", s.handleLinks)
		r.Get("/slugify", handleSlugify)
		r.With(s.limiter.Middleware).Post("/inquiry", s.handleInquiryAPI)
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	dir := s.renderer.Directory()
	out := make([]categorySummary, 0, len(dir.Names()))
	for _, c := range dir.Categories() {
		out = append(out, categorySummary{
			Name:    c.Name,
			Tagline: c.Tagline,
			Path:    route.CategoryPath(c.Name),
			Topics:  len(dir.Links(c.Name)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleLinks returns the flattened topic links of a category. The category
// may be given by key or by path segment; an unknown one yields an empty list.
func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	dir := s.renderer.Directory()
	name := chi.URLParam(r, "category")
	if resolved, ok := route.Resolve(dir.Names(), name); ok {
		name = resolved
	}
	links := dir.Links(name)
	out := make([]linkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, linkResponse{Link: l, Path: route.TopicPath(name, l.Slug)})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleSlugify(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	writeJSON(w, http.StatusOK, slugResponse{
		Label:      label,
		CleanLabel: content.CleanLabel(label),
		Slug:       content.Slugify(label),
	})
}

func (s *Server) handleInquiryAPI(w http.ResponseWriter, r *http.Request) {
	var form inquiry.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	res, err := s.composer.Compose(form)
	var fieldErrs inquiry.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusUnprocessableEntity, inquiryError{Error: "invalid inquiry", Fields: fieldErrs})
	case err != nil:
		log.Printf("inquiry: %v", err)
		writeError(w, http.StatusServiceUnavailable, "chat link unavailable")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
