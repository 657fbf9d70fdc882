package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/site"
)

func newTestServer(t *testing.T, mutate func(*config.Config), opts ...Option) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.AssetsDir = ""
	if mutate != nil {
		mutate(cfg)
	}
	r, err := site.NewRenderer(cfg, content.Default(), site.Options{})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	opts = append([]Option{WithComposer(&inquiry.Composer{
		Number: cfg.WhatsApp.Number,
		Brand:  cfg.Brand,
		NewRef: func() string { return "ref-1" },
	})}, opts...)
	return New(cfg, r, opts...)
}

func do(srv *Server, method, target string, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/healthz", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) { c.Server.AllowAll = true })

	w := do(srv, "OPTIONS", "/api/categories", "", map[string]string{
		"Origin":                        "http://example.com",
		"Access-Control-Request-Method": "GET",
	})
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestRedirects(t *testing.T) {
	srv := newTestServer(t, nil)
	tests := []struct {
		path string
		want string
	}{
		{"/", "/company/corporate-social-responsibility"},
		{"/company", "/company/corporate-social-responsibility"},
		{"/projects", "/projects/ongoing-projects"},
		{"/strengths", "/strengths/innovation"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(srv, "GET", tt.path, "", nil)
			if w.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", w.Code)
			}
			if got := w.Header().Get("Location"); got != tt.want {
				t.Errorf("Location = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootRedirectFollowsDefaultCategory(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) { c.DefaultCategory = "Projects" })
	w := do(srv, "GET", "/", "", nil)
	if got := w.Header().Get("Location"); got != "/projects/ongoing-projects" {
		t.Errorf("Location = %q", got)
	}
}

func TestTopicPage(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/company/iso-27001", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		`id="iso-27001" data-topic-anchor`,
		`class="toc-link active" data-toc-link data-slug="iso-27001"`,
		`data-active="iso-27001"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestTopicPageUnknownSlug(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/projects/skyscrapers", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `data-active="ongoing-projects"`) {
		t.Error("unknown slug should start on the first topic")
	}
}

func TestUnknownCategory(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, path := range []string{"/careers", "/careers/openings", "/a/b/c"} {
		w := do(srv, "GET", path, "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "404 Error") {
			t.Errorf("%s: not-found view not rendered", path)
		}
	}
}

func TestCategoryWithoutTopicsIsNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	dir, err := content.NewDirectory(append(content.Default().Categories(), content.Category{Name: "Careers"})...)
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	if err := srv.renderer.SetDirectory(dir); err != nil {
		t.Fatalf("SetDirectory: %v", err)
	}

	for _, path := range []string{"/careers", "/careers/openings"} {
		w := do(srv, "GET", path, "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "404 Error") {
			t.Errorf("%s: not-found view not rendered", path)
		}
	}
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/home", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Visit or Call Us") {
		t.Errorf("home page: status %d", w.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	assets := t.TempDir()
	if err := os.WriteFile(filepath.Join(assets, "scrollspy.wasm"), []byte("\x00asm"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, func(c *config.Config) { c.AssetsDir = assets })

	w := do(srv, "GET", "/static/style.css", "", nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css: status %d, type %q", w.Code, w.Header().Get("Content-Type"))
	}
	w = do(srv, "GET", "/static/scrollspy.wasm", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "\x00asm" {
		t.Errorf("scrollspy.wasm: status %d", w.Code)
	}
}

func TestAPICategories(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/api/categories", "", nil)

	var got []categorySummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []categorySummary{
		{Name: "Company", Tagline: "The JAYSHREE Story.", Path: "/company", Topics: 6},
		{Name: "Strengths", Tagline: "Engineered for Resilience.", Path: "/strengths", Topics: 6},
		{Name: "Projects", Tagline: "Portfolio of Progress.", Path: "/projects", Topics: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestAPILinks(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "GET", "/api/categories/projects/links", "", nil)
	var links []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &links); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[1]["slug"] != "completed-projects" || links[1]["path"] != "/projects/completed-projects" {
		t.Errorf("unexpected link %v", links[1])
	}
	if links[0]["icon"] != "wrench" {
		t.Errorf("icon not passed through: %v", links[0]["icon"])
	}

	w = do(srv, "GET", "/api/categories/careers/links", "", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("unknown category: status %d body %q", w.Code, w.Body.String())
	}
}

func TestAPISlugify(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "GET", "/api/slugify?label="+url.QueryEscape("Awards & Recognitions"), "", nil)

	var got slugResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Slug != "awards-recognitions" {
		t.Errorf("slug = %q", got.Slug)
	}
}

func validValues() url.Values {
	return url.Values{
		"full_name":           {"Asha Verma"},
		"user_type":           {"individual"},
		"phone":               {"+91 98765 43210"},
		"email":               {"asha@example.com"},
		"project_type":        {"roads_highways"},
		"budget_range":        {"1CR-10CR"},
		"project_description": {"Two-lane road"},
	}
}

var formHeader = map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

func TestInquirySubmitRedirectsToChat(t *testing.T) {
	srv := newTestServer(t, nil)
	w := do(srv, "POST", "/inquiry", validValues().Encode(), formHeader)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://wa.me/917047777734?text=") {
		t.Errorf("Location = %q", loc)
	}
	if !strings.Contains(loc, "Reference%3A%20ref-1") {
		t.Errorf("reference missing from %q", loc)
	}
}

func TestInquirySubmitInvalid(t *testing.T) {
	srv := newTestServer(t, nil)
	v := validValues()
	v.Set("user_type", "company")
	w := do(srv, "POST", "/inquiry", v.Encode(), formHeader)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, site.NoticeInvalid) {
		t.Error("notice missing")
	}
	if !strings.Contains(body, `value="Asha Verma"`) {
		t.Error("submitted values not kept")
	}
}

func TestInquirySubmitBadNumber(t *testing.T) {
	srv := newTestServer(t, nil, WithComposer(&inquiry.Composer{Number: "12", Brand: "JAYSHREE"}))
	w := do(srv, "POST", "/inquiry", validValues().Encode(), formHeader)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), site.NoticeUnavailable) {
		t.Error("inline notice missing")
	}
}

func TestInquiryRateLimited(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) {
		c.Server.RateLimit = 0.001
		c.Server.RateBurst = 1
	})
	body := validValues().Encode()
	if w := do(srv, "POST", "/inquiry", body, formHeader); w.Code != http.StatusSeeOther {
		t.Fatalf("first submission: status %d", w.Code)
	}
	w := do(srv, "POST", "/inquiry", body, formHeader)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second submission: status %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), site.NoticeLimited) {
		t.Error("rate limit notice missing")
	}
}

func TestAPIInquiry(t *testing.T) {
	srv := newTestServer(t, nil)
	payload := `{"full_name":"Asha","user_type":"company","company":"Verma Builders","phone":"9876543210",
		"email":"asha@example.com","project_type":"urban_development","budget_range":"50CR+","project_description":"Township"}`
	w := do(srv, "POST", "/api/inquiry", payload, map[string]string{"Content-Type": "application/json"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var res inquiry.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Reference != "ref-1" || !strings.HasPrefix(res.Link, "https://wa.me/917047777734?text=") {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestAPIInquiryErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "POST", "/api/inquiry", "{", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad JSON: status %d", w.Code)
	}

	w = do(srv, "POST", "/api/inquiry", `{"full_name":"Asha"}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("incomplete: status %d", w.Code)
	}
	var got inquiryError
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := got.Fields["email"]; !ok {
		t.Errorf("missing email field error: %v", got.Fields)
	}
}

func TestReloadMounted(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	srv := newTestServer(t, nil, WithReload(h))
	do(srv, "GET", "/ws/reload", "", nil)
	if !called {
		t.Error("reload handler not mounted")
	}
}
