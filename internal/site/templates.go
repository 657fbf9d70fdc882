package site

// layoutTemplate is the shell shared by every page. Pages fill in "main".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  {{if .Redirect}}<meta http-equiv="refresh" content="0; url={{.Redirect}}">{{end}}
  <link rel="stylesheet" href="/static/style.css">
</head>
<body{{if .LiveReload}} data-live-reload{{end}}>
  <header class="navbar" id="navbar">
    <div class="navbar-inner">
      <a href="{{.HomePath}}" class="brand">
        <span class="brand-mark">{{.Brand}}</span>
        <span class="brand-name">{{.SiteName}}</span>
      </a>
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <nav class="nav-menu" id="nav-menu">
        {{range .Menu}}
        <div class="nav-item{{if .Current}} current{{end}}">
          <a href="{{.Path}}" class="nav-link">{{.Name}}</a>
          <div class="mega-menu">
            <p class="mega-tagline">{{.Tagline}}</p>
            <div class="mega-groups">
              {{range .Groups}}
              <ul class="mega-group">
                {{range .}}
                <li><a href="{{.Path}}">{{.Icon}}<span>{{.Label}}</span></a></li>
                {{end}}
              </ul>
              {{end}}
            </div>
          </div>
        </div>
        {{end}}
        <a href="{{.InquiryPath}}" class="nav-cta">Project Inquiry</a>
      </nav>
    </div>
  </header>

  <main class="main">
    {{template "main" .}}
  </main>

  <footer class="footer">
    <div class="footer-grid">
      <div class="footer-about">
        <h3>{{.SiteName}}</h3>
        <p>{{.Slogan}}</p>
        <a href="{{.InquiryPath}}" class="button">Submit Project Inquiry</a>
      </div>
      <div>
        <h4>Quick Links</h4>
        <ul>{{range .Footer.Quick}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}</ul>
      </div>
      {{if .Footer.Featured}}
      <div>
        <h4>{{.Footer.FeaturedTitle}}</h4>
        <ul>{{range .Footer.Featured}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}</ul>
      </div>
      {{end}}
      <div>
        <h4>Contact</h4>
        <ul class="footer-contact">
          <li><a href="{{.Tel}}">{{.Contact.Phone}}</a></li>
          <li><a href="{{.Mail}}">{{.Contact.Email}}</a></li>
          <li><a href="{{.Contact.MapURL}}" target="_blank" rel="noopener">{{.Contact.Address}}, {{.Contact.AddressLine2}}</a></li>
          <li>{{.Hours}}</li>
        </ul>
      </div>
    </div>
    <div class="footer-bottom">
      <ul class="social">{{range .Footer.Social}}<li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a></li>{{end}}</ul>
      <p>&copy; {{.Year}} {{.SiteName}}. All rights reserved.</p>
    </div>
  </footer>

  <a href="{{.ChatURL}}" class="chat-float" target="_blank" rel="noopener" aria-label="Chat on WhatsApp">WhatsApp</a>
  <script src="/static/app.js"></script>
</body>
</html>`

const homeTemplate = `{{define "main"}}
<section class="hero">
  <h1>{{.SiteName}}</h1>
  <p class="hero-slogan">{{.Slogan}}</p>
  <div class="hero-actions">
    <a href="{{.InquiryPath}}" class="button">Start a Project</a>
    <a href="{{.Tel}}" class="button button-ghost">Call {{.Contact.Phone}}</a>
  </div>
</section>

<section class="cards">
  {{range .Home.Cards}}
  <article class="card">
    <h2><a href="{{.Path}}">{{.Name}}</a></h2>
    <p class="card-tagline">{{.Tagline}}</p>
    <ul class="card-topics">
      {{range .Topics}}
      <li><a href="{{.Path}}">{{.Icon}}<span>{{.Label}}</span></a></li>
      {{end}}
    </ul>
  </article>
  {{end}}
</section>

<section class="contact" id="contact">
  <h2>Visit or Call Us</h2>
  <div class="contact-grid">
    <div>
      <h3>Office</h3>
      <p>{{.Contact.Address}}<br>{{.Contact.AddressLine2}}</p>
      <a href="{{.Contact.MapURL}}" target="_blank" rel="noopener">Open in Maps</a>
    </div>
    <div>
      <h3>Reach Us</h3>
      <p><a href="{{.Tel}}">{{.Contact.Phone}}</a><br><a href="{{.Mail}}">{{.Contact.Email}}</a></p>
    </div>
    <div>
      <h3>Working Hours</h3>
      <p>{{.Hours}}</p>
      {{if .Home.ShowStatus}}
      <p class="status {{if .Home.OpenNow}}status-open{{else}}status-closed{{end}}">{{if .Home.OpenNow}}Open now{{else}}Closed now{{end}}</p>
      {{end}}
    </div>
  </div>
</section>
{{end}}`

const categoryTemplate = `{{define "main"}}
{{with .Category}}
<div class="category-page" data-category-page data-category="{{.Name}}" data-active="{{.Active}}"
     data-header-offset="{{.Scroll.HeaderOffset}}" data-band-bottom="{{.Scroll.BandBottom}}"
     data-top-threshold="{{.Scroll.TopThreshold}}" data-narrow-header-offset="{{.Scroll.NarrowHeaderOffset}}"
     data-narrow-below="{{.Scroll.NarrowBelow}}">
  <aside class="toc" id="toc">
    <h2 class="toc-title">{{.Name}}</h2>
    <p class="toc-tagline">{{.Tagline}}</p>
    <ul>
      {{range .Topics}}
      <li><a href="{{.Path}}" class="toc-link{{if .Active}} active{{end}}" data-toc-link data-slug="{{.Slug}}"{{if .Active}} aria-current="location"{{end}}>{{.Icon}}<span>{{.Label}}</span></a></li>
      {{end}}
    </ul>
  </aside>
  <div class="topics">
    {{range .Topics}}
    <section class="topic" id="{{.Slug}}" data-topic-anchor>
      <h2 class="topic-title">{{.Icon}} {{.Label}}</h2>
      {{if .Summary}}<p class="topic-summary">{{.Summary}}</p>{{end}}
      <div class="prose">{{.Body}}</div>
    </section>
    {{end}}
  </div>
</div>
{{end}}
{{end}}`

const notFoundTemplate = `{{define "main"}}
<section class="not-found">
  <h1>404 Error</h1>
  <p>The page or category{{with .NotFound.Name}} '{{.}}'{{end}} could not be found or has no content.</p>
  <ul>
    {{range .NotFound.Categories}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}
  </ul>
</section>
{{end}}`

const inquiryTemplate = `{{define "main"}}
<section class="inquiry">
  <h1>Project Inquiry</h1>
  <p>Tell us about your project and continue the conversation on WhatsApp.</p>
  {{if .Static}}
  <a href="{{.ChatURL}}" class="button" target="_blank" rel="noopener">Chat with us on WhatsApp</a>
  {{else}}
  {{with .Inquiry}}
  <div class="notice" role="alert" data-inquiry-notice{{if not .Notice}} hidden{{end}}>{{.Notice}}</div>
  <form method="post" action="/inquiry" class="inquiry-form" data-inquiry-form data-api="/api/inquiry" novalidate
    data-notice-invalid="{{index .Notices "invalid"}}" data-notice-unavailable="{{index .Notices "unavailable"}}"
    data-notice-limited="{{index .Notices "limited"}}" data-notice-sent="{{index .Notices "sent"}}">
    <label>Full Name
      <input type="text" name="full_name" value="{{.Form.FullName}}" required>
      {{with index .Errors "full_name"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <fieldset class="user-type">
      <legend>I am</legend>
      <label><input type="radio" name="user_type" value="individual"{{if eq .Form.UserType "individual"}} checked{{end}}> An individual</label>
      <label><input type="radio" name="user_type" value="company"{{if eq .Form.UserType "company"}} checked{{end}}> A company</label>
      {{with index .Errors "user_type"}}<span class="field-error">{{.}}</span>{{end}}
    </fieldset>
    <label class="company-field"{{if not .ShowCompany}} hidden{{end}}>Company Name
      <input type="text" name="company" value="{{.Form.Company}}">
      {{with index .Errors "company"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <label>Phone
      <input type="tel" name="phone" value="{{.Form.Phone}}" required>
      {{with index .Errors "phone"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <label>Email
      <input type="email" name="email" value="{{.Form.Email}}" required>
      {{with index .Errors "email"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <label>Project Type
      <select name="project_type" required>
        <option value="">Select a project type</option>
        {{$pt := .Form.ProjectType}}
        {{range .ProjectTypes}}<option value="{{.Value}}"{{if eq .Value $pt}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      {{with index .Errors "project_type"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <label>Budget Range
      <select name="budget_range" required>
        <option value="">Select a budget range</option>
        {{$br := .Form.BudgetRange}}
        {{range .BudgetRanges}}<option value="{{.Value}}"{{if eq .Value $br}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      {{with index .Errors "budget_range"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <label>Project Description
      <textarea name="project_description" rows="5" required>{{.Form.Description}}</textarea>
      {{with index .Errors "project_description"}}<span class="field-error">{{.}}</span>{{end}}
    </label>
    <button type="submit" class="button">Send via WhatsApp</button>
  </form>
  {{end}}
  {{end}}
</section>
{{end}}`

const redirectTemplate = `{{define "main"}}
<p class="redirect">Redirecting to <a href="{{.Redirect}}">{{.Redirect}}</a>&hellip;</p>
<script>location.replace({{.Redirect}});</script>
{{end}}`

var pageTemplates = map[string]string{
	"home":     homeTemplate,
	"category": categoryTemplate,
	"notfound": notFoundTemplate,
	"inquiry":  inquiryTemplate,
	"redirect": redirectTemplate,
}

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `/* ============ Variables ============ */
:root {
  --ink: #1f2937;
  --muted: #6b7280;
  --bg: #f9fafb;
  --card: #ffffff;
  --accent: #ca8a04;
  --accent-strong: #a16207;
  --dark: #111827;
  --border: #e5e7eb;
  --header-height: 100px;
  --radius: 12px;
}

* { box-sizing: border-box; }
html { scroll-behavior: auto; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--ink);
  background: var(--bg);
  line-height: 1.6;
}
a { color: inherit; }
.icon { flex-shrink: 0; color: var(--accent); }

/* ============ Navbar ============ */
.navbar {
  position: fixed;
  top: 0; left: 0; right: 0;
  height: var(--header-height);
  background: var(--dark);
  color: #fff;
  z-index: 50;
}
.navbar-inner {
  max-width: 1200px;
  height: 100%;
  margin: 0 auto;
  padding: 0 1.5rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}
.brand { display: flex; align-items: center; gap: .75rem; text-decoration: none; }
.brand-mark {
  background: var(--accent);
  color: var(--dark);
  font-weight: 800;
  padding: .4rem .6rem;
  border-radius: 8px;
}
.brand-name { font-weight: 800; letter-spacing: .05em; }
.menu-toggle { display: none; background: none; border: 0; color: inherit; cursor: pointer; }
.nav-menu { display: flex; align-items: center; gap: 1.5rem; }
.nav-item { position: relative; }
.nav-link { text-decoration: none; font-weight: 600; padding: 2rem 0; }
.nav-item.current .nav-link, .nav-link:hover { color: var(--accent); }
.mega-menu {
  display: none;
  position: absolute;
  top: 100%;
  left: -1rem;
  min-width: 420px;
  background: var(--card);
  color: var(--ink);
  border-radius: var(--radius);
  box-shadow: 0 20px 40px rgba(0,0,0,.15);
  padding: 1.25rem;
}
.nav-item:hover .mega-menu, .nav-item:focus-within .mega-menu { display: block; }
.mega-tagline { margin: 0 0 .75rem; font-weight: 700; color: var(--accent-strong); }
.mega-groups { display: flex; gap: 1.5rem; }
.mega-group { list-style: none; margin: 0; padding: 0; }
.mega-group a { display: flex; align-items: center; gap: .5rem; padding: .35rem 0; text-decoration: none; }
.mega-group a:hover { color: var(--accent-strong); }
.nav-cta {
  background: var(--accent);
  color: var(--dark);
  padding: .6rem 1rem;
  border-radius: 999px;
  font-weight: 700;
  text-decoration: none;
}

/* ============ Layout ============ */
.main { padding-top: var(--header-height); min-height: 70vh; }
.button {
  display: inline-block;
  background: var(--accent);
  color: #fff;
  border: 0;
  padding: .75rem 1.25rem;
  border-radius: var(--radius);
  font-weight: 700;
  text-decoration: none;
  cursor: pointer;
}
.button:hover { background: var(--accent-strong); }
.button-ghost { background: transparent; border: 2px solid var(--accent); color: var(--accent-strong); }

/* ============ Home ============ */
.hero {
  background: linear-gradient(135deg, var(--dark), #374151);
  color: #fff;
  text-align: center;
  padding: 6rem 1.5rem;
}
.hero h1 { font-size: clamp(2rem, 5vw, 3.5rem); margin: 0 0 1rem; }
.hero-slogan { font-size: 1.25rem; color: #fde68a; }
.hero-actions { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; margin-top: 2rem; }
.cards {
  max-width: 1200px;
  margin: -3rem auto 0;
  padding: 0 1.5rem;
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
  gap: 1.5rem;
}
.card { background: var(--card); border-radius: var(--radius); padding: 1.5rem; box-shadow: 0 10px 30px rgba(0,0,0,.08); }
.card h2 a { text-decoration: none; }
.card-tagline { color: var(--accent-strong); font-weight: 600; }
.card-topics { list-style: none; padding: 0; }
.card-topics a { display: flex; align-items: center; gap: .5rem; padding: .25rem 0; text-decoration: none; }
.contact { max-width: 1200px; margin: 4rem auto; padding: 0 1.5rem; }
.contact-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.5rem; }
.status { font-weight: 700; }
.status-open { color: #15803d; }
.status-closed { color: #b91c1c; }

/* ============ Category ============ */
.category-page {
  max-width: 1200px;
  margin: 0 auto;
  padding: 2rem 1.5rem;
  display: grid;
  grid-template-columns: 260px 1fr;
  gap: 2rem;
}
.toc {
  position: sticky;
  top: calc(var(--header-height) + 1rem);
  align-self: start;
  background: var(--card);
  border-radius: var(--radius);
  padding: 1.25rem;
  box-shadow: 0 4px 16px rgba(0,0,0,.06);
}
.toc-title { margin: 0; }
.toc-tagline { margin: .25rem 0 1rem; color: var(--muted); }
.toc ul { list-style: none; margin: 0; padding: 0; }
.toc-link {
  display: flex;
  align-items: center;
  gap: .5rem;
  padding: .5rem .75rem;
  border-radius: 8px;
  text-decoration: none;
  border-left: 3px solid transparent;
}
.toc-link:hover { background: #fef9c3; }
.toc-link.active { background: #fef3c7; border-left-color: var(--accent); font-weight: 700; }
.topic { background: var(--card); border-radius: var(--radius); padding: 2rem; margin-bottom: 2rem; min-height: 60vh; }
.topic-title { display: flex; align-items: center; gap: .75rem; border-bottom: 1px solid var(--border); padding-bottom: .5rem; }
.topic-summary { color: var(--muted); font-size: 1.1rem; }
.prose h2, .prose h3 { color: var(--dark); }
.prose pre { overflow-x: auto; padding: 1rem; border-radius: 8px; }

/* ============ Inquiry ============ */
.inquiry, .not-found { max-width: 720px; margin: 3rem auto; padding: 0 1.5rem; }
.not-found { text-align: center; }
.not-found h1 { color: #ef4444; }
.notice { background: #fee2e2; color: #991b1b; padding: 1rem; border-radius: 8px; margin-bottom: 1rem; }
.notice.notice-success { background: #dcfce7; color: #166534; }
.inquiry-form { display: grid; gap: 1rem; }
.inquiry-form label { display: grid; gap: .35rem; font-weight: 600; }
.inquiry-form input, .inquiry-form select, .inquiry-form textarea {
  font: inherit;
  padding: .6rem .75rem;
  border: 1px solid var(--border);
  border-radius: 8px;
}
.user-type { border: 0; padding: 0; display: flex; gap: 1.5rem; }
.user-type label { display: flex; gap: .35rem; font-weight: 400; }
.field-error { color: #b91c1c; font-size: .875rem; font-weight: 400; }

/* ============ Footer ============ */
.footer { background: var(--dark); color: #9ca3af; padding: 3rem 1.5rem 1.5rem; }
.footer-grid {
  max-width: 1200px;
  margin: 0 auto;
  display: grid;
  grid-template-columns: 2fr 1fr 1fr 1.5fr;
  gap: 2rem;
}
.footer h3, .footer h4 { color: #fff; }
.footer ul { list-style: none; padding: 0; margin: 0; }
.footer li { padding: .2rem 0; }
.footer a { text-decoration: none; }
.footer a:hover { color: var(--accent); }
.footer-bottom {
  max-width: 1200px;
  margin: 2rem auto 0;
  border-top: 1px solid #374151;
  padding-top: 1rem;
  display: flex;
  justify-content: space-between;
  flex-wrap: wrap;
}
.social { display: flex; gap: 1rem; }
.chat-float {
  position: fixed;
  right: 1.5rem;
  bottom: 1.5rem;
  background: #25d366;
  color: #fff;
  padding: .75rem 1rem;
  border-radius: 999px;
  font-weight: 700;
  text-decoration: none;
  box-shadow: 0 8px 20px rgba(0,0,0,.2);
}

/* ============ Narrow ============ */
@media (max-width: 768px) {
  :root { --header-height: 80px; }
  .menu-toggle { display: block; }
  .nav-menu {
    display: none;
    position: absolute;
    top: var(--header-height);
    left: 0; right: 0;
    flex-direction: column;
    align-items: stretch;
    background: var(--dark);
    padding: 1rem 1.5rem;
  }
  .nav-menu.open { display: flex; }
  .nav-link { padding: .5rem 0; display: block; }
  .mega-menu { position: static; min-width: 0; box-shadow: none; }
  .mega-groups { flex-direction: column; gap: 0; }
  .category-page { grid-template-columns: 1fr; }
  .toc { position: static; }
  .footer-grid { grid-template-columns: 1fr; }
}
`

// jsContent is served at /static/app.js. It wires the mobile menu, the
// inquiry form, the scrollspy module and live reload.
const jsContent = `(function() {
  'use strict';

  // ---- Mobile menu ----
  var toggle = document.getElementById('menu-toggle');
  var menu = document.getElementById('nav-menu');
  if (toggle && menu) {
    toggle.addEventListener('click', function() {
      var open = menu.classList.toggle('open');
      toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  }

  // ---- Inquiry form: company name only for companies ----
  var form = document.querySelector('[data-inquiry-form]');
  if (form) {
    var company = form.querySelector('.company-field');
    form.addEventListener('change', function(e) {
      if (e.target.name !== 'user_type' || !company) return;
      company.hidden = e.target.value !== 'company';
    });
  }

  // ---- Inquiry form: open the chat in a new tab ----
  // Without JS the form posts to the server, which redirects to the chat.
  if (form && window.fetch && form.dataset.api) {
    var notice = document.querySelector('[data-inquiry-notice]');
    var button = form.querySelector('button[type="submit"]');

    var showNotice = function(text, success) {
      if (!notice) return;
      notice.textContent = text || '';
      notice.hidden = !text;
      notice.classList.toggle('notice-success', !!success);
    };
    var showFieldErrors = function(fields) {
      var old = form.querySelectorAll('.field-error');
      for (var i = 0; i < old.length; i++) old[i].remove();
      Object.keys(fields || {}).forEach(function(name) {
        var input = form.querySelector('[name="' + name + '"]');
        if (!input) return;
        var holder = input.closest('fieldset') || input.closest('label');
        var span = document.createElement('span');
        span.className = 'field-error';
        span.textContent = fields[name];
        holder.appendChild(span);
      });
    };
    var noticeFor = function(status) {
      if (status === 422 || status === 400) return form.dataset.noticeInvalid;
      if (status === 429) return form.dataset.noticeLimited;
      return form.dataset.noticeUnavailable;
    };

    form.addEventListener('submit', function(e) {
      e.preventDefault();
      var data = {};
      new FormData(form).forEach(function(value, key) { data[key] = value; });
      if (button) button.disabled = true;
      showNotice('');

      fetch(form.dataset.api, {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(data)
      })
        .then(function(resp) {
          return resp.json().then(function(body) { return { status: resp.status, ok: resp.ok, body: body }; });
        })
        .then(function(res) {
          showFieldErrors(res.ok ? null : res.body.fields);
          if (!res.ok) {
            showNotice(noticeFor(res.status));
            return;
          }
          var win = window.open(res.body.link, '_blank');
          if (!win) {
            showNotice(form.dataset.noticeUnavailable);
            return;
          }
          win.opener = null;
          showNotice(form.dataset.noticeSent, true);
        })
        .catch(function(err) {
          console.error('inquiry:', err);
          showNotice(form.dataset.noticeUnavailable);
        })
        .then(function() { if (button) button.disabled = false; });
    });
  }

  // ---- Scrollspy (Go/WASM) ----
  var page = document.querySelector('[data-category-page]');
  if (page && typeof WebAssembly !== 'undefined') {
    var loader = document.createElement('script');
    loader.src = '/static/wasm_exec.js';
    loader.onload = function() {
      var go = new Go();
      fetch('/static/scrollspy.wasm')
        .then(function(resp) { return resp.arrayBuffer(); })
        .then(function(bytes) { return WebAssembly.instantiate(bytes, go.importObject); })
        .then(function(result) { go.run(result.instance); })
        .catch(function(err) { console.warn('scrollspy unavailable:', err); });
    };
    loader.onerror = function() { console.warn('scrollspy unavailable: wasm_exec.js missing'); };
    document.head.appendChild(loader);
  }

  // ---- Table of contents: in-page navigation without history entries ----
  // The scrollspy module handles these clicks once it runs; this covers the
  // moments before that and pages where it could not load.
  if (page) {
    page.addEventListener('click', function(e) {
      if (e.defaultPrevented || e.button !== 0 || e.metaKey || e.ctrlKey || e.shiftKey || e.altKey) return;
      var link = e.target.closest('a[data-toc-link]');
      if (!link) return;
      e.preventDefault();
      var slug = link.getAttribute('data-slug');
      var target = document.getElementById(slug);
      if (target) {
        var ds = page.dataset;
        var narrow = window.innerWidth < parseFloat(ds.narrowBelow || '0');
        var header = parseFloat(narrow ? ds.narrowHeaderOffset : ds.headerOffset) || 0;
        window.scrollTo({ top: Math.max(0, target.offsetTop - header), behavior: 'smooth' });
      }
      history.replaceState(null, '', link.getAttribute('href'));
      var links = page.querySelectorAll('a[data-toc-link]');
      for (var i = 0; i < links.length; i++) {
        links[i].classList.toggle('active', links[i] === link);
      }
    });
  }

  // ---- Live reload ----
  if (document.body.hasAttribute('data-live-reload')) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var connect = function() {
      var ws = new WebSocket(proto + '//' + location.host + '/ws/reload');
      ws.onmessage = function(e) {
        if (e.data === 'reload') location.reload();
      };
      ws.onclose = function() { setTimeout(connect, 1000); };
    };
    connect();
  }
})();
`
